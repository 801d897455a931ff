package syntheticgraph

import (
	"math/rand"

	"github.com/katalvlaran/kgraphcore/shape"
)

const (
	methodRandomShape = "RandomShapeBatch"
	minRandomShapes   = 1
)

// RandomShapeBatch returns n deterministically-random CompiledShape
// values sized for classWords class-mask words and propWords
// property-mask words. Two calls with the same seed and dimensions
// produce byte-identical output, matching the teacher's WithSeed
// reproducibility contract for stochastic builders.
//
// Complexity: O(n*(classWords+propWords)) time and space.
func RandomShapeBatch(n, classWords, propWords int, opts ...Option) ([]shape.CompiledShape, error) {
	if n < minRandomShapes {
		return nil, tooFewErrorf(methodRandomShape, n, minRandomShapes)
	}

	cfg := newGenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	shapes := make([]shape.CompiledShape, n)
	for i := 0; i < n; i++ {
		shapes[i] = shape.CompiledShape{
			TargetClassMask:      randomWords(rng, classWords),
			RequiredPropertyMask: randomWords(rng, propWords),
		}
	}

	return shapes, nil
}

func randomWords(rng *rand.Rand, n int) []uint64 {
	words := make([]uint64, n)
	for i := range words {
		words[i] = rng.Uint64()
	}

	return words
}
