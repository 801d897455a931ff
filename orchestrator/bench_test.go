package orchestrator_test

import (
	"testing"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/orchestrator"
)

func BenchmarkOrchestratorAsk(b *testing.B) {
	o, err := orchestrator.New(orchestrator.Config{
		Capacity: ids.Capacity{
			Subjects: 100000, Predicates: 64, Objects: 100000,
			Classes: 64, Properties: 64, Shapes: 1,
		},
		MaxNodes:      100000,
		TypePredicate: 0,
	})
	if err != nil {
		b.Fatal(err)
	}
	for i := uint32(0); i < 50000; i++ {
		if err := o.AddTriple(i, 3, i); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = o.Ask(25000, 3, 25000)
	}
}
