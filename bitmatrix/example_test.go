package bitmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/kgraphcore/bitmatrix"
)

// This example builds a small predicate-subject style matrix and checks
// a single bit the way package triplestore's hot path does.
func Example() {
	m, err := bitmatrix.NewMatrix(4, 200)
	if err != nil {
		panic(err)
	}
	if err := m.Set(1, 42); err != nil {
		panic(err)
	}

	fmt.Println(m.Test(1, 42))
	fmt.Println(m.Test(1, 43))
	// Output:
	// true
	// false
}
