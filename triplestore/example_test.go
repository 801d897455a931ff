package triplestore_test

import (
	"fmt"

	"github.com/katalvlaran/kgraphcore/triplestore"
)

func Example() {
	s, err := triplestore.New(100, 10, 300)
	if err != nil {
		panic(err)
	}
	if err := s.AddTriple(42, 1, 100); err != nil {
		panic(err)
	}

	fmt.Println(s.Ask(42, 1, 100))
	fmt.Println(s.Ask(42, 1, 200))
	// Output:
	// true
	// false
}
