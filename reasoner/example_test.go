package reasoner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kgraphcore/reasoner"
	"github.com/katalvlaran/kgraphcore/triplestore"
)

func Example() {
	const employee, manager = 100, 101

	store, err := triplestore.New(10, 2, 200)
	if err != nil {
		panic(err)
	}
	r, err := reasoner.New(200, 2, reasoner.WithTypePredicate(0))
	if err != nil {
		panic(err)
	}
	if err := r.AddSubclass(manager, employee); err != nil {
		panic(err)
	}
	if err := store.AddTriple(7, 0, manager); err != nil {
		panic(err)
	}
	if err := r.Materialize(context.Background(), store); err != nil {
		panic(err)
	}

	fmt.Println(store.Ask(7, 0, employee))
	fmt.Println(r.AskWithReasoning(store, 7, 0, employee))
	// Output:
	// false
	// true
}
