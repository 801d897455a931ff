package shape_test

import (
	"fmt"

	"github.com/katalvlaran/kgraphcore/shape"
)

func Example() {
	v, err := shape.NewValidator(300, 10, 10, 1)
	if err != nil {
		panic(err)
	}
	cs := shape.CompiledShape{
		TargetClassMask:      v.NewTargetClassMask(1),
		RequiredPropertyMask: v.NewPropertyMask(7),
	}
	if err := v.RegisterShape(0, cs); err != nil {
		panic(err)
	}
	if err := v.SetClass(100, 1); err != nil {
		panic(err)
	}
	if err := v.SetProperty(100, 7); err != nil {
		panic(err)
	}

	ok, err := v.ValidateNode(100, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(ok)
	// Output:
	// true
}
