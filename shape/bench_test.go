package shape_test

import (
	"testing"

	"github.com/katalvlaran/kgraphcore/shape"
)

func BenchmarkValidateNode(b *testing.B) {
	v, err := shape.NewValidator(100000, 64, 64, 1)
	if err != nil {
		b.Fatal(err)
	}
	if err := v.RegisterShape(0, shape.CompiledShape{
		TargetClassMask:      v.NewTargetClassMask(1),
		RequiredPropertyMask: v.NewPropertyMask(2),
	}); err != nil {
		b.Fatal(err)
	}
	for n := uint32(0); n < 50000; n++ {
		if err := v.SetClass(n, 1); err != nil {
			b.Fatal(err)
		}
		if err := v.SetProperty(n, 2); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.ValidateNode(25000, 0); err != nil {
			b.Fatal(err)
		}
	}
}
