package bitmatrix_test

import (
	"testing"

	"github.com/katalvlaran/kgraphcore/bitmatrix"
)

func BenchmarkTest(b *testing.B) {
	m, err := bitmatrix.NewMatrix(1024, 1024)
	if err != nil {
		b.Fatal(err)
	}
	if err := m.Set(512, 512); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Test(512, 512)
	}
}

func BenchmarkOrRowInto(b *testing.B) {
	m, err := bitmatrix.NewMatrix(4, 4096)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.OrRowInto(0, 1); err != nil {
			b.Fatal(err)
		}
	}
}
