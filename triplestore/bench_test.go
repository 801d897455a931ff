package triplestore_test

import (
	"testing"

	"github.com/katalvlaran/kgraphcore/triplestore"
)

func BenchmarkAsk(b *testing.B) {
	s, err := triplestore.New(100000, 64, 100000)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 50000; i++ {
		if err := s.AddTriple(uint32(i), 3, uint32(i)); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Ask(25000, 3, 25000)
	}
}

func BenchmarkAskBatch(b *testing.B) {
	s, err := triplestore.New(1000, 8, 1000)
	if err != nil {
		b.Fatal(err)
	}
	patterns := make([]triplestore.Pattern, 0, 1000)
	for i := 0; i < 1000; i++ {
		if err := s.AddTriple(uint32(i), 1, uint32(i)); err != nil {
			b.Fatal(err)
		}
		patterns = append(patterns, triplestore.Pattern{Subject: uint32(i), Predicate: 1, Object: uint32(i)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.AskBatch(patterns)
	}
}
