package compliance_test

import (
	"testing"

	"github.com/katalvlaran/kgraphcore/compliance"
)

func BenchmarkCertify(b *testing.B) {
	in := compliance.Input{
		NumClasses:         200,
		NumProperties:      50,
		NumShapes:          50,
		ExpectedSubjects:   1000,
		ExpectedPredicates: 10,
		ExpectedObjects:    1000,
		UseObjectIndex:     true,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := compliance.Certify(in); err != nil {
			b.Fatal(err)
		}
	}
}
