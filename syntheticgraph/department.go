package syntheticgraph

import (
	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/triplestore"
)

const (
	methodDepartment  = "DepartmentFixture"
	minDepartmentSize = 1

	departmentEmployeeClass = ids.ID(100)
	departmentCount         = ids.ID(50)
	departmentBase          = ids.ID(200)
)

// DepartmentFixture returns 2*n triples for n subjects: each subject s
// gets rdf:type departmentEmployeeClass (100) and department
// (200 + s%50). This is the literal conjunctive-join stress shape: a
// query for (type=100) AND (department=210) should return exactly
// ceil(n/50) subjects when n is a multiple of departmentCount, one per
// 50-subject bucket.
//
// Complexity: O(n) time, O(n) space.
func DepartmentFixture(n int, opts ...Option) ([]triplestore.Triple, error) {
	if n < minDepartmentSize {
		return nil, tooFewErrorf(methodDepartment, n, minDepartmentSize)
	}

	cfg := newGenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	triples := make([]triplestore.Triple, 0, 2*n)
	for s := 0; s < n; s++ {
		subject := ids.ID(s)
		triples = append(triples,
			triplestore.Triple{
				Subject:   subject,
				Predicate: ids.ID(cfg.typePredicate),
				Object:    departmentEmployeeClass,
			},
			triplestore.Triple{
				Subject:   subject,
				Predicate: ids.ID(cfg.deptPredicate),
				Object:    departmentBase + ids.ID(s)%departmentCount,
			},
		)
	}

	return triples, nil
}
