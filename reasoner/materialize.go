package reasoner

import (
	"context"
	"math/bits"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/triplestore"
)

const (
	opMaterialize      = "Materialize"
	opIsSubclassOf     = "IsSubclassOf"
	opIsSubpropertyOf  = "IsSubpropertyOf"
	opAskWithReasoning = "AskWithReasoning"
)

// Materialize runs the subclass and subproperty transitive closures and
// injects domain/range consequences into store as rdf:type facts. It is
// the only place the reasoner writes to a *triplestore.Store.
//
// Steps, in order:
//  1. warshallCloseInPlace on the subclass matrix.
//  2. warshallCloseInPlace on the subproperty matrix.
//  3. For every domain(p, c) axiom: for every subject s with predicate p
//     set in store, assert (s, typePredicate, c).
//  4. For every range(p, c) axiom: for every subject s with predicate p
//     set, for every object o of (s, p), assert (o, typePredicate, c).
//
// Domain/range injection requires WithTypePredicate to have been set at
// construction; if domain or range axioms exist without one, Materialize
// returns ErrPhaseViolation since the inference has nowhere to land.
//
// Complexity: O(classes^3/64 + properties^3/64) word operations for the
// closures (see warshallCloseInPlace), plus
// O(domain/range axioms * matching subjects) for injection.
func (r *Reasoner) Materialize(ctx context.Context, store *triplestore.Store) error {
	if (len(r.domain) > 0 || len(r.rangeT) > 0) && !r.hasType {
		return reasonerErrorf(opMaterialize, ErrPhaseViolation)
	}

	warshallCloseInPlace(r.subclass)
	warshallCloseInPlace(r.subproperty)

	for p, classes := range r.domain {
		if err := ctx.Err(); err != nil {
			return reasonerErrorf(opMaterialize, err)
		}
		row := store.PredicateSubjectRow(p)
		for _, s := range bitsSet(row) {
			for _, c := range classes {
				if err := store.AddTriple(ids.ID(s), r.typePredicate, c); err != nil {
					return reasonerErrorf(opMaterialize, err)
				}
			}
		}
	}

	for p, classes := range r.rangeT {
		if err := ctx.Err(); err != nil {
			return reasonerErrorf(opMaterialize, err)
		}
		row := store.PredicateSubjectRow(p)
		for _, s := range bitsSet(row) {
			for _, o := range store.Objects(ids.ID(s), p) {
				for _, c := range classes {
					if err := store.AddTriple(o, r.typePredicate, c); err != nil {
						return reasonerErrorf(opMaterialize, err)
					}
				}
			}
		}
	}

	r.materialized = true

	return nil
}

// bitsSet returns every set-bit column index across a word-packed row, in
// ascending order. Used only by Materialize's domain/range injection,
// which runs once per mutation batch rather than on the query hot path,
// so the bits.TrailingZeros64 "clear lowest set bit" idiom is acceptable
// here (see package bitmatrix's ops for the word-parallel hot-path
// kernels this intentionally avoids).
func bitsSet(row []uint64) []int {
	var out []int
	for wordIdx, w := range row {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			out = append(out, wordIdx*64+bit)
			w &= w - 1
		}
	}

	return out
}

// IsSubclassOf reports whether sub is a (reflexive, transitive) subclass
// of sup. Before the first Materialize this reflects only
// directly-asserted edges; after a later axiom addition it reflects the
// closure from the last Materialize plus the newly asserted edges until
// Materialize runs again — a defined partial answer, not an error.
func (r *Reasoner) IsSubclassOf(sub, sup ids.ID) bool {
	if sub >= r.maxClasses || sup >= r.maxClasses {
		return false
	}

	return r.subclass.Test(int(sub), int(sup))
}

// IsSubpropertyOf mirrors IsSubclassOf for properties.
func (r *Reasoner) IsSubpropertyOf(sub, sup ids.ID) bool {
	if sub >= r.maxProperties || sup >= r.maxProperties {
		return false
	}

	return r.subproperty.Test(int(sub), int(sup))
}

// AskWithReasoning answers (subject, predicate, object) the way Ask
// does, then falls back to:
//
//  1. rdf:type subsumption: if predicate is the configured type
//     predicate, every asserted type c of subject (store.Objects(subject,
//     typePredicate)) is checked with IsSubclassOf(c, object) — a direct
//     (s, rdf:type, Manager) fact entails (s, rdf:type, Employee) whenever
//     Manager is a subclass of Employee.
//  2. subproperty subsumption: if foo ⊑ bar holds, a (s, foo, o) fact
//     entails (s, bar, o), so asking for bar also checks every q with
//     IsSubpropertyOf(q, predicate) via Ask(subject, q, object).
//
// Transitive properties beyond rdf:type/subproperty are not expanded
// here: single-hop transitive closure beyond subclass/subproperty is not
// materialized in this core — an explicitly acknowledged open point (see
// the design note on transitive-property answers).
func (r *Reasoner) AskWithReasoning(store *triplestore.Store, subject, predicate, object ids.ID) bool {
	if store.Ask(subject, predicate, object) {
		return true
	}

	if r.hasType && predicate == r.typePredicate {
		for _, c := range store.Objects(subject, r.typePredicate) {
			if r.IsSubclassOf(c, object) {
				return true
			}
		}
	}

	if predicate < r.maxProperties {
		for q := uint32(0); q < r.maxProperties; q++ {
			if q == predicate {
				continue
			}
			if r.IsSubpropertyOf(q, predicate) && store.Ask(subject, q, object) {
				return true
			}
		}
	}

	return false
}
