package join

import (
	"github.com/katalvlaran/kgraphcore/bitmatrix"
	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/triplestore"
)

const (
	opSubjectsWith = "SubjectsWith"
	opObjectsOf    = "ObjectsOf"
	opConjunctive  = "JoinConjunctive"
)

// BoundPattern is one conjunct of a conjunctive ASK over a shared free
// subject variable: "(?x, Predicate, Object)". JoinConjunctive
// intersects the SubjectsWith(Predicate, Object) vector of every
// BoundPattern.
type BoundPattern struct {
	Predicate ids.ID
	Object    ids.ID
}

// SubjectsWith returns the set of subjects with at least one
// (predicate, object) edge: the AND of the predicate-subject matrix's
// predicate row with the object-subject matrix's object row.
//
// Complexity: O(stride(maxSubjects)).
func SubjectsWith(store *triplestore.Store, predicate, object ids.ID) (*ResultVec, error) {
	if predicate >= store.MaxPredicates() {
		return nil, joinErrorf(opSubjectsWith, ErrOutOfRange)
	}
	if object >= store.MaxObjects() {
		return nil, joinErrorf(opSubjectsWith, ErrOutOfRange)
	}

	predRow := store.PredicateSubjectRow(predicate)
	objRow := store.ObjectSubjectRow(object)

	out := NewResultVec(int(store.MaxSubjects()))
	bitmatrix.And(out.words, predRow, objRow)
	out.popcount = bitmatrix.PopcountWords(out.words)

	return out, nil
}

// ObjectsOf returns the object list at (predicate, subject), expressed
// as a bit-vector over the object universe.
//
// Complexity: O(len(objects)).
func ObjectsOf(store *triplestore.Store, subject, predicate ids.ID) (*ResultVec, error) {
	if subject >= store.MaxSubjects() {
		return nil, joinErrorf(opObjectsOf, ErrOutOfRange)
	}
	if predicate >= store.MaxPredicates() {
		return nil, joinErrorf(opObjectsOf, ErrOutOfRange)
	}

	out := NewResultVec(int(store.MaxObjects()))
	for _, o := range store.Objects(subject, predicate) {
		out.Set(int(o))
	}

	return out, nil
}

// JoinConjunctive accumulates an intersecting result vector across every
// pattern's SubjectsWith(predicate, object) set, terminating early once
// the running cardinality reaches zero, and returns the matching
// subjects extracted by iterating set bits.
//
// Complexity: O(len(patterns) * stride(maxSubjects)) worst case, less
// under early termination.
func JoinConjunctive(store *triplestore.Store, patterns []BoundPattern) ([]ids.ID, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	acc, err := SubjectsWith(store, patterns[0].Predicate, patterns[0].Object)
	if err != nil {
		return nil, joinErrorf(opConjunctive, err)
	}

	for _, p := range patterns[1:] {
		if acc.Popcount() == 0 {
			break
		}
		next, err := SubjectsWith(store, p.Predicate, p.Object)
		if err != nil {
			return nil, joinErrorf(opConjunctive, err)
		}
		acc, err = Intersect(acc, next)
		if err != nil {
			return nil, joinErrorf(opConjunctive, err)
		}
	}

	return acc.Members(), nil
}
