package triplestore

import (
	"github.com/katalvlaran/kgraphcore/bitmatrix"
	"github.com/katalvlaran/kgraphcore/ids"
)

const (
	opCreate    = "create"
	opAddTriple = "add_triple"
)

// Store is the (subject, predicate, object) bit-vector index described in
// §4.1: a predicate-subject bit-matrix, an object-subject bit-matrix, and
// a per-(predicate, subject) object list. All three are allocated at
// construction and never resize.
type Store struct {
	maxSubjects   uint32
	maxPredicates uint32
	maxObjects    uint32

	predSubj *bitmatrix.Matrix // rows = predicates, cols = subjects
	objSubj  *bitmatrix.Matrix // rows = objects, cols = subjects
	objLists map[uint64]*objCell
}

// New allocates a Store sized for the given per-sort capacities. Fails
// with ErrCapacityExceeded if the backing bitmatrix allocator refuses the
// request (e.g. non-positive dimensions).
//
// Complexity: Time O(maxPredicates*stride(maxSubjects) +
// maxObjects*stride(maxSubjects)), Space proportional to the same.
func New(maxSubjects, maxPredicates, maxObjects uint32) (*Store, error) {
	predSubj, err := bitmatrix.NewMatrix(int(maxPredicates), int(maxSubjects))
	if err != nil {
		return nil, storeErrorf(opCreate, ErrCapacityExceeded)
	}
	objSubj, err := bitmatrix.NewMatrix(int(maxObjects), int(maxSubjects))
	if err != nil {
		return nil, storeErrorf(opCreate, ErrCapacityExceeded)
	}

	return &Store{
		maxSubjects:   maxSubjects,
		maxPredicates: maxPredicates,
		maxObjects:    maxObjects,
		predSubj:      predSubj,
		objSubj:       objSubj,
		objLists:      make(map[uint64]*objCell),
	}, nil
}

// MaxSubjects, MaxPredicates, MaxObjects expose the declared capacities
// so collaborators (such as package join) can size their own
// structures consistently without re-deriving them.
func (s *Store) MaxSubjects() uint32   { return s.maxSubjects }
func (s *Store) MaxPredicates() uint32 { return s.maxPredicates }
func (s *Store) MaxObjects() uint32    { return s.maxObjects }

func packKey(p, s ids.ID) uint64 {
	return uint64(p)<<32 | uint64(s)
}

func (s *Store) checkRange(subject, predicate, object ids.ID) error {
	if err := ids.CheckRange(ids.SortSubject, subject, s.maxSubjects); err != nil {
		return err
	}
	if err := ids.CheckRange(ids.SortPredicate, predicate, s.maxPredicates); err != nil {
		return err
	}
	if err := ids.CheckRange(ids.SortObject, object, s.maxObjects); err != nil {
		return err
	}

	return nil
}

// AddTriple sets bit (predicate, subject) in the predicate-subject
// matrix, bit (object, subject) in the object-subject matrix, and
// appends object to the object list at (predicate, subject) only if not
// already present. Idempotent for duplicates. Fails with ErrOutOfRange
// if any ID is out of range for its sort — pre-checked before any matrix
// is touched, so a failing call never partially mutates the store.
//
// Complexity: O(1) amortized (object list lookup + append).
func (s *Store) AddTriple(subject, predicate, object ids.ID) error {
	if err := s.checkRange(subject, predicate, object); err != nil {
		return storeErrorf(opAddTriple, err)
	}

	// Both matrix writes are infallible once the range check above has
	// passed, so there is no partial-mutation window.
	_ = s.predSubj.Set(int(predicate), int(subject))
	_ = s.objSubj.Set(int(object), int(subject))

	key := packKey(predicate, subject)
	cell, ok := s.objLists[key]
	if !ok {
		cell = &objCell{}
		s.objLists[key] = cell
	}
	cell.add(object)

	return nil
}

// Ask is the hot path: answer must be produced with a bounded
// instruction budget that does not scale with the number of triples.
//
//  1. Test bit (predicate, subject) in the predicate-subject matrix; if
//     zero, return false.
//  2. Walk the object list at (predicate, subject), testing for object.
//     The head slot is tested first so the single-valued case ("subject
//     has one object for this predicate") never touches the overflow
//     slice.
//
// Ask cannot fail: out-of-range IDs are harmless lookups against
// zero-initialized matrices and simply return false, per §4.1's failure
// policy. It is the caller's precondition to keep IDs in range; Ask does
// not re-validate or allocate.
func (s *Store) Ask(subject, predicate, object ids.ID) bool {
	if int(predicate) >= s.predSubj.Rows() || int(subject) >= s.predSubj.Cols() {
		return false
	}
	if !s.predSubj.Test(int(predicate), int(subject)) {
		return false
	}

	cell, ok := s.objLists[packKey(predicate, subject)]
	if !ok {
		return false
	}
	if cell.hasHead && cell.head == object {
		return true
	}
	for _, o := range cell.overflow {
		if o == object {
			return true
		}
	}

	return false
}

// Objects returns every object recorded for (predicate, subject), head
// first. This is an extended-path helper (not part of the Ask hot path)
// used by the reasoner's domain/range injection, the shape validator's
// property-path walker, and package join's ObjectsOf.
func (s *Store) Objects(subject, predicate ids.ID) []ids.ID {
	return s.objLists[packKey(predicate, subject)].objects()
}

// PredicateSubjectRow exposes the raw word view of one predicate's row
// in the predicate-subject matrix, for package join's word-parallel
// AND with the object-subject matrix.
func (s *Store) PredicateSubjectRow(predicate ids.ID) []uint64 {
	return s.predSubj.Row(int(predicate))
}

// ObjectSubjectRow exposes the raw word view of one object's row in the
// object-subject matrix, for package join's word-parallel AND.
func (s *Store) ObjectSubjectRow(object ids.ID) []uint64 {
	return s.objSubj.Row(int(object))
}

// SubjectHasPredicate reports whether bit (predicate, subject) is set,
// without touching the object list. (The reasoner's domain injection
// scans PredicateSubjectRow instead; nothing in this module calls this.)
func (s *Store) SubjectHasPredicate(subject, predicate ids.ID) bool {
	if int(predicate) >= s.predSubj.Rows() || int(subject) >= s.predSubj.Cols() {
		return false
	}

	return s.predSubj.Test(int(predicate), int(subject))
}
