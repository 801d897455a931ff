// Package ids defines the dense identifier space shared by every engine:
// subjects, predicates, objects, classes, properties, and shapes are all
// plain uint32 values, externally interned (see package intern) and
// dense from zero within each sort. Nothing in this package allocates or
// can fail except the range checks, which are O(1).
package ids

import "math"

// ID is the dense identifier type used across every engine. Zero is a
// valid, in-range ID; Absent is the only reserved sentinel.
type ID = uint32

// Absent is the all-ones sentinel denoting "no such identifier". It is
// never a valid dense ID produced by an Interner.
const Absent ID = math.MaxUint32

// Sort names one of the six identifier spaces. Sorts are never mixed:
// a subject ID and a class ID drawn from the same integer value refer to
// different entities unless a caller explicitly correlates them (e.g. the
// orchestrator mirroring rdf:type facts into the node-class matrix uses
// the object ID of a type triple as a class ID by convention, not because
// the sorts are unified).
type Sort int

const (
	SortSubject Sort = iota
	SortPredicate
	SortObject
	SortClass
	SortProperty
	SortShape
)

// String renders the sort name for error messages and logging.
func (s Sort) String() string {
	switch s {
	case SortSubject:
		return "subject"
	case SortPredicate:
		return "predicate"
	case SortObject:
		return "object"
	case SortClass:
		return "class"
	case SortProperty:
		return "property"
	case SortShape:
		return "shape"
	default:
		return "unknown-sort"
	}
}

// Capacity is the declared shape of every engine constructed from it: the
// maximum ID (exclusive) for each sort. It fixes every bit-matrix row
// width at construction time; matrices never resize implicitly during
// the hot phase.
type Capacity struct {
	Subjects   uint32
	Predicates uint32
	Objects    uint32
	Classes    uint32
	Properties uint32
	Shapes     uint32
}

