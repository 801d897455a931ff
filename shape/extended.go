package shape

import (
	"math/bits"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/triplestore"
)

const (
	opValidateCardinality = "validateCardinality"
	opValidateInSet       = "validateInSet"
	opValidateLength      = "validateLength"
	opValidateNumeric     = "validateNumeric"
	opValidatePath        = "validatePath"
)

// LogicalCombinator names how a shape's sub-constraints combine.
// Mirrors SHACL's sh:and/sh:or/sh:not/sh:xone.
type LogicalCombinator int

const (
	// CombinatorAnd requires every sub-constraint to hold.
	CombinatorAnd LogicalCombinator = iota
	// CombinatorOr requires at least one sub-constraint to hold.
	CombinatorOr
	// CombinatorNot requires the single sub-constraint to not hold.
	CombinatorNot
	// CombinatorXone requires exactly one sub-constraint to hold.
	CombinatorXone
)

// PathStep is one segment of a property-path constraint: a predicate,
// optionally inverted, optionally repeated (* for zero-or-more, + for
// one-or-more, ? for zero-or-one — Min/Max encode this directly instead
// of a separate enum, so Min=0,Max=1 is "?", Min=1,Max=maxInt is "+").
// Min=0 admits the zero-hop path (the start node itself); a step with
// Min and Max both 0 is a plain single hop.
type PathStep struct {
	Predicate ids.ID
	Inverse   bool
	Min, Max  int
}

// CardinalityConstraint bounds how many values a property may have on a
// targeted node (node-property existence is boolean in the mirrored
// matrix, so cardinality is evaluated against the store's object list,
// not the bitmask).
type CardinalityConstraint struct {
	Property ids.ID
	MinCount int
	MaxCount int // 0 means unbounded
}

// InSetConstraint requires a property's value set to be a subset of
// Allowed.
type InSetConstraint struct {
	Property ids.ID
	Allowed  map[ids.ID]bool
}

// LengthConstraint bounds the number of distinct objects a property has
// (same cardinality machinery, kept distinct from CardinalityConstraint
// to match the sources' separate sh:minCount/sh:minLength naming).
type LengthConstraint struct {
	Property  ids.ID
	MinLength int
	MaxLength int
}

// NumericConstraint bounds every object value of a property numerically.
// Object IDs double as numeric values here (the dense ID space is the
// only value representation this core carries).
type NumericConstraint struct {
	Property       ids.ID
	MinInclusive   int64
	MaxInclusive   int64
	HasMin, HasMax bool
}

// ExtendedConstraints bundles every non-hot-path constraint a shape may
// carry. At most one field group is typically populated per shape but
// nothing prevents combining them; all populated groups must pass.
type ExtendedConstraints struct {
	Cardinality []CardinalityConstraint
	InSet       []InSetConstraint
	Length      []LengthConstraint
	Numeric     []NumericConstraint
	Paths       []PathConstraint
	Combinator  *CombinatorConstraint

	Store *triplestore.Store // required only when Cardinality/InSet/Length/Numeric/Paths are set
}

// PathConstraint requires that walking Steps from a node (via the
// store's object lists) reaches at least one node satisfying the bare
// existence test — property-path evaluation has no bitmask
// representation, so, like the cardinality, in-set, length and numeric
// constraints, it reads the store directly instead of a mirrored matrix.
type PathConstraint struct {
	Steps []PathStep
	// TargetObject, if non-absent, requires the path to reach exactly
	// this object; otherwise any reachable node satisfies the path.
	TargetObject ids.ID
}

// CombinatorConstraint composes sub-shape slot references with a
// LogicalCombinator. Sub-shapes are validated recursively through the
// owning Validator.
type CombinatorConstraint struct {
	Kind  LogicalCombinator
	Slots []ids.ID
}

// validateExtended dispatches every populated constraint group in turn,
// short-circuiting on the first failure. This is explicitly outside the
// §4.4 hot-path budget; it is only reached once the fixed sequence has
// already passed.
func validateExtended(v *Validator, node ids.ID, ext *ExtendedConstraints) (bool, error) {
	for _, c := range ext.Cardinality {
		ok, err := validateCardinality(ext.Store, node, c)
		if err != nil || !ok {
			return ok, err
		}
	}
	for _, c := range ext.InSet {
		ok, err := validateInSet(ext.Store, node, c)
		if err != nil || !ok {
			return ok, err
		}
	}
	for _, c := range ext.Length {
		ok, err := validateLength(ext.Store, node, c)
		if err != nil || !ok {
			return ok, err
		}
	}
	for _, c := range ext.Numeric {
		ok, err := validateNumeric(ext.Store, node, c)
		if err != nil || !ok {
			return ok, err
		}
	}
	for _, c := range ext.Paths {
		ok, err := validatePath(ext.Store, node, c)
		if err != nil || !ok {
			return ok, err
		}
	}
	if ext.Combinator != nil {
		return validateCombinator(v, node, *ext.Combinator)
	}

	return true, nil
}

// validateCardinality checks MinCount <= |objects(node, property)| <=
// MaxCount (MaxCount==0 meaning unbounded). Mirrors the teacher's
// validateMin: one precondition, one formatted error.
func validateCardinality(store *triplestore.Store, node ids.ID, c CardinalityConstraint) (bool, error) {
	if store == nil {
		return false, shapeErrorf(opValidateCardinality, ErrInvalidDimensions)
	}
	n := len(store.Objects(node, c.Property))
	if n < c.MinCount {
		return false, nil
	}
	if c.MaxCount > 0 && n > c.MaxCount {
		return false, nil
	}

	return true, nil
}

// validateInSet checks every object of (node, property) is a member of
// Allowed.
func validateInSet(store *triplestore.Store, node ids.ID, c InSetConstraint) (bool, error) {
	if store == nil {
		return false, shapeErrorf(opValidateInSet, ErrInvalidDimensions)
	}
	for _, o := range store.Objects(node, c.Property) {
		if !c.Allowed[o] {
			return false, nil
		}
	}

	return true, nil
}

// validateLength mirrors validateCardinality with sh:minLength/maxLength
// naming; kept as a distinct routine rather than an alias so the two
// constraint kinds can diverge independently.
func validateLength(store *triplestore.Store, node ids.ID, c LengthConstraint) (bool, error) {
	if store == nil {
		return false, shapeErrorf(opValidateLength, ErrInvalidDimensions)
	}
	n := len(store.Objects(node, c.Property))
	if n < c.MinLength {
		return false, nil
	}
	if c.MaxLength > 0 && n > c.MaxLength {
		return false, nil
	}

	return true, nil
}

// validateNumeric checks every object value of (node, property) falls
// within [MinInclusive, MaxInclusive] where each bound is active.
func validateNumeric(store *triplestore.Store, node ids.ID, c NumericConstraint) (bool, error) {
	if store == nil {
		return false, shapeErrorf(opValidateNumeric, ErrInvalidDimensions)
	}
	for _, o := range store.Objects(node, c.Property) {
		v := int64(o)
		if c.HasMin && v < c.MinInclusive {
			return false, nil
		}
		if c.HasMax && v > c.MaxInclusive {
			return false, nil
		}
	}

	return true, nil
}

// validatePath walks Steps from node through the store's object lists,
// testing reachability. A Min/Max-bounded step (the */+/?  path
// operators) is evaluated with a bounded-depth walk: Max caps the number
// of repetitions tried (property paths in this core are never
// unbounded-depth searches over a possibly cyclic graph).
func validatePath(store *triplestore.Store, node ids.ID, c PathConstraint) (bool, error) {
	if store == nil {
		return false, shapeErrorf(opValidatePath, ErrInvalidDimensions)
	}

	frontier := []ids.ID{node}
	for _, step := range c.Steps {
		next := map[ids.ID]bool{}
		maxHops := step.Max
		if maxHops <= 0 {
			maxHops = 1
		}
		minHops := step.Min
		if minHops < 0 || (minHops == 0 && step.Max <= 0) {
			minHops = 1
		}

		for _, n := range frontier {
			if minHops == 0 {
				next[n] = true
			}
			walkStep(store, n, step, minHops, maxHops, next)
		}
		if len(next) == 0 {
			return false, nil
		}

		frontier = make([]ids.ID, 0, len(next))
		for n := range next {
			frontier = append(frontier, n)
		}
	}

	if c.TargetObject == ids.Absent {
		return len(frontier) > 0, nil
	}
	for _, n := range frontier {
		if n == c.TargetObject {
			return true, nil
		}
	}

	return false, nil
}

// walkStep expands one path step from n out to maxHops repetitions,
// recording every node reached at >= minHops into reached. Past minHops
// each node is expanded at most once, so the walk stops as soon as no new
// node turns up, even for a very large maxHops on a cyclic graph. A forward
// step follows store.Objects(c, predicate); an inverse step walks the
// predicate backwards, scanning the predicate-subject row for every
// subject s with (s, predicate, c) asserted — O(maxSubjects) per hop,
// since the store keeps no object-to-subjects index for a fixed
// predicate (package join's object-subject matrix is predicate-agnostic,
// so it cannot serve this lookup either).
func walkStep(store *triplestore.Store, n ids.ID, step PathStep, minHops, maxHops int, reached map[ids.ID]bool) {
	current := []ids.ID{n}
	expanded := map[ids.ID]bool{}
	for hop := 1; hop <= maxHops; hop++ {
		var frontier []ids.ID
		for _, c := range current {
			if hop > minHops {
				if expanded[c] {
					continue
				}
				expanded[c] = true
			}
			if step.Inverse {
				frontier = append(frontier, inverseObjects(store, step.Predicate, c)...)
			} else {
				frontier = append(frontier, store.Objects(c, step.Predicate)...)
			}
		}
		if len(frontier) == 0 {
			break
		}
		if hop >= minHops {
			for _, f := range frontier {
				reached[f] = true
			}
		}
		current = frontier
	}
}

// inverseObjects returns every subject s such that (s, predicate, object)
// is asserted, by scanning the predicate-subject row's set bits and
// confirming each candidate against the object list.
func inverseObjects(store *triplestore.Store, predicate, object ids.ID) []ids.ID {
	var out []ids.ID
	for _, s := range bitsSet(store.PredicateSubjectRow(predicate)) {
		subject := ids.ID(s)
		if store.Ask(subject, predicate, object) {
			out = append(out, subject)
		}
	}

	return out
}

// bitsSet returns every set-bit column index across a word-packed row, in
// ascending order. Mirrors package reasoner's materialize-time helper of
// the same name; kept local rather than exported from bitmatrix since
// this bit-at-a-time walk is an extended-path (not hot-path) concern.
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

// validateCombinator evaluates Kind over the referenced sub-shape slots,
// validating node against each through v recursively.
func validateCombinator(v *Validator, node ids.ID, c CombinatorConstraint) (bool, error) {
	trueCount := 0
	for _, slot := range c.Slots {
		ok, err := v.ValidateNode(node, slot)
		if err != nil {
			return false, err
		}
		if ok {
			trueCount++
		}
	}

	switch c.Kind {
	case CombinatorAnd:
		return trueCount == len(c.Slots), nil
	case CombinatorOr:
		return trueCount > 0, nil
	case CombinatorNot:
		return trueCount == 0, nil
	case CombinatorXone:
		return trueCount == 1, nil
	default:
		return false, nil
	}
}
