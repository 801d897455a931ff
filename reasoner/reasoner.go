package reasoner

import (
	"github.com/katalvlaran/kgraphcore/bitmatrix"
	"github.com/katalvlaran/kgraphcore/ids"
)

const (
	opNew             = "New"
	opAddSubclass     = "AddSubclass"
	opAddEquivClass   = "AddEquivalentClass"
	opAddDisjoint     = "AddDisjoint"
	opAddSubproperty  = "AddSubproperty"
	opAddDomain       = "AddDomain"
	opAddRange        = "AddRange"
	opSetTransitive   = "SetTransitive"
	opSetSymmetric    = "SetSymmetric"
	opSetFunctional   = "SetFunctional"
	opSetInvFunc      = "SetInverseFunctional"
	opSetReflexive    = "SetReflexive"
)

// Property-characteristic rows: one bit per property, packed as rows of
// a single bitmatrix. The compliance model's footprint formula counts
// only the first four rows (transitive, symmetric, functional,
// inverse-functional), per spec.md §4.5's literal "4 *
// ceil(properties/64) * 8"; rowReflexive is carried here so
// AxiomReflexive has a real handler instead of a silent no-op, and its
// one extra row's bytes are the one documented undercount in the
// compliance footprint (see DESIGN.md).
const (
	rowTransitive = iota
	rowSymmetric
	rowFunctional
	rowInverseFunctional
	rowReflexive
	numCharacteristicRows
)

// Reasoner holds the subclass and subproperty closure matrices, the
// property-characteristic vectors, the domain/range axiom tables, and
// the append-only axiom log. It never references a *triplestore.Store
// except when Materialize or AskWithReasoning is called with one.
type Reasoner struct {
	maxClasses    uint32
	maxProperties uint32

	subclass       *bitmatrix.Matrix // C x C, row c = ancestor set of c (reflexive)
	subproperty    *bitmatrix.Matrix // R x R, same semantics for properties
	characteristic *bitmatrix.Matrix // numCharacteristicRows x R

	domain map[ids.ID][]ids.ID // predicate -> classes asserted as its domain
	rangeT map[ids.ID][]ids.ID // predicate -> classes asserted as its range

	disjoint map[[2]ids.ID]bool

	axiomLog []Axiom

	typePredicate ids.ID
	hasType       bool

	materialized bool
}

// Option configures a Reasoner at construction time.
type Option func(*Reasoner)

// WithTypePredicate declares the predicate ID used for rdf:type facts.
// Required only if domain/range axioms or AskWithReasoning's class-based
// fallback will be used; Materialize returns an error if a domain/range
// axiom exists without one configured.
func WithTypePredicate(p ids.ID) Option {
	return func(r *Reasoner) {
		r.typePredicate = p
		r.hasType = true
	}
}

// New allocates a Reasoner sized for maxClasses classes and
// maxProperties properties. The subclass and subproperty matrices start
// with their diagonals set (reflexivity: every class/property subsumes
// itself) before any axiom is added.
func New(maxClasses, maxProperties uint32, opts ...Option) (*Reasoner, error) {
	subclass, err := bitmatrix.NewMatrix(int(maxClasses), int(maxClasses))
	if err != nil {
		return nil, reasonerErrorf(opNew, ErrCapacityExceeded)
	}
	subproperty, err := bitmatrix.NewMatrix(int(maxProperties), int(maxProperties))
	if err != nil {
		return nil, reasonerErrorf(opNew, ErrCapacityExceeded)
	}
	characteristic, err := bitmatrix.NewMatrix(numCharacteristicRows, int(maxProperties))
	if err != nil {
		return nil, reasonerErrorf(opNew, ErrCapacityExceeded)
	}

	r := &Reasoner{
		maxClasses:     maxClasses,
		maxProperties:  maxProperties,
		subclass:       subclass,
		subproperty:    subproperty,
		characteristic: characteristic,
		domain:         make(map[ids.ID][]ids.ID),
		rangeT:         make(map[ids.ID][]ids.ID),
		disjoint:       make(map[[2]ids.ID]bool),
	}
	for _, opt := range opts {
		opt(r)
	}

	for c := uint32(0); c < maxClasses; c++ {
		_ = r.subclass.Set(int(c), int(c))
	}
	for p := uint32(0); p < maxProperties; p++ {
		_ = r.subproperty.Set(int(p), int(p))
	}

	return r, nil
}

func disjointKey(a, b ids.ID) [2]ids.ID {
	if a < b {
		return [2]ids.ID{a, b}
	}

	return [2]ids.ID{b, a}
}

// invalidate marks materialization stale; called by every mutation after
// the reasoner has been loaded once. Re-entering Loading after
// Materialized invalidates materialization per §4.2's state machine.
func (r *Reasoner) invalidate() {
	r.materialized = false
}

// AddSubclass asserts sub ⊑ sup directly (before transitive closure).
// Constant-time matrix write plus an axiom-log append.
func (r *Reasoner) AddSubclass(sub, sup ids.ID) error {
	if err := ids.CheckRange(ids.SortClass, sub, r.maxClasses); err != nil {
		return reasonerErrorf(opAddSubclass, err)
	}
	if err := ids.CheckRange(ids.SortClass, sup, r.maxClasses); err != nil {
		return reasonerErrorf(opAddSubclass, err)
	}
	_ = r.subclass.Set(int(sub), int(sup))
	r.axiomLog = append(r.axiomLog, Axiom{Kind: AxiomSubClass, A: sub, B: sup})
	r.invalidate()

	return nil
}

// AddEquivalentClass asserts a ≡ b by setting subclass bits in both
// directions before closure, per the design notes: equivalence is
// implemented as bidirectional subclass addition, not a separate pass.
func (r *Reasoner) AddEquivalentClass(a, b ids.ID) error {
	if err := ids.CheckRange(ids.SortClass, a, r.maxClasses); err != nil {
		return reasonerErrorf(opAddEquivClass, err)
	}
	if err := ids.CheckRange(ids.SortClass, b, r.maxClasses); err != nil {
		return reasonerErrorf(opAddEquivClass, err)
	}
	_ = r.subclass.Set(int(a), int(b))
	_ = r.subclass.Set(int(b), int(a))
	r.axiomLog = append(r.axiomLog, Axiom{Kind: AxiomEquivalentClass, A: a, B: b})
	r.invalidate()

	return nil
}

// AddDisjoint records that a and b must never share an instance. This
// core does not itself enforce disjointness against store contents (no
// TBox saturation beyond subclass/subproperty closure, per §1's
// Non-goals); it is recorded so a caller can query IsDisjoint.
func (r *Reasoner) AddDisjoint(a, b ids.ID) error {
	if err := ids.CheckRange(ids.SortClass, a, r.maxClasses); err != nil {
		return reasonerErrorf(opAddDisjoint, err)
	}
	if err := ids.CheckRange(ids.SortClass, b, r.maxClasses); err != nil {
		return reasonerErrorf(opAddDisjoint, err)
	}
	r.disjoint[disjointKey(a, b)] = true
	r.axiomLog = append(r.axiomLog, Axiom{Kind: AxiomDisjoint, A: a, B: b})
	r.invalidate()

	return nil
}

// IsDisjoint reports whether a and b were ever asserted disjoint (in
// either order). O(1).
func (r *Reasoner) IsDisjoint(a, b ids.ID) bool {
	return r.disjoint[disjointKey(a, b)]
}

// AddSubproperty asserts sub ⊑ sup for properties, mirroring AddSubclass.
func (r *Reasoner) AddSubproperty(sub, sup ids.ID) error {
	if err := ids.CheckRange(ids.SortProperty, sub, r.maxProperties); err != nil {
		return reasonerErrorf(opAddSubproperty, err)
	}
	if err := ids.CheckRange(ids.SortProperty, sup, r.maxProperties); err != nil {
		return reasonerErrorf(opAddSubproperty, err)
	}
	_ = r.subproperty.Set(int(sub), int(sup))
	r.axiomLog = append(r.axiomLog, Axiom{Kind: AxiomSubProperty, A: sub, B: sup})
	r.invalidate()

	return nil
}

// AddDomain asserts domain(p, c): every subject with predicate p set is
// inferred to be of class c at Materialize time.
func (r *Reasoner) AddDomain(p, c ids.ID) error {
	if err := ids.CheckRange(ids.SortProperty, p, r.maxProperties); err != nil {
		return reasonerErrorf(opAddDomain, err)
	}
	if err := ids.CheckRange(ids.SortClass, c, r.maxClasses); err != nil {
		return reasonerErrorf(opAddDomain, err)
	}
	r.domain[p] = append(r.domain[p], c)
	r.axiomLog = append(r.axiomLog, Axiom{Kind: AxiomDomain, A: p, B: c})
	r.invalidate()

	return nil
}

// AddRange asserts range(p, c): every object reached via p is inferred
// to be of class c at Materialize time.
func (r *Reasoner) AddRange(p, c ids.ID) error {
	if err := ids.CheckRange(ids.SortProperty, p, r.maxProperties); err != nil {
		return reasonerErrorf(opAddRange, err)
	}
	if err := ids.CheckRange(ids.SortClass, c, r.maxClasses); err != nil {
		return reasonerErrorf(opAddRange, err)
	}
	r.rangeT[p] = append(r.rangeT[p], c)
	r.axiomLog = append(r.axiomLog, Axiom{Kind: AxiomRange, A: p, B: c})
	r.invalidate()

	return nil
}

func (r *Reasoner) setCharacteristic(op string, row int, kind AxiomKind, p ids.ID) error {
	if err := ids.CheckRange(ids.SortProperty, p, r.maxProperties); err != nil {
		return reasonerErrorf(op, err)
	}
	_ = r.characteristic.Set(row, int(p))
	r.axiomLog = append(r.axiomLog, Axiom{Kind: kind, A: p})
	r.invalidate()

	return nil
}

// SetTransitive marks property p transitive.
func (r *Reasoner) SetTransitive(p ids.ID) error {
	return r.setCharacteristic(opSetTransitive, rowTransitive, AxiomTransitive, p)
}

// SetSymmetric marks property p symmetric.
func (r *Reasoner) SetSymmetric(p ids.ID) error {
	return r.setCharacteristic(opSetSymmetric, rowSymmetric, AxiomSymmetric, p)
}

// SetFunctional marks property p functional.
func (r *Reasoner) SetFunctional(p ids.ID) error {
	return r.setCharacteristic(opSetFunctional, rowFunctional, AxiomFunctional, p)
}

// SetInverseFunctional marks property p inverse-functional.
func (r *Reasoner) SetInverseFunctional(p ids.ID) error {
	return r.setCharacteristic(opSetInvFunc, rowInverseFunctional, AxiomInverseFunctional, p)
}

// SetReflexive marks property p reflexive: every individual relates to
// itself under p. Recorded as a characteristic bit like the other four;
// this core does not itself inject (s, p, s) facts into a store (no TBox
// saturation beyond subclass/subproperty closure, per §1's Non-goals),
// so IsReflexive is a query-time fact callers can use to drive their own
// per-subject injection if they choose to.
func (r *Reasoner) SetReflexive(p ids.ID) error {
	return r.setCharacteristic(opSetReflexive, rowReflexive, AxiomReflexive, p)
}

// IsTransitive, IsSymmetric, IsFunctional, IsInverseFunctional, IsReflexive
// report the property-characteristic bits. O(1).
func (r *Reasoner) IsTransitive(p ids.ID) bool        { return r.testCharacteristic(rowTransitive, p) }
func (r *Reasoner) IsSymmetric(p ids.ID) bool         { return r.testCharacteristic(rowSymmetric, p) }
func (r *Reasoner) IsFunctional(p ids.ID) bool        { return r.testCharacteristic(rowFunctional, p) }
func (r *Reasoner) IsInverseFunctional(p ids.ID) bool { return r.testCharacteristic(rowInverseFunctional, p) }
func (r *Reasoner) IsReflexive(p ids.ID) bool         { return r.testCharacteristic(rowReflexive, p) }

func (r *Reasoner) testCharacteristic(row int, p ids.ID) bool {
	if p >= r.maxProperties {
		return false
	}

	return r.characteristic.Test(row, int(p))
}

// AxiomLog returns the append-only log of every axiom added so far, in
// insertion order. Primarily used by Materialize and by tests/fixtures
// (package syntheticgraph) that want to replay an ontology.
func (r *Reasoner) AxiomLog() []Axiom {
	out := make([]Axiom, len(r.axiomLog))
	copy(out, r.axiomLog)

	return out
}

// Materialized reports whether the closures reflect every axiom added so
// far. False immediately after construction and after any mutating call
// since the last Materialize.
func (r *Reasoner) Materialized() bool { return r.materialized }
