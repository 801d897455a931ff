package reasoner

import "github.com/katalvlaran/kgraphcore/ids"

// AxiomKind tags the single sum type modeling every axiom the reasoner
// accepts, per the design notes' "dynamic dispatch -> tagged variants":
// one variant per axiom kind, each carrying only the IDs it needs.
type AxiomKind int

const (
	AxiomSubClass AxiomKind = iota
	AxiomEquivalentClass
	AxiomDisjoint
	AxiomSubProperty
	AxiomDomain
	AxiomRange
	AxiomFunctional
	AxiomInverseFunctional
	AxiomTransitive
	AxiomSymmetric
	AxiomReflexive
)

// Axiom is one entry in the append-only axiom log. A and B are
// interpreted per Kind: binary axioms (SubClass, EquivalentClass,
// Disjoint, SubProperty, Domain, Range) use both; unary
// property-characteristic axioms (Functional, InverseFunctional,
// Transitive, Symmetric, Reflexive) use only A.
type Axiom struct {
	Kind AxiomKind
	A, B ids.ID
}
