// Package kgraphcore is an in-memory knowledge-graph engine: a dense
// bit-matrix triple store, an OWL-style reasoner with bit-parallel
// transitive closures, a SHACL-style shape validator reduced to bitmask
// tests, and a cache-tier compliance certifier.
//
// Subpackages:
//
//	ids             dense integer identifiers and capacity bounds
//	bitmatrix       word-packed bit matrices and their bulk kernels
//	triplestore     subject/predicate/object triple storage and ASK
//	join            conjunctive joins over triple-store bit vectors
//	reasoner        subclass/subproperty/characteristic axioms and closure
//	shape           compiled shape validation
//	compliance      cache-tier footprint and certification
//	intern          string<->ids.ID interning
//	orchestrator    the aggregate wiring all engines together
//	syntheticgraph  deterministic fixture generators for tests and benchmarks
package kgraphcore
