// Package syntheticgraph generates triple, axiom, and shape fixtures for
// tests, benchmarks, and examples across this module. It is the adapted
// form of the teacher's graph-topology generator package: the same
// closure-returning constructor shape, the same fixed-minimum validation
// habit, and the same deterministic-by-construction id sequencing, but
// producing dense ids.ID sequences and reasoner.Axiom/triplestore.Triple
// values instead of string-keyed core.Graph vertices and edges.
//
// Nothing here is reachable from a mutation or query API; these
// constructors exist only to feed tests, benchmarks, and doc examples
// with realistic, reproducible data.
package syntheticgraph
