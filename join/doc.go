// Package join operates on result vectors — bit-vectors over subjects
// (or objects) with a precomputed cardinality — and provides the
// conjunctive join kernel used to answer multi-pattern ASK queries such
// as "(?x, rdf:type, Employee) AND (?x, department, 210)".
//
// Joins are associative and commutative; this package does not choose an
// evaluation order (a least-cardinality-first planner is an external
// collaborator per spec.md §4.3 and out of scope here). Callers supply
// patterns in whatever order they like; JoinConjunctive evaluates them
// left to right with early termination once the accumulated cardinality
// reaches zero.
package join
