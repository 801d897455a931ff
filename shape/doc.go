// Package shape compiles SHACL-style node shapes into fixed-size
// bitmask tuples and validates nodes against them along a bounded-
// instruction hot path: class-mask test, then required-property-mask
// test, with everything else (cardinality, in-set, length, numeric
// bounds, logical combinators, property paths) dispatched to a slower
// extended path that is explicitly allowed to leave the fixed
// instruction budget. There is no datatype constraint.
//
// The validator reads two bitmatrices — node-class and node-property —
// that mirror the triple store's rdf:type and has-property facts. This
// package never reads a *triplestore.Store directly from the hot path;
// keeping them consistent at insert time is a collaborator's job (see
// package orchestrator). The exception is the extended path: its
// cardinality, in-set, length, numeric and property-path constraints
// read a store's object lists, since they have no bitmask
// representation.
package shape
