// Package orchestrator owns one triplestore.Store, one reasoner.Reasoner,
// one shape.Validator, and one intern.Interner, and exposes the unified
// query surface a caller of this module actually wants: ask,
// ask_with_reasoning, validate_node, validate_batch, is_subclass_of,
// subjects_with, and the set operations from package join.
//
// It mirrors facts across engines at insert time so each engine's own
// hot path stays free of cross-engine lookups: adding an rdf:type
// triple also sets the validator's node-class bit; adding any triple
// also sets the validator's node-property bit for (subject, predicate).
// Nothing is written to the reasoner at insert time; it reads rdf:type
// facts from the store during Materialize and AskWithReasoning.
//
// Phase discipline follows the teacher's core.Graph locking shape,
// collapsed to a single sync.RWMutex that guards mutation vs. query
// access, and a materialized flag tracks whether the reasoner's closures
// are known to reflect every triple and axiom added so far. Query methods that depend on
// materialization do not hard-fail when stale; they instead expose
// NeedsRematerialize so a caller can decide whether a partial answer is
// acceptable, per §4.2's defined-partial-answer contract.
package orchestrator
