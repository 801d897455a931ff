// Package reasoner precomputes transitive closures of the subclass and
// subproperty graphs as bit-matrices, giving O(1) subsumption queries
// after an explicit materialize() call. It is kept separate from package
// triplestore so the store's hot ASK path stays cache-thin; the reasoner
// references a *triplestore.Store only to read predicate/object facts
// during materialization and to answer the store-aware
// AskWithReasoning query.
//
// State machine (shared with triplestore at the orchestrator level):
// Empty -> Loading (AddSubclass/AddAxiom...) -> Materialized
// (Materialize called) -> Queried. Adding an axiom after Materialized
// invalidates materialization; until Materialize is called again,
// AskWithReasoning and IsSubclassOf answer from the closure computed by
// the last Materialize plus any edges asserted since (before the first
// Materialize, from the asserted edges alone) — this is a defined,
// partial answer per §4.2, never an error.
package reasoner
