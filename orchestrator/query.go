package orchestrator

import (
	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/join"
	"github.com/katalvlaran/kgraphcore/shape"
	"github.com/katalvlaran/kgraphcore/triplestore"
)

// Ask answers a plain existence query, requiring only shared access.
func (o *Orchestrator) Ask(subject, predicate, object ids.ID) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.store.Ask(subject, predicate, object)
}

// AskBatch answers a batch of existence queries.
func (o *Orchestrator) AskBatch(patterns []triplestore.Pattern) []bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.store.AskBatch(patterns)
}

// AskWithReasoning answers (subject, predicate, object) using the
// reasoner's subproperty/subclass-aware fallback. Per §4.2, this never
// hard-fails for lack of materialization — it returns a defined but
// partial answer; callers that need to know whether the answer reflects
// every axiom added so far should check NeedsRematerialize.
func (o *Orchestrator) AskWithReasoning(subject, predicate, object ids.ID) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.reasoner.AskWithReasoning(o.store, subject, predicate, object)
}

// IsSubclassOf reports reflexive-transitive subclass subsumption. Like
// AskWithReasoning, a defined partial answer before Materialize.
func (o *Orchestrator) IsSubclassOf(sub, sup ids.ID) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.reasoner.IsSubclassOf(sub, sup)
}

// IsSubpropertyOf mirrors IsSubclassOf for properties.
func (o *Orchestrator) IsSubpropertyOf(sub, sup ids.ID) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.reasoner.IsSubpropertyOf(sub, sup)
}

// IsReflexive reports whether property p was asserted reflexive via
// AddAxiom(Axiom{Kind: AxiomReflexive}).
func (o *Orchestrator) IsReflexive(p ids.ID) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.reasoner.IsReflexive(p)
}

// ValidateNode validates node against the shape registered at slot.
func (o *Orchestrator) ValidateNode(node, slot ids.ID) (bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	ok, err := o.validator.ValidateNode(node, slot)
	if err != nil {
		return false, orchestratorErrorf("ValidateNode", err)
	}

	return ok, nil
}

// ValidateBatch validates every (node, slot) pair in pairs.
func (o *Orchestrator) ValidateBatch(pairs []shape.NodeShapePair) ([]bool, []error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.validator.ValidateBatch(pairs)
}

// SubjectsWith returns the subjects with at least one (predicate,
// object) edge, as a *join.ResultVec.
func (o *Orchestrator) SubjectsWith(predicate, object ids.ID) (*join.ResultVec, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	rv, err := join.SubjectsWith(o.store, predicate, object)
	if err != nil {
		return nil, orchestratorErrorf("SubjectsWith", err)
	}

	return rv, nil
}

// JoinConjunctive answers a conjunctive multi-pattern join over a shared
// subject variable.
func (o *Orchestrator) JoinConjunctive(patterns []join.BoundPattern) ([]ids.ID, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	subjects, err := join.JoinConjunctive(o.store, patterns)
	if err != nil {
		return nil, orchestratorErrorf("JoinConjunctive", err)
	}

	return subjects, nil
}

// Intersect, Union, Difference forward directly to package join's
// set-op laws; no orchestrator-specific behavior beyond the shared lock.
func (o *Orchestrator) Intersect(a, b *join.ResultVec) (*join.ResultVec, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return join.Intersect(a, b)
}

func (o *Orchestrator) Union(a, b *join.ResultVec) (*join.ResultVec, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return join.Union(a, b)
}

func (o *Orchestrator) Difference(a, b *join.ResultVec) (*join.ResultVec, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return join.Difference(a, b)
}
