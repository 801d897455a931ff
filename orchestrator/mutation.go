package orchestrator

import (
	"context"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/internal/klog"
	"github.com/katalvlaran/kgraphcore/reasoner"
	"github.com/katalvlaran/kgraphcore/shape"
)

// AddTriple inserts (subject, predicate, object) into the store and
// mirrors its consequences into the validator:
//
//   - If predicate is the configured type predicate, object is a class:
//     the validator's node-class bit (subject, object) is set.
//   - In every case, the validator's node-property bit (subject,
//     predicate) is set, so has-property constraints stay in sync
//     without the validator ever consulting the store's object lists on
//     its hot path.
//
// Requires exclusive (mutation-phase) access.
func (o *Orchestrator) AddTriple(subject, predicate, object ids.ID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.store.AddTriple(subject, predicate, object); err != nil {
		return orchestratorErrorf(opAddTriple, err)
	}
	if predicate == o.cfg.TypePredicate {
		if err := o.validator.SetClass(subject, object); err != nil {
			return orchestratorErrorf(opAddTriple, err)
		}
	}
	if err := o.validator.SetProperty(subject, predicate); err != nil {
		return orchestratorErrorf(opAddTriple, err)
	}

	o.invalidate()

	return nil
}

// AddAxiom forwards a to the reasoner's matching adder and invalidates
// materialization. It is the orchestrator's single entry point for
// axiom mutation so callers never touch package reasoner directly.
func (o *Orchestrator) AddAxiom(a reasoner.Axiom) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var err error
	switch a.Kind {
	case reasoner.AxiomSubClass:
		err = o.reasoner.AddSubclass(a.A, a.B)
	case reasoner.AxiomEquivalentClass:
		err = o.reasoner.AddEquivalentClass(a.A, a.B)
	case reasoner.AxiomDisjoint:
		err = o.reasoner.AddDisjoint(a.A, a.B)
	case reasoner.AxiomSubProperty:
		err = o.reasoner.AddSubproperty(a.A, a.B)
	case reasoner.AxiomDomain:
		err = o.reasoner.AddDomain(a.A, a.B)
	case reasoner.AxiomRange:
		err = o.reasoner.AddRange(a.A, a.B)
	case reasoner.AxiomTransitive:
		err = o.reasoner.SetTransitive(a.A)
	case reasoner.AxiomSymmetric:
		err = o.reasoner.SetSymmetric(a.A)
	case reasoner.AxiomFunctional:
		err = o.reasoner.SetFunctional(a.A)
	case reasoner.AxiomInverseFunctional:
		err = o.reasoner.SetInverseFunctional(a.A)
	case reasoner.AxiomReflexive:
		err = o.reasoner.SetReflexive(a.A)
	}
	if err != nil {
		return orchestratorErrorf(opAddAxiom, err)
	}

	o.invalidate()

	return nil
}

// RegisterShape installs a compiled shape at slot.
func (o *Orchestrator) RegisterShape(slot ids.ID, s shape.CompiledShape) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.validator.RegisterShape(slot, s); err != nil {
		return orchestratorErrorf(opRegisterShape, err)
	}

	return nil
}

// Materialize runs the reasoner's transitive closures and domain/range
// injection against the store, then transitions the aggregate into the
// query phase. Logs the phase transition via klog, matching the
// ambient logging convention: mutation-phase transitions are the only
// events this module logs by default.
func (o *Orchestrator) Materialize(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.reasoner.Materialize(ctx, o.store); err != nil {
		return orchestratorErrorf(opMaterialize, err)
	}

	o.materialized = true
	o.phase = phaseQuery
	klog.Phase("materialize", "classes", o.cfg.Classes, "properties", o.cfg.Properties)

	return nil
}

// invalidate marks materialization stale and drops back to the mutation
// phase. Called by every mutating method; re-entering mutation after a
// prior Materialize is explicitly permitted by §5 but invalidates any
// reasoning-dependent answer until Materialize runs again.
func (o *Orchestrator) invalidate() {
	if o.materialized {
		klog.Phase("invalidate", "reason", "mutation after materialize")
	}
	o.materialized = false
	o.phase = phaseMutation
}
