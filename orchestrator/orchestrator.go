package orchestrator

import (
	"sync"

	"github.com/katalvlaran/kgraphcore/ids"
	"github.com/katalvlaran/kgraphcore/intern"
	"github.com/katalvlaran/kgraphcore/reasoner"
	"github.com/katalvlaran/kgraphcore/shape"
	"github.com/katalvlaran/kgraphcore/triplestore"
)

const (
	opNew           = "New"
	opAddTriple     = "AddTriple"
	opAddAxiom      = "AddAxiom"
	opRegisterShape = "RegisterShape"
	opMaterialize   = "Materialize"
)

// phase names the two cooperative phases §5 describes per engine. The
// orchestrator tracks one phase for the whole aggregate rather than per
// engine, since every mutation method here touches at least the store.
type phase int

const (
	phaseMutation phase = iota
	phaseQuery
)

// Config declares every capacity the owned engines are constructed
// from, plus the predicate used for rdf:type facts (passed to the
// reasoner, and used by the orchestrator to mirror type triples into the
// validator).
type Config struct {
	ids.Capacity
	MaxNodes      uint32 // shape validator's node dimension; usually == Subjects
	TypePredicate ids.ID
}

// Orchestrator owns the triple store, reasoner, shape validator, and
// interner as a single aggregate with one phase and one lock, mirroring
// the teacher's core.Graph RWMutex-pair discipline collapsed to a
// single pair since every mutation here is cross-engine.
type Orchestrator struct {
	mu    sync.RWMutex
	phase phase

	cfg Config

	store     *triplestore.Store
	reasoner  *reasoner.Reasoner
	validator *shape.Validator
	interner  *intern.Interner

	materialized bool
}

// New allocates the four owned engines sized per cfg.
func New(cfg Config) (*Orchestrator, error) {
	store, err := triplestore.New(cfg.Subjects, cfg.Predicates, cfg.Objects)
	if err != nil {
		return nil, orchestratorErrorf(opNew, err)
	}
	r, err := reasoner.New(cfg.Classes, cfg.Properties, reasoner.WithTypePredicate(cfg.TypePredicate))
	if err != nil {
		return nil, orchestratorErrorf(opNew, err)
	}
	v, err := shape.NewValidator(cfg.MaxNodes, cfg.Classes, cfg.Properties, cfg.Shapes)
	if err != nil {
		return nil, orchestratorErrorf(opNew, err)
	}

	return &Orchestrator{
		cfg:       cfg,
		store:     store,
		reasoner:  r,
		validator: v,
		interner:  intern.New(cfg.Capacity),
		phase:     phaseMutation,
	}, nil
}

// Interner exposes the owned string interner, a collaborator callers may
// use directly without going through the orchestrator's query surface.
func (o *Orchestrator) Interner() *intern.Interner { return o.interner }

// NeedsRematerialize reports whether a triple or axiom has been added
// since the last successful Materialize (or Materialize has not run
// yet), making reasoning-dependent answers
// (AskWithReasoning, IsSubclassOf) a defined but partial view of the
// current axiom set. This is the documented re-materialize-required
// signal referenced by §7/§8 property 10's option (b), chosen over
// hard-erroring from AskWithReasoning itself because §4.2 explicitly
// requires that path to return a defined partial answer, never an
// error.
func (o *Orchestrator) NeedsRematerialize() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return !o.materialized
}
