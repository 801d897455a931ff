package intern

import "github.com/katalvlaran/kgraphcore/ids"

const (
	opIntern  = "Intern"
	opResolve = "Resolve"
)

// namespace is one sort's bidirectional name<->ID table, dense and
// zero-based, grown one slot at a time as new names are seen.
type namespace struct {
	byName map[string]ids.ID
	byID   []string
	cap    uint32
}

func newNamespace(capacity uint32) *namespace {
	return &namespace{
		byName: make(map[string]ids.ID),
		byID:   make([]string, 0, capacity),
		cap:    capacity,
	}
}

func (n *namespace) intern(name string) (ids.ID, error) {
	if id, ok := n.byName[name]; ok {
		return id, nil
	}
	if uint32(len(n.byID)) >= n.cap {
		return ids.Absent, ErrCapacityExceeded
	}
	id := ids.ID(len(n.byID))
	n.byID = append(n.byID, name)
	n.byName[name] = id

	return id, nil
}

func (n *namespace) resolve(id ids.ID) (string, error) {
	if id >= uint32(len(n.byID)) {
		return "", ErrOutOfRange
	}

	return n.byID[id], nil
}

// Interner allocates dense IDs for external names independently per
// ids.Sort. Its zero value is not usable; construct with New.
type Interner struct {
	spaces map[ids.Sort]*namespace
}

// New allocates an Interner with a fixed capacity per sort, mirroring
// the same per-sort Capacity every engine in this module is constructed
// from.
func New(capacity ids.Capacity) *Interner {
	return &Interner{
		spaces: map[ids.Sort]*namespace{
			ids.SortSubject:   newNamespace(capacity.Subjects),
			ids.SortPredicate: newNamespace(capacity.Predicates),
			ids.SortObject:    newNamespace(capacity.Objects),
			ids.SortClass:     newNamespace(capacity.Classes),
			ids.SortProperty:  newNamespace(capacity.Properties),
			ids.SortShape:     newNamespace(capacity.Shapes),
		},
	}
}

// Intern returns the dense ID for name within sort, allocating a new one
// (in insertion order, starting at zero) the first time name is seen.
// Repeated calls with the same (sort, name) pair are idempotent.
func (in *Interner) Intern(sort ids.Sort, name string) (ids.ID, error) {
	ns, ok := in.spaces[sort]
	if !ok {
		return ids.Absent, internErrorf(opIntern, ErrOutOfRange)
	}
	id, err := ns.intern(name)
	if err != nil {
		return ids.Absent, internErrorf(opIntern, err)
	}

	return id, nil
}

// Resolve returns the name previously interned for (sort, id).
func (in *Interner) Resolve(sort ids.Sort, id ids.ID) (string, error) {
	ns, ok := in.spaces[sort]
	if !ok {
		return "", internErrorf(opResolve, ErrOutOfRange)
	}
	name, err := ns.resolve(id)
	if err != nil {
		return "", internErrorf(opResolve, err)
	}

	return name, nil
}

// Count returns how many distinct names have been interned for sort.
func (in *Interner) Count(sort ids.Sort) int {
	ns, ok := in.spaces[sort]
	if !ok {
		return 0
	}

	return len(ns.byID)
}
