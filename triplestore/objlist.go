package triplestore

import "github.com/katalvlaran/kgraphcore/ids"

// objCell is the per-(predicate, subject) unique object set. The vast
// majority of edges in a knowledge graph are single-valued for a given
// (predicate, subject) pair, so the head slot is tested with a single
// comparison and the overflow slice — allocated lazily — only exists for
// genuinely multi-valued properties. This is the small-vector-optimized
// container the design notes permit in place of the sources' head-cell
// linked list; the contract ("unique-set of objects with cheap
// singleton") is identical.
type objCell struct {
	head    ids.ID
	hasHead bool
	overflow []ids.ID // additional objects beyond head, unique, append-order
}

// contains reports whether o is already present in the cell.
func (c *objCell) contains(o ids.ID) bool {
	if c.hasHead && c.head == o {
		return true
	}
	for _, x := range c.overflow {
		if x == o {
			return true
		}
	}

	return false
}

// add inserts o if absent. Returns true if this call actually added a
// new object (AddTriple, its only caller, ignores it since insertion is
// defined to be idempotent regardless).
func (c *objCell) add(o ids.ID) bool {
	if c.contains(o) {
		return false
	}
	if !c.hasHead {
		c.head = o
		c.hasHead = true

		return true
	}
	c.overflow = append(c.overflow, o)

	return true
}

// objects returns every object in the cell, head first, in insertion
// order. Used by the extended (non-hot-path) traversal callers such as
// the reasoner's domain/range injection and the shape validator's
// property-path walker.
func (c *objCell) objects() []ids.ID {
	if c == nil {
		return nil
	}
	out := make([]ids.ID, 0, 1+len(c.overflow))
	if c.hasHead {
		out = append(out, c.head)
	}

	return append(out, c.overflow...)
}
