// Package intern assigns dense, zero-based ids.ID values to external
// string names, one independent namespace per ids.Sort. It is the
// inverse of the teacher's builder.IDFn habit of mapping a dense index
// to a display name: here a caller presents a name and gets back (or
// allocates) the dense ID every other engine in this module actually
// operates on.
//
// An Interner is a thin bookkeeping layer outside the hot query paths;
// nothing in triplestore, reasoner, shape, or compliance depends on it
// directly, it is only a convenience for callers who would otherwise
// have to manage their own dense numbering.
package intern
