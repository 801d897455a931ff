package triplestore

import "github.com/katalvlaran/kgraphcore/ids"

// Triple is a (subject, predicate, object) tuple of dense IDs.
type Triple struct {
	Subject   ids.ID
	Predicate ids.ID
	Object    ids.ID
}

// Pattern is a single ASK query, shaped identically to Triple; the two
// types are kept distinct so call sites read as "a query" vs "a fact".
type Pattern struct {
	Subject   ids.ID
	Predicate ids.ID
	Object    ids.ID
}
