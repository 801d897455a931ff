// Package triplestore is the bit-vector indexed (subject, predicate,
// object) store: a predicate-subject bit-matrix, an object-subject
// bit-matrix, and a per-(predicate, subject) object list. Its only job
// is to answer ASK in bounded, data-size-independent time; everything
// that needs to scan the whole store (joins, reasoning, validation)
// lives in the packages built on top of it.
//
// Insertion is monotonic: there is no delete in the core. A caller that
// needs deletion semantics rebuilds a fresh Store.
package triplestore
