// Package compliance certifies a declared schema shape against named
// cache-residency tiers (L1/L2/L3) without allocating any engine. It is
// a pure function of counts: given how many classes, properties, shapes,
// subjects, predicates, and objects a deployment expects, it sums the
// per-area KiB footprint every engine in this module would occupy and
// compares the total to fixed tier thresholds, attaching the matching
// latency/throughput guarantee.
//
// Package orchestrator does not call this package. A caller can certify
// the same counts before constructing an orchestrator, so an operator can
// reject a schema shape that would not fit its target tier without ever
// paying for the allocation.
package compliance
