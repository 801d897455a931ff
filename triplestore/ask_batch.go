package triplestore

// batchWidth is the SIMD-style group size for AskBatch: four patterns'
// worth of loads are arranged so they are data-independent of one
// another, matching §4.1's "4 chunk/bit computes, 4 predicate-word
// loads, ... 4 head-cell compares" shape. A scalar Go compiler will not
// literally vectorize this, but the loop is written so nothing in one
// group depends on another group's result, which is the functional
// contract the design notes ask for (§9: "functionally identical to four
// independent calls").
const batchWidth = 4

// AskBatch processes patterns in groups of four. Within a group the four
// (predicate, subject) bit tests and four head-cell compares are
// independent of each other. An unset predicate bit answers false, and a
// single-valued cell is answered by its head compare; only a cell with
// overflow objects falls back to the full per-pattern object-list walk
// via Ask, preserving ASK-consistency for multi-valued properties (the
// design notes' explicit warning against eliding the fallback).
//
// Complexity: O(len(patterns)) amortized, each pattern O(1).
func (s *Store) AskBatch(patterns []Pattern) []bool {
	results := make([]bool, len(patterns))

	i := 0
	for ; i+batchWidth <= len(patterns); i += batchWidth {
		var predBit [batchWidth]bool
		var headHit [batchWidth]bool
		var headKnown [batchWidth]bool

		// Stage 1: four independent predicate-bit tests.
		for j := 0; j < batchWidth; j++ {
			p := patterns[i+j]
			predBit[j] = int(p.Predicate) < s.predSubj.Rows() &&
				int(p.Subject) < s.predSubj.Cols() &&
				s.predSubj.Test(int(p.Predicate), int(p.Subject))
		}

		// Stage 2: four independent object-list head-cell loads+compares,
		// skipped for groups whose predicate bit already missed.
		for j := 0; j < batchWidth; j++ {
			if !predBit[j] {
				continue
			}
			p := patterns[i+j]
			cell, ok := s.objLists[packKey(p.Predicate, p.Subject)]
			if !ok {
				headKnown[j] = true
				headHit[j] = false
				continue
			}
			if cell.hasHead {
				headKnown[j] = len(cell.overflow) == 0
				headHit[j] = cell.head == p.Object
			}
		}

		// Stage 3: resolve each of the four, falling back to the full walk
		// only for the rare multi-valued case.
		for j := 0; j < batchWidth; j++ {
			if !predBit[j] {
				results[i+j] = false
				continue
			}
			if headKnown[j] {
				results[i+j] = headHit[j]
				continue
			}
			p := patterns[i+j]
			results[i+j] = s.Ask(p.Subject, p.Predicate, p.Object)
		}
	}

	// Remainder: fewer than batchWidth patterns left.
	for ; i < len(patterns); i++ {
		p := patterns[i]
		results[i] = s.Ask(p.Subject, p.Predicate, p.Object)
	}

	return results
}

// AskBatchCancellable behaves like AskBatch but checks ctx between
// 4-wide groups, not inside one — long pattern arrays are only
// cancellable at coarse granularity per §5.
func (s *Store) AskBatchCancellable(ctx cancelContext, patterns []Pattern) []bool {
	results := make([]bool, len(patterns))
	for i := 0; i < len(patterns); i += batchWidth {
		if ctx.Err() != nil {
			return results
		}
		end := i + batchWidth
		if end > len(patterns) {
			end = len(patterns)
		}
		copy(results[i:end], s.AskBatch(patterns[i:end]))
	}

	return results
}

// cancelContext is the minimal subset of context.Context this package
// needs, kept local so triplestore does not import "context" just to
// name a parameter type used by one cancellable convenience wrapper.
type cancelContext interface {
	Err() error
}
