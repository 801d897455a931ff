package compliance

const (
	bytesPerWord       = 8
	bytesPerDenseEntry = 4
	bitsPerWord        = 64
	numPropertyVectors = 4 // transitive, symmetric, functional, inverse-functional
)

// ceilWords64 returns ⌈n/64⌉, the word-stride of an n-bit row.
func ceilWords64(n uint32) uint32 {
	if n == 0 {
		return 0
	}

	return (n + bitsPerWord - 1) / bitsPerWord
}

// Input is the declared schema shape a certificate is computed from.
// Every field mirrors an engine's construction-time capacity.
type Input struct {
	NumClasses         uint32
	NumProperties      uint32
	NumShapes          uint32
	ExpectedSubjects   uint32
	ExpectedPredicates uint32
	ExpectedObjects    uint32
	UseObjectIndex     bool
}

// Footprint breaks the total estimated memory down by engine area, in
// bytes. Every field is independently reproducible from Input so a
// caller can audit where the budget goes.
type Footprint struct {
	SubclassClosureBytes  uint64
	PropertyVectorsBytes  uint64
	ShapeMasksBytes       uint64
	PredicateSubjectBytes uint64
	ObjectSubjectBytes    uint64
	DenseIndexBytes       uint64 // zero unless Input.UseObjectIndex
	TotalBytes            uint64
}

// TotalKiB returns the footprint's total rounded up to whole KiB, the
// unit the tier thresholds are declared in.
func (f Footprint) TotalKiB() uint64 {
	return (f.TotalBytes + 1023) / 1024
}

// ComputeFootprint derives the per-area byte counts from Input following
// §4.5's formulas exactly:
//
//   - subclass closure  = classes · ⌈classes/64⌉ · 8
//   - property vectors  = 4 · ⌈properties/64⌉ · 8
//   - shape masks       = shapes · (⌈classes/64⌉ + ⌈properties/64⌉) · 8
//     (one target-class mask and one required-property mask per shape)
//   - predicate-subject = predicates · ⌈subjects/64⌉ · 8
//   - object-subject    = objects · ⌈subjects/64⌉ · 8
//   - dense index       = predicates · subjects · 4   (only if UseObjectIndex)
func ComputeFootprint(in Input) (Footprint, error) {
	if in.NumClasses == 0 || in.NumProperties == 0 || in.ExpectedSubjects == 0 {
		return Footprint{}, complianceErrorf("ComputeFootprint", ErrInvalidDimensions)
	}

	classWords := ceilWords64(in.NumClasses)
	propWords := ceilWords64(in.NumProperties)
	subjWords := ceilWords64(in.ExpectedSubjects)

	f := Footprint{
		SubclassClosureBytes:  uint64(in.NumClasses) * uint64(classWords) * bytesPerWord,
		PropertyVectorsBytes:  uint64(numPropertyVectors) * uint64(propWords) * bytesPerWord,
		ShapeMasksBytes:       uint64(in.NumShapes) * uint64(classWords+propWords) * bytesPerWord,
		PredicateSubjectBytes: uint64(in.ExpectedPredicates) * uint64(subjWords) * bytesPerWord,
		ObjectSubjectBytes:    uint64(in.ExpectedObjects) * uint64(subjWords) * bytesPerWord,
	}
	if in.UseObjectIndex {
		f.DenseIndexBytes = uint64(in.ExpectedPredicates) * uint64(in.ExpectedSubjects) * bytesPerDenseEntry
	}

	f.TotalBytes = f.SubclassClosureBytes + f.PropertyVectorsBytes + f.ShapeMasksBytes +
		f.PredicateSubjectBytes + f.ObjectSubjectBytes + f.DenseIndexBytes

	return f, nil
}
