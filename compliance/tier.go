package compliance

// Tier names a cache-residency class with a declared footprint ceiling
// and latency/throughput envelope.
type Tier int

const (
	// TierL1 fits in a typical L1 data cache.
	TierL1 Tier = iota
	// TierL2 fits in a typical L2 cache.
	TierL2
	// TierL3 fits in a typical L3 cache.
	TierL3
	// TierNonCompliant exceeds every declared tier ceiling.
	TierNonCompliant
)

// String renders the tier name for certificates and logging.
func (t Tier) String() string {
	switch t {
	case TierL1:
		return "L1-COMPLIANT"
	case TierL2:
		return "L2-COMPLIANT"
	case TierL3:
		return "L3-COMPLIANT"
	default:
		return "NON-COMPLIANT"
	}
}

// Tier thresholds in KiB, per §4.5.
const (
	tierL1CeilingKiB = 64
	tierL2CeilingKiB = 512
	tierL3CeilingKiB = 16384
)

// Guarantee attaches the latency/throughput envelope a tier promises.
type Guarantee struct {
	MaxLatencyNanos   float64
	MinThroughputMops float64
}

var tierGuarantees = map[Tier]Guarantee{
	TierL1: {MaxLatencyNanos: 10, MinThroughputMops: 100},
	TierL2: {MaxLatencyNanos: 30, MinThroughputMops: 30},
	TierL3: {MaxLatencyNanos: 100, MinThroughputMops: 10},
}

// classifyTier maps a total KiB footprint to its tier, inclusive of each
// threshold (a footprint exactly at a ceiling still fits that tier; one
// KiB above overflows to the next).
func classifyTier(totalKiB uint64) Tier {
	switch {
	case totalKiB <= tierL1CeilingKiB:
		return TierL1
	case totalKiB <= tierL2CeilingKiB:
		return TierL2
	case totalKiB <= tierL3CeilingKiB:
		return TierL3
	default:
		return TierNonCompliant
	}
}
