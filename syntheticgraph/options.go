package syntheticgraph

// Option customizes a generator by mutating a genConfig before the
// fixture is produced. Options store their value without validating it
// and never panic; generators reject too-small sizes by returning
// ErrTooFewElements.
type Option func(*genConfig)

type genConfig struct {
	seed          int64
	typePredicate uint32
	deptPredicate uint32
}

func newGenConfig() genConfig {
	return genConfig{
		seed:          1,
		typePredicate: 0,
		deptPredicate: 1,
	}
}

// WithSeed fixes the deterministic RNG seed used by RandomShapeBatch.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.seed = seed
	}
}

// WithTypePredicate overrides which predicate id is treated as rdf:type
// by DepartmentFixture. Defaults to 0.
func WithTypePredicate(p uint32) Option {
	return func(c *genConfig) {
		c.typePredicate = p
	}
}

// WithDeptPredicate overrides which predicate id carries the department
// relation in DepartmentFixture. Defaults to 1.
func WithDeptPredicate(p uint32) Option {
	return func(c *genConfig) {
		c.deptPredicate = p
	}
}
