package compliance

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time.Now so Certify stays a pure, testable function;
// defaults to time.Now.
type Clock func() time.Time

// Certificate is the result of certifying an Input against the tier
// thresholds: the computed footprint, the matching tier, its guarantee,
// and an identity/timestamp pair for audit trails.
type Certificate struct {
	CertificateID uuid.UUID
	IssuedAt      time.Time
	Input         Input
	Footprint     Footprint
	Tier          Tier
	Guarantee     Guarantee
}

// Certifier computes certificates with an injectable clock and ID
// generator, so tests can assert on deterministic output.
type Certifier struct {
	Clock Clock
	NewID func() uuid.UUID
}

// NewCertifier returns a Certifier using time.Now and uuid.New.
func NewCertifier() *Certifier {
	return &Certifier{Clock: time.Now, NewID: uuid.New}
}

// Certify computes the footprint for in, classifies its tier, and
// attaches the tier's guarantee. It never touches an engine — purely
// arithmetic composition of ComputeFootprint and classifyTier, per the
// "facades only compose, never duplicate logic" discipline.
func (c *Certifier) Certify(in Input) (Certificate, error) {
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.NewID == nil {
		c.NewID = uuid.New
	}

	f, err := ComputeFootprint(in)
	if err != nil {
		return Certificate{}, complianceErrorf("Certify", err)
	}

	tier := classifyTier(f.TotalKiB())

	return Certificate{
		CertificateID: c.NewID(),
		IssuedAt:      c.Clock(),
		Input:         in,
		Footprint:     f,
		Tier:          tier,
		Guarantee:     tierGuarantees[tier], // zero value for TierNonCompliant
	}, nil
}

// Certify is a package-level convenience wrapping NewCertifier().Certify
// for callers that do not need to inject a clock or ID generator.
func Certify(in Input) (Certificate, error) {
	return NewCertifier().Certify(in)
}
