// Package zopa computes the zone of possible agreement between two parties.
package zopa

import (
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

// ZOPA describes whether a mutually acceptable range exists and its bounds.
// It is derived from the profiles and the proposal on the table; it is never
// stored independently of the proposal that produced it.
type ZOPA struct {
	// Exists is true when the upper bound reaches the lower bound.
	Exists bool `json:"exists"`

	// LowerBound is party A's minimum acceptable value.
	LowerBound float64 `json:"lower_bound"`

	// UpperBound is party B's maximum offering value.
	UpperBound float64 `json:"upper_bound"`

	// Midpoint is the arithmetic mean of the bounds, computed regardless of
	// existence.
	Midpoint float64 `json:"midpoint"`

	// Range is max(0, UpperBound-LowerBound).
	Range float64 `json:"range"`

	// Recommendation is a human-readable reading of the zone.
	Recommendation string `json:"recommendation"`
}

const (
	// capacityUplift is added to the counterparty's mean offering capacity;
	// parties can usually stretch somewhat past their stated capacity.
	capacityUplift = 0.2

	// upperCap bounds the estimated maximum offering value.
	upperCap = 0.9

	// narrowRange is the width below which the zone is called narrow.
	narrowRange = 0.2
)

// Recommendation messages keyed by zone shape.
const (
	RecommendationNoOverlap = "no overlap between positions; strengthen alternatives or widen the package before continuing"
	RecommendationNarrow    = "narrow zone of agreement; concede carefully and in small steps"
	RecommendationMidpoint  = "good zone of agreement; aim for the midpoint"
)

// Compute determines the agreement zone between party A and party B for the
// given proposal. Pure and deterministic: no randomness, no side effects.
func Compute(a, b *party.Profile, proposal terms.Terms) ZOPA {
	lower := party.DefaultMinAcceptable
	if a != nil {
		lower = a.Config.EffectiveMinAcceptable()
	}

	mean := 0.5
	if b != nil {
		mean = b.MeanOfferingCapacity()
	}
	upper := mean + capacityUplift
	if upper > upperCap {
		upper = upperCap
	}

	z := ZOPA{
		Exists:     upper >= lower,
		LowerBound: lower,
		UpperBound: upper,
		Midpoint:   (lower + upper) / 2,
	}
	if upper > lower {
		z.Range = upper - lower
	}

	switch {
	case !z.Exists:
		z.Recommendation = RecommendationNoOverlap
	case z.Range < narrowRange:
		z.Recommendation = RecommendationNarrow
	default:
		z.Recommendation = RecommendationMidpoint
	}

	return z
}
