// Package batna estimates a party's best alternative to a negotiated agreement.
package batna

import (
	"fmt"

	"github.com/felixgeelhaar/negotiation-go/domain/party"
)

// BATNA is the computed value of a party's best walk-away option. Recomputed
// on demand and never mutated in place.
type BATNA struct {
	// Description names the alternative.
	Description string `json:"description"`

	// Value in [0,1] scores how good the alternative is.
	Value float64 `json:"value"`

	// Availability in [0,1] scores how likely the alternative is to be there.
	Availability float64 `json:"availability"`
}

const (
	// baseAvailability is the moderate estimate for a sparse profile.
	baseAvailability = 0.4

	// availabilityStep is the uplift each offering contributes.
	availabilityStep = 0.1

	// availabilityCeiling caps availability below 1.0; untested alternatives
	// carry irreducible uncertainty.
	availabilityCeiling = 0.85
)

// Estimate computes the party's BATNA from its profile. More offerings mean
// more fallback options and higher availability. The counterparty profile is
// accepted for richer models; the simplified estimate does not read it.
// Estimate never fails: a sparse profile yields the moderate default.
func Estimate(profile, counterparty *party.Profile) BATNA {
	availability := baseAvailability
	count := 0
	if profile != nil {
		count = len(profile.Offerings)
	}
	availability += availabilityStep * float64(count)
	if availability > availabilityCeiling {
		availability = availabilityCeiling
	}

	description := "seek an alternative partner for the same terms"
	if count > 0 {
		description = fmt.Sprintf("redirect %d offering(s) to alternative partners", count)
	}

	return BATNA{
		Description:  description,
		Value:        availability,
		Availability: availability,
	}
}
