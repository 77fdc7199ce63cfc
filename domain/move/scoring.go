package move

import (
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

// Scorer rates a proposal's acceptability for a party. Implementations must
// return values in [0,1] and must not mutate their inputs.
type Scorer interface {
	// Score returns the proposal's acceptability against the party's
	// preferences.
	Score(profile *party.Profile, proposal terms.Terms) float64
}

// FixedScorer returns a constant score regardless of input. It is the
// illustrative stand-in used until a real scoring model is plugged in.
type FixedScorer struct {
	// Value is the score returned for every proposal.
	Value float64
}

// Score implements Scorer.
func (s FixedScorer) Score(profile *party.Profile, proposal terms.Terms) float64 {
	return s.Value
}

// DefaultScorer returns the stand-in scorer with the reference value 0.65.
func DefaultScorer() Scorer {
	return FixedScorer{Value: 0.65}
}
