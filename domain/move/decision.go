package move

import (
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

// Decision is the selector's output for one round. Decisions are transient:
// produced fresh each round and never stored by the engine itself.
type Decision struct {
	// Action is the selected move.
	Action Action `json:"action"`

	// Reasoning explains why the move was selected.
	Reasoning string `json:"reasoning"`

	// CounterOffer carries the proposal accompanying a counter or concession,
	// nil for moves that keep the table unchanged.
	CounterOffer *terms.Terms `json:"counter_offer,omitempty"`
}

// NewAccept creates an accept decision.
func NewAccept(reasoning string) Decision {
	return Decision{Action: ActionAccept, Reasoning: reasoning}
}

// NewReject creates a reject decision.
func NewReject(reasoning string) Decision {
	return Decision{Action: ActionReject, Reasoning: reasoning}
}

// NewHoldFirm creates a hold-firm decision.
func NewHoldFirm(reasoning string) Decision {
	return Decision{Action: ActionHoldFirm, Reasoning: reasoning}
}

// NewCounter creates a counter decision carrying an offer.
func NewCounter(reasoning string, offer terms.Terms) Decision {
	o := offer.Clone()
	return Decision{Action: ActionCounter, Reasoning: reasoning, CounterOffer: &o}
}

// NewConcede creates a concede decision carrying an offer.
func NewConcede(reasoning string, offer terms.Terms) Decision {
	o := offer.Clone()
	return Decision{Action: ActionConcede, Reasoning: reasoning, CounterOffer: &o}
}

// NewDemandReciprocity creates a demand-reciprocity decision.
func NewDemandReciprocity(reasoning string) Decision {
	return Decision{Action: ActionDemandReciprocity, Reasoning: reasoning}
}
