// Package relationship weighs long-term relationship value against the
// current deal's transaction value.
package relationship

import (
	"fmt"

	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

// Decision is the optimizer's output for one offer.
type Decision struct {
	// PrioritizeRelationship is true when the relationship outweighs the
	// transaction.
	PrioritizeRelationship bool `json:"prioritize_relationship"`

	// RelationshipValue in [0,1] estimates long-term value with the
	// counterparty.
	RelationshipValue float64 `json:"relationship_value"`

	// TransactionValue in [0,1] estimates the current deal's value.
	TransactionValue float64 `json:"transaction_value"`

	// EnrichedOffer carries the sweetened offer when the relationship wins
	// and an unused offering was available, nil otherwise.
	EnrichedOffer *terms.Terms `json:"enriched_offer,omitempty"`

	// Reasoning explains the comparison.
	Reasoning string `json:"reasoning"`
}

const (
	// baseRelationship is the relationship value with no shared history.
	baseRelationship = 0.4

	// perAgreement is the uplift each previously closed agreement adds.
	perAgreement = 0.15

	// historyCap bounds the total history uplift.
	historyCap = 0.3

	// relationshipFactor is the margin the relationship must clear over the
	// transaction to take priority.
	relationshipFactor = 1.5

	// getWeight and giveWeight convert item counts into transaction value.
	getWeight  = 0.15
	giveWeight = 0.10

	// transactionBase centers the transaction value before clamping.
	transactionBase = 0.5

	// enrichCapacity is the minimum capacity an offering needs to be worth
	// adding as a sweetener.
	enrichCapacity = 0.3
)

// Optimize compares the estimated relationship value against the offer's
// transaction value. When the relationship takes priority, the offer is
// enriched with one additional unused offering on both sides of the table,
// if the acting party has one. Pure: the input offer is never mutated.
func Optimize(profile, counterparty *party.Profile, offer terms.Terms, priorAgreements int) Decision {
	history := float64(priorAgreements) * perAgreement
	if history > historyCap {
		history = historyCap
	}
	relationship := baseRelationship + history
	if relationship > 1 {
		relationship = 1
	}

	transaction := float64(len(offer.AGets))*getWeight - float64(len(offer.AGives))*giveWeight + transactionBase
	if transaction < 0 {
		transaction = 0
	}
	if transaction > 1 {
		transaction = 1
	}

	d := Decision{
		PrioritizeRelationship: relationship > relationshipFactor*transaction,
		RelationshipValue:      relationship,
		TransactionValue:       transaction,
	}

	if !d.PrioritizeRelationship {
		d.Reasoning = fmt.Sprintf(
			"transaction value %.2f stands against relationship value %.2f; optimize the deal on its own terms",
			transaction, relationship)
		return d
	}

	d.Reasoning = fmt.Sprintf(
		"relationship value %.2f outweighs transaction value %.2f; protect the long-term partnership",
		relationship, transaction)

	if sweetener, ok := pickSweetener(profile, offer); ok {
		enriched := offer.WithExtraAGive(sweetener)
		d.EnrichedOffer = &enriched
		d.Reasoning += fmt.Sprintf("; adding %q to the package", sweetener)
	}

	return d
}

// pickSweetener finds the first offering with enough capacity that is not
// already on the table.
func pickSweetener(profile *party.Profile, offer terms.Terms) (string, bool) {
	if profile == nil {
		return "", false
	}
	for _, o := range profile.Offerings {
		if o.Capacity > enrichCapacity && !offer.ContainsAGive(o.Description) {
			return o.Description, true
		}
	}
	return "", false
}
