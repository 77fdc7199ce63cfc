// Package move selects a party's tactical move for one negotiation round.
package move

// Action identifies the kind of move the selector emits for a round.
type Action string

const (
	// ActionAccept takes the proposal on the table.
	ActionAccept Action = "accept"

	// ActionReject declines the proposal outright.
	ActionReject Action = "reject"

	// ActionCounter answers with a modified proposal.
	ActionCounter Action = "counter"

	// ActionHoldFirm restates the current position without movement.
	ActionHoldFirm Action = "hold_firm"

	// ActionConcede gives ground with a more generous proposal.
	ActionConcede Action = "concede"

	// ActionDemandReciprocity asks the opponent to match a prior concession.
	ActionDemandReciprocity Action = "demand_reciprocity"
)

// IsValid returns true if the action is a known value.
func (a Action) IsValid() bool {
	switch a {
	case ActionAccept, ActionReject, ActionCounter, ActionHoldFirm, ActionConcede, ActionDemandReciprocity:
		return true
	}
	return false
}

// IsTerminal returns true if the action ends the negotiation.
func (a Action) IsTerminal() bool {
	return a == ActionAccept || a == ActionReject
}
