// Package session provides the lifecycle types for a negotiation session.
package session

// Phase represents the lifecycle state of a negotiation session.
type Phase string

const (
	// PhaseOpen is the initial state before the first move.
	PhaseOpen Phase = "open"

	// PhaseBargaining indicates rounds are being exchanged.
	PhaseBargaining Phase = "bargaining"

	// PhaseAgreed indicates a proposal was accepted.
	PhaseAgreed Phase = "agreed"

	// PhaseCollapsed indicates the negotiation ended without agreement.
	PhaseCollapsed Phase = "collapsed"
)

// PhaseTransitions defines valid phase transitions. Bargaining loops on
// itself once per exchanged move.
var PhaseTransitions = map[Phase][]Phase{
	PhaseOpen:       {PhaseBargaining, PhaseCollapsed},
	PhaseBargaining: {PhaseBargaining, PhaseAgreed, PhaseCollapsed},
	PhaseAgreed:     {},
	PhaseCollapsed:  {},
}

// CanTransitionTo returns true if the transition from the current phase to
// the target is valid.
func (p Phase) CanTransitionTo(target Phase) bool {
	validTargets, ok := PhaseTransitions[p]
	if !ok {
		return false
	}
	for _, valid := range validTargets {
		if valid == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the phase ends the session.
func (p Phase) IsTerminal() bool {
	return p == PhaseAgreed || p == PhaseCollapsed
}
