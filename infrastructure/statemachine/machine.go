// Package statemachine provides the statekit integration for negotiation
// sessions.
package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/negotiation-go/domain/session"
)

// Context carries session state through the state machine.
type Context struct {
	// SessionID identifies the session being tracked.
	SessionID string

	// Phase mirrors the machine's current phase for callers.
	Phase session.Phase

	// Moves counts the moves exchanged while bargaining.
	Moves int
}

// NewContext creates a new machine context.
func NewContext(sessionID string) *Context {
	return &Context{
		SessionID: sessionID,
		Phase:     session.PhaseOpen,
	}
}

// Phase IDs as StateID type for statekit.
const (
	phaseOpen       statekit.StateID = statekit.StateID(session.PhaseOpen)
	phaseBargaining statekit.StateID = statekit.StateID(session.PhaseBargaining)
	phaseAgreed     statekit.StateID = statekit.StateID(session.PhaseAgreed)
	phaseCollapsed  statekit.StateID = statekit.StateID(session.PhaseCollapsed)
)

// NewSessionMachine creates the canonical negotiation session statechart.
// Bargaining loops on itself once per exchanged move until a terminal event.
func NewSessionMachine() (*statekit.MachineConfig[*Context], error) {
	return statekit.NewMachine[*Context]("negotiation").
		WithInitial(phaseOpen).
		WithContext(&Context{}).
		// Register actions
		WithAction("recordTransition", recordTransition).
		// Register guards
		WithGuard("canTransition", guardCanTransition).
		// Define states
		State(phaseOpen).
			On("BARGAIN").Target(phaseBargaining).Guard("canTransition").Do("recordTransition").
			On("COLLAPSE").Target(phaseCollapsed).Do("recordTransition").
			Done().
		State(phaseBargaining).
			On("BARGAIN").Target(phaseBargaining).Guard("canTransition").Do("recordTransition").
			On("AGREE").Target(phaseAgreed).Do("recordTransition").
			On("COLLAPSE").Target(phaseCollapsed).Do("recordTransition").
			Done().
		State(phaseAgreed).
			Final().
			Done().
		State(phaseCollapsed).
			Final().
			Done().
		Build()
}

// EventForTransition returns the event type for a phase transition.
func EventForTransition(to session.Phase) statekit.EventType {
	switch to {
	case session.PhaseBargaining:
		return "BARGAIN"
	case session.PhaseAgreed:
		return "AGREE"
	case session.PhaseCollapsed:
		return "COLLAPSE"
	default:
		return statekit.EventType(to)
	}
}

// PhaseFromMachine converts the machine state ID to a domain phase.
func PhaseFromMachine(stateID statekit.StateID) session.Phase {
	return session.Phase(stateID)
}
