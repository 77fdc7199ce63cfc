package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/negotiation-go/domain/session"
)

// guardCanTransition checks the transition against the domain phase table.
// Note: In statekit, guards receive the context by value. Since our context
// is *Context, the guard receives *Context directly.
func guardCanTransition(ctx *Context, event statekit.Event) bool {
	if ctx == nil {
		return false
	}

	var toPhase session.Phase
	if payload, ok := event.Payload.(TransitionPayload); ok {
		toPhase = payload.ToPhase
	} else {
		toPhase = phaseFromEventType(event.Type)
	}

	return ctx.Phase.CanTransitionTo(toPhase)
}

// phaseFromEventType derives the target phase from an event type.
func phaseFromEventType(eventType statekit.EventType) session.Phase {
	switch eventType {
	case "BARGAIN":
		return session.PhaseBargaining
	case "AGREE":
		return session.PhaseAgreed
	case "COLLAPSE":
		return session.PhaseCollapsed
	default:
		return session.Phase(eventType)
	}
}
