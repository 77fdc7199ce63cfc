package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/negotiation-go/domain/session"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/logging"
)

// recordTransition updates the context phase, counts bargaining moves, and
// logs the transition. In statekit, actions receive a pointer to the context.
// Since our context is *Context, actions receive **Context.
func recordTransition(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}

	c := *ctx
	fromPhase := c.Phase

	var toPhase session.Phase
	var reason string
	if payload, ok := event.Payload.(TransitionPayload); ok {
		toPhase = payload.ToPhase
		reason = payload.Reason
	} else {
		toPhase = phaseFromEventType(event.Type)
	}

	c.Phase = toPhase
	if toPhase == session.PhaseBargaining {
		c.Moves++
	}

	logging.Debug().
		Add(logging.SessionID(c.SessionID)).
		Add(logging.Str("from_phase", string(fromPhase))).
		Add(logging.Str("to_phase", string(toPhase))).
		Add(logging.Reason(reason)).
		Msg("session phase transition")
}
