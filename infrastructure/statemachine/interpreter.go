package statemachine

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/negotiation-go/domain/session"
)

// TransitionPayload carries additional data with a transition event.
type TransitionPayload struct {
	ToPhase session.Phase
	Reason  string
}

// Interpreter wraps the statekit interpreter with session-specific
// functionality.
type Interpreter struct {
	interp *statekit.Interpreter[*Context]
	ctx    *Context
}

// NewInterpreter creates a new interpreter for the session state machine.
func NewInterpreter(machine *statekit.MachineConfig[*Context], ctx *Context) *Interpreter {
	interp := statekit.NewInterpreter(machine)
	// Update the context reference in the machine
	interp.UpdateContext(func(c **Context) {
		*c = ctx
	})
	return &Interpreter{
		interp: interp,
		ctx:    ctx,
	}
}

// Start initializes the interpreter and enters the open phase.
func (i *Interpreter) Start() {
	i.interp.Start()
	state := i.interp.State()
	i.ctx.Phase = session.Phase(state.Value)
}

// Stop stops the interpreter.
func (i *Interpreter) Stop() {
	i.interp.Stop()
}

// Phase returns the current phase.
func (i *Interpreter) Phase() session.Phase {
	state := i.interp.State()
	return session.Phase(state.Value)
}

// Transition attempts to transition to the target phase.
func (i *Interpreter) Transition(to session.Phase, reason string) error {
	if !i.CanTransition(to) {
		return fmt.Errorf("transition from %s to %s not allowed", i.ctx.Phase, to)
	}

	event := statekit.Event{
		Type: EventForTransition(to),
		Payload: TransitionPayload{
			ToPhase: to,
			Reason:  reason,
		},
	}

	// Send the event (doesn't return error, uses panic for invalid events)
	i.interp.Send(event)

	newState := i.interp.State()
	i.ctx.Phase = session.Phase(newState.Value)

	return nil
}

// CanTransition checks if a transition to the target phase is possible.
func (i *Interpreter) CanTransition(to session.Phase) bool {
	return i.ctx.Phase.CanTransitionTo(to)
}

// IsTerminal returns true if the interpreter is in a terminal phase.
func (i *Interpreter) IsTerminal() bool {
	return i.interp.Done()
}

// Moves returns the number of moves exchanged so far.
func (i *Interpreter) Moves() int {
	return i.ctx.Moves
}

// Context returns the interpreter context.
func (i *Interpreter) Context() *Context {
	return i.ctx
}
