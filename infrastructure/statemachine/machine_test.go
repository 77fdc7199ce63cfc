package statemachine

import (
	"testing"

	"github.com/felixgeelhaar/negotiation-go/domain/session"
)

func newTestInterpreter(t *testing.T) *Interpreter {
	t.Helper()

	machine, err := NewSessionMachine()
	if err != nil {
		t.Fatalf("NewSessionMachine() error = %v", err)
	}

	interp := NewInterpreter(machine, NewContext("test-session"))
	interp.Start()
	return interp
}

func TestInterpreter_StartsOpen(t *testing.T) {
	interp := newTestInterpreter(t)
	defer interp.Stop()

	if got := interp.Phase(); got != session.PhaseOpen {
		t.Errorf("Phase() = %s, want %s", got, session.PhaseOpen)
	}
	if interp.IsTerminal() {
		t.Error("fresh session must not be terminal")
	}
}

func TestInterpreter_BargainToAgreed(t *testing.T) {
	interp := newTestInterpreter(t)
	defer interp.Stop()

	if err := interp.Transition(session.PhaseBargaining, "first offer on the table"); err != nil {
		t.Fatalf("Transition(bargaining) error = %v", err)
	}
	if got := interp.Phase(); got != session.PhaseBargaining {
		t.Fatalf("Phase() = %s, want %s", got, session.PhaseBargaining)
	}

	// Bargaining loops on itself once per move.
	if err := interp.Transition(session.PhaseBargaining, "counter-offer"); err != nil {
		t.Fatalf("Transition(bargaining self-loop) error = %v", err)
	}
	if got := interp.Moves(); got != 2 {
		t.Errorf("Moves() = %d, want 2", got)
	}

	if err := interp.Transition(session.PhaseAgreed, "offer accepted"); err != nil {
		t.Fatalf("Transition(agreed) error = %v", err)
	}
	if got := interp.Phase(); got != session.PhaseAgreed {
		t.Errorf("Phase() = %s, want %s", got, session.PhaseAgreed)
	}
	if !interp.IsTerminal() {
		t.Error("agreed session must be terminal")
	}
}

func TestInterpreter_Collapse(t *testing.T) {
	tests := []struct {
		name   string
		before []session.Phase
	}{
		{name: "collapse from open", before: nil},
		{name: "collapse while bargaining", before: []session.Phase{session.PhaseBargaining}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := newTestInterpreter(t)
			defer interp.Stop()

			for _, phase := range tt.before {
				if err := interp.Transition(phase, "setup"); err != nil {
					t.Fatalf("setup transition to %s: %v", phase, err)
				}
			}

			if err := interp.Transition(session.PhaseCollapsed, "talks broke down"); err != nil {
				t.Fatalf("Transition(collapsed) error = %v", err)
			}
			if got := interp.Phase(); got != session.PhaseCollapsed {
				t.Errorf("Phase() = %s, want %s", got, session.PhaseCollapsed)
			}
			if !interp.IsTerminal() {
				t.Error("collapsed session must be terminal")
			}
		})
	}
}

func TestInterpreter_RejectsInvalidTransitions(t *testing.T) {
	interp := newTestInterpreter(t)
	defer interp.Stop()

	// Cannot agree before any bargaining happened.
	if err := interp.Transition(session.PhaseAgreed, "too eager"); err == nil {
		t.Fatal("Transition(open -> agreed) should fail")
	}
	if got := interp.Phase(); got != session.PhaseOpen {
		t.Errorf("failed transition must not change phase, got %s", got)
	}

	if err := interp.Transition(session.PhaseBargaining, "start"); err != nil {
		t.Fatalf("Transition(bargaining) error = %v", err)
	}
	if err := interp.Transition(session.PhaseAgreed, "done"); err != nil {
		t.Fatalf("Transition(agreed) error = %v", err)
	}

	// Terminal phases admit nothing.
	if err := interp.Transition(session.PhaseBargaining, "reopen"); err == nil {
		t.Error("Transition(agreed -> bargaining) should fail")
	}
}

func TestInterpreter_CanTransition(t *testing.T) {
	interp := newTestInterpreter(t)
	defer interp.Stop()

	if !interp.CanTransition(session.PhaseBargaining) {
		t.Error("open -> bargaining should be allowed")
	}
	if interp.CanTransition(session.PhaseAgreed) {
		t.Error("open -> agreed should not be allowed")
	}
}

func TestEventForTransition(t *testing.T) {
	tests := []struct {
		phase session.Phase
		want  string
	}{
		{session.PhaseBargaining, "BARGAIN"},
		{session.PhaseAgreed, "AGREE"},
		{session.PhaseCollapsed, "COLLAPSE"},
	}

	for _, tt := range tests {
		if got := EventForTransition(tt.phase); string(got) != tt.want {
			t.Errorf("EventForTransition(%s) = %s, want %s", tt.phase, got, tt.want)
		}
	}
}
