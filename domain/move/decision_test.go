package move

import (
	"testing"

	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

func TestAction_IsValid(t *testing.T) {
	valid := []Action{
		ActionAccept, ActionReject, ActionCounter,
		ActionHoldFirm, ActionConcede, ActionDemandReciprocity,
	}
	for _, a := range valid {
		if !a.IsValid() {
			t.Errorf("Action(%q).IsValid() = false, want true", a)
		}
	}
	if Action("walk_out").IsValid() {
		t.Error("unknown action should not be valid")
	}
}

func TestAction_IsTerminal(t *testing.T) {
	tests := []struct {
		action   Action
		terminal bool
	}{
		{ActionAccept, true},
		{ActionReject, true},
		{ActionCounter, false},
		{ActionHoldFirm, false},
		{ActionConcede, false},
		{ActionDemandReciprocity, false},
	}

	for _, tt := range tests {
		if got := tt.action.IsTerminal(); got != tt.terminal {
			t.Errorf("Action(%q).IsTerminal() = %v, want %v", tt.action, got, tt.terminal)
		}
	}
}

func TestNewCounter_ClonesOffer(t *testing.T) {
	offer := terms.New(nil, []string{"discount"}, []string{"discount"}, nil)
	d := NewCounter("testing", offer)

	offer.AGets[0] = "mutated"
	if d.CounterOffer.AGets[0] != "discount" {
		t.Error("NewCounter() must clone the offer, not alias it")
	}
}

func TestNewHoldFirm_NoOffer(t *testing.T) {
	d := NewHoldFirm("waiting out the opponent")
	if d.CounterOffer != nil {
		t.Error("NewHoldFirm() must not carry a counter-offer")
	}
	if d.Reasoning == "" {
		t.Error("NewHoldFirm() should keep its reasoning")
	}
}
