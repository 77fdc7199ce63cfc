package application

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/negotiation-go/domain/move"
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/session"
)

func TestRunSession_RejectsBadInput(t *testing.T) {
	e, _ := NewEngine(EngineConfig{})

	tests := []struct {
		name   string
		config SessionConfig
	}{
		{name: "missing parties", config: SessionConfig{}},
		{name: "missing party B", config: SessionConfig{A: testProfile("a", party.StyleBalanced, 1)}},
		{
			name: "invalid party A",
			config: SessionConfig{
				A: &party.Profile{},
				B: testProfile("b", party.StyleBalanced, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunSession(context.Background(), e, tt.config); err == nil {
				t.Error("RunSession() should fail")
			}
		})
	}

	if _, err := RunSession(context.Background(), nil, SessionConfig{}); err == nil {
		t.Error("RunSession() without an engine should fail")
	}
}

func TestRunSession_FirstRoundAcceptance(t *testing.T) {
	// A firm responder that scores every proposal above its threshold
	// accepts immediately.
	e, _ := NewEngineWithOptions(WithScorer(move.FixedScorer{Value: 0.9}))

	outcome, err := RunSession(context.Background(), e, SessionConfig{
		A:       testProfile("supplier", party.StyleCollaborative, 2),
		B:       testProfile("buyer", party.StyleCompetitive, 2),
		Opening: testTerms(),
	})
	if err != nil {
		t.Fatalf("RunSession() error = %v", err)
	}

	if outcome.Phase != session.PhaseAgreed {
		t.Errorf("Phase = %s, want %s", outcome.Phase, session.PhaseAgreed)
	}
	if outcome.Rounds != 1 {
		t.Errorf("Rounds = %d, want 1", outcome.Rounds)
	}

	last, ok := outcome.Transcript.Last()
	if !ok || last.Party != "buyer" || last.Decision.Action != move.ActionAccept {
		t.Errorf("transcript tail = %+v, want buyer accepting in round 1", last)
	}
	if outcome.SessionID == "" {
		t.Error("SessionID must be set")
	}
}

func TestRunSession_ForcedCollapseAtRoundCap(t *testing.T) {
	// Two firm parties that never score a deal as acceptable hold firm
	// forever. With thresholds above the zone's reachable upper bound there
	// is no agreement zone, so the cap forces a collapse.
	e, _ := NewEngineWithOptions(WithScorer(move.FixedScorer{Value: 0.1}))

	a := testProfile("supplier", party.StyleCompetitive, 0)
	b := testProfile("buyer", party.StyleCompetitive, 0)
	a.Config.MinAcceptable = 0.95
	b.Config.MinAcceptable = 0.95

	outcome, err := RunSession(context.Background(), e, SessionConfig{
		A:         a,
		B:         b,
		Opening:   testTerms(),
		MaxRounds: 4,
	})
	if err != nil {
		t.Fatalf("RunSession() error = %v", err)
	}

	if outcome.Phase != session.PhaseCollapsed {
		t.Errorf("Phase = %s, want %s", outcome.Phase, session.PhaseCollapsed)
	}
	if outcome.Rounds != 4 {
		t.Errorf("Rounds = %d, want the full cap of 4", outcome.Rounds)
	}

	// Parties alternate, with the responder moving first.
	records := outcome.Transcript.Records()
	wantParties := []string{"buyer", "supplier", "buyer", "supplier"}
	for i, record := range records {
		if record.Party != wantParties[i] {
			t.Errorf("round %d played by %s, want %s", record.Round, record.Party, wantParties[i])
		}
		if record.Round != i+1 {
			t.Errorf("record %d has round %d, want strictly increasing rounds", i, record.Round)
		}
	}
}

func TestRunSession_ForcedAgreementAtRoundCap(t *testing.T) {
	// Same deadlock, but with offerings that keep an agreement zone open:
	// the cap settles on the standing table instead of collapsing.
	e, _ := NewEngineWithOptions(WithScorer(move.FixedScorer{Value: 0.1}))

	outcome, err := RunSession(context.Background(), e, SessionConfig{
		A:         testProfile("supplier", party.StyleCompetitive, 2),
		B:         testProfile("buyer", party.StyleCompetitive, 2),
		Opening:   testTerms(),
		MaxRounds: 3,
	})
	if err != nil {
		t.Fatalf("RunSession() error = %v", err)
	}

	if outcome.Phase != session.PhaseAgreed {
		t.Errorf("Phase = %s, want %s", outcome.Phase, session.PhaseAgreed)
	}
}

func TestRunSession_ConcessionsMoveTheTable(t *testing.T) {
	// Compromising parties follow the gradual cadence: concede on even
	// rounds, hold on odd rounds. With the default always-landing draw the
	// round-2 concession drops one item from the supplier's gets.
	e, _ := NewEngine(EngineConfig{})

	opening := testTerms()
	outcome, err := RunSession(context.Background(), e, SessionConfig{
		A:         testProfile("supplier", party.StyleCompromising, 0),
		B:         testProfile("buyer", party.StyleCompromising, 0),
		Opening:   opening,
		MaxRounds: 2,
	})
	if err != nil {
		t.Fatalf("RunSession() error = %v", err)
	}

	if got, want := len(outcome.Final.AGets), len(opening.AGets)-1; got != want {
		t.Errorf("final AGets has %d items, want %d after one concession", got, want)
	}
	if len(outcome.Final.BGives) != len(outcome.Final.AGets) {
		t.Error("mirrored lists must stay aligned")
	}

	records := outcome.Transcript.Records()
	if records[0].Decision.Action != move.ActionHoldFirm {
		t.Errorf("round 1 action = %s, want hold_firm on an odd round", records[0].Decision.Action)
	}
	if records[1].Decision.Action != move.ActionConcede {
		t.Errorf("round 2 action = %s, want concede on an even round", records[1].Decision.Action)
	}
}

func TestRunSession_ContextCancellation(t *testing.T) {
	e, _ := NewEngine(EngineConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunSession(ctx, e, SessionConfig{
		A:       testProfile("supplier", party.StyleBalanced, 1),
		B:       testProfile("buyer", party.StyleBalanced, 1),
		Opening: testTerms(),
	})
	if err == nil {
		t.Error("RunSession() with a cancelled context should fail")
	}
}
