package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/negotiation-go/domain/concession"
	"github.com/felixgeelhaar/negotiation-go/domain/move"
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/session"
	"github.com/felixgeelhaar/negotiation-go/domain/telemetry"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
	"github.com/felixgeelhaar/negotiation-go/domain/zopa"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/logging"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/statemachine"
)

// SessionConfig describes one negotiation session between two parties.
// Opening is stated from party A's side; the orchestrator handles all
// perspective flips internally.
type SessionConfig struct {
	A               *party.Profile
	B               *party.Profile
	Opening         terms.Terms
	MaxRounds       int
	PriorAgreements int
}

// Outcome is the result of a completed session.
type Outcome struct {
	// SessionID is the unique session identity.
	SessionID string `json:"session_id"`

	// Phase is the terminal phase: agreed or collapsed.
	Phase session.Phase `json:"phase"`

	// Rounds counts the rounds played.
	Rounds int `json:"rounds"`

	// Final is the last proposal on the table, from party A's side.
	Final terms.Terms `json:"final"`

	// Transcript records every round's decision in order.
	Transcript *session.Transcript `json:"-"`
}

// RunSession plays a full negotiation between the configured parties. Party A
// opens; party B responds in round one and turns alternate from there. Each
// party moves under its own concession plan, phases are tracked on the
// session statechart, and every round lands in the transcript. When the round
// cap is hit without a terminal move, the session is forced closed: agreed
// when a zone of possible agreement exists over the final table, collapsed
// otherwise.
func RunSession(ctx context.Context, engine *Engine, config SessionConfig) (*Outcome, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if config.A == nil || config.B == nil {
		return nil, errors.New("both parties are required")
	}
	if errs := config.A.Validate(); errs.HasErrors() {
		return nil, fmt.Errorf("party A invalid: %w", errs)
	}
	if errs := config.B.Validate(); errs.HasErrors() {
		return nil, fmt.Errorf("party B invalid: %w", errs)
	}

	maxRounds := config.MaxRounds
	if maxRounds <= 0 {
		maxRounds = engine.maxRounds
	}

	sessionID := uuid.NewString()

	ctx, span := engine.tracer.StartSpan(ctx, "session.run",
		telemetry.WithAttributes(
			telemetry.String("session.id", sessionID),
			telemetry.Int("session.max_rounds", maxRounds),
		))
	defer span.End()

	machine, err := statemachine.NewSessionMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	interp := statemachine.NewInterpreter(machine, statemachine.NewContext(sessionID))
	interp.Start()
	defer interp.Stop()

	planA := engine.BuildConcessionPlan(ctx, config.A, config.B, config.Opening)
	planB := engine.BuildConcessionPlan(ctx, config.B, config.A, config.Opening.Swapped())

	logging.Info().
		Add(logging.SessionID(sessionID)).
		Add(logging.Party(config.A.Name)).
		Add(logging.Str("counterparty", config.B.Name)).
		Add(logging.Strategy(planA.Strategy)).
		Msg("session started")

	if err := interp.Transition(session.PhaseBargaining, "opening proposal on the table"); err != nil {
		return nil, err
	}

	transcript := &session.Transcript{}
	started := time.Now()

	// current and previous are the last two table states, both from party
	// A's side. The gap between them is what the acting party reads as its
	// opponent's movement.
	current := config.Opening.Clone()
	previous := current.Clone()

	for round := 1; round <= maxRounds; round++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Party A opened, so party B acts first.
		actorIsA := round%2 == 0
		actor, plan := config.B, planB
		if actorIsA {
			actor, plan = config.A, planA
		}

		decision := selectForActor(ctx, engine, config, actorIsA, plan, current, previous, round)

		transcript.Append(session.RoundRecord{
			Round:    round,
			Party:    actor.Name,
			Decision: decision,
			Table:    current.Clone(),
			At:       time.Now(),
		})
		span.AddEvent("round",
			telemetry.Int("round", round),
			telemetry.String("party", actor.Name),
			telemetry.String("action", string(decision.Action)),
		)

		logging.Info().
			Add(logging.SessionID(sessionID)).
			Add(logging.Round(round)).
			Add(logging.Party(actor.Name)).
			Add(logging.MoveAction(decision.Action)).
			Msg("round played")

		switch decision.Action {
		case move.ActionAccept:
			if err := interp.Transition(session.PhaseAgreed, decision.Reasoning); err != nil {
				return nil, err
			}
		case move.ActionReject:
			if err := interp.Transition(session.PhaseCollapsed, decision.Reasoning); err != nil {
				return nil, err
			}
		default:
			if decision.CounterOffer != nil {
				next := *decision.CounterOffer
				if !actorIsA {
					next = next.Swapped()
				}
				previous = current
				current = next
			}
			if err := interp.Transition(session.PhaseBargaining, decision.Reasoning); err != nil {
				return nil, err
			}
		}

		if interp.IsTerminal() {
			break
		}
	}

	// Round cap without a terminal move: settle on the standing table.
	if !interp.IsTerminal() {
		zone := engine.ComputeZOPA(ctx, config.A, config.B, current)
		reason := "round cap reached with no agreement zone"
		if zone.Exists {
			reason = "round cap reached with an agreement zone over the final table"
		}
		if err := interp.Transition(zoneForcedPhase(zone), reason); err != nil {
			return nil, err
		}
	}

	outcome := &Outcome{
		SessionID:  sessionID,
		Phase:      interp.Phase(),
		Rounds:     transcript.Len(),
		Final:      current,
		Transcript: transcript,
	}

	span.SetAttributes(
		telemetry.String("session.phase", string(outcome.Phase)),
		telemetry.Int("session.rounds", outcome.Rounds),
	)
	logging.Info().
		Add(logging.SessionID(sessionID)).
		Add(logging.Str("phase", string(outcome.Phase))).
		Add(logging.Round(outcome.Rounds)).
		Add(logging.Duration(time.Since(started))).
		Msg("session finished")

	return outcome, nil
}

// selectForActor flips the table into the acting party's perspective, runs
// the selector, and hands back the decision still in that perspective.
func selectForActor(ctx context.Context, engine *Engine, config SessionConfig, actorIsA bool, plan concession.Plan, current, previous terms.Terms, round int) move.Decision {
	moveCtx := move.Context{
		Profile:          config.A,
		Counterparty:     config.B,
		Current:          current,
		OpponentPrevious: previous,
		Plan:             plan,
		Round:            round,
	}
	if !actorIsA {
		moveCtx.Profile = config.B
		moveCtx.Counterparty = config.A
		moveCtx.Current = current.Swapped()
		moveCtx.OpponentPrevious = previous.Swapped()
	}
	return engine.SelectMove(ctx, moveCtx)
}

// zoneForcedPhase maps a zone to the forced terminal phase at the round cap.
func zoneForcedPhase(zone zopa.ZOPA) session.Phase {
	if zone.Exists {
		return session.PhaseAgreed
	}
	return session.PhaseCollapsed
}
