// Package application provides the application layer for the negotiation
// engine.
package application

import (
	"context"

	"github.com/felixgeelhaar/negotiation-go/domain/batna"
	"github.com/felixgeelhaar/negotiation-go/domain/concession"
	"github.com/felixgeelhaar/negotiation-go/domain/move"
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/relationship"
	"github.com/felixgeelhaar/negotiation-go/domain/telemetry"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
	"github.com/felixgeelhaar/negotiation-go/domain/zopa"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/logging"
)

// DefaultMaxRounds caps a session when no limit is configured.
const DefaultMaxRounds = 12

// Engine is the main orchestration service for negotiation decisions. Its
// operations are pure pass-throughs to the domain with tracing and logging
// around them; all state lives in the caller's hands.
type Engine struct {
	selector  *move.Selector
	scorer    move.Scorer
	rand      move.Rand
	tracer    telemetry.Tracer
	maxRounds int
}

// EngineConfig contains configuration for the engine.
type EngineConfig struct {
	Scorer    move.Scorer
	Rand      move.Rand
	Tracer    telemetry.Tracer
	MaxRounds int
}

// NewEngine creates a new engine with the given configuration.
func NewEngine(config EngineConfig) (*Engine, error) {
	e := &Engine{
		scorer:    config.Scorer,
		rand:      config.Rand,
		tracer:    config.Tracer,
		maxRounds: config.MaxRounds,
	}

	// Set defaults
	if e.scorer == nil {
		e.scorer = move.DefaultScorer()
	}
	if e.rand == nil {
		e.rand = move.DefaultRand()
	}
	if e.tracer == nil {
		e.tracer = telemetry.NoopTracer{}
	}
	if e.maxRounds == 0 {
		e.maxRounds = DefaultMaxRounds
	}

	e.selector = move.NewSelector(move.WithScorer(e.scorer), move.WithRand(e.rand))

	return e, nil
}

// EstimateBATNA estimates the best alternative to a negotiated agreement for
// the profile against the counterparty.
func (e *Engine) EstimateBATNA(ctx context.Context, profile, counterparty *party.Profile) batna.BATNA {
	_, span := e.tracer.StartSpan(ctx, "engine.estimate_batna")
	defer span.End()

	estimate := batna.Estimate(profile, counterparty)
	span.SetAttributes(
		telemetry.Float64("batna.value", estimate.Value),
		telemetry.Float64("batna.availability", estimate.Availability),
	)

	logging.Debug().
		Add(logging.Operation("estimate_batna")).
		Add(logging.Party(profileName(profile))).
		Add(logging.Score(estimate.Value)).
		Msg("batna estimated")

	return estimate
}

// ComputeZOPA computes the zone of possible agreement between the two
// profiles for the given proposal.
func (e *Engine) ComputeZOPA(ctx context.Context, a, b *party.Profile, proposal terms.Terms) zopa.ZOPA {
	_, span := e.tracer.StartSpan(ctx, "engine.compute_zopa")
	defer span.End()

	zone := zopa.Compute(a, b, proposal)
	span.SetAttributes(
		telemetry.Bool("zopa.exists", zone.Exists),
		telemetry.Float64("zopa.lower", zone.LowerBound),
		telemetry.Float64("zopa.upper", zone.UpperBound),
	)

	logging.Debug().
		Add(logging.Operation("compute_zopa")).
		Add(logging.ZopaExists(zone.Exists)).
		Msg("agreement zone computed")

	return zone
}

// BuildConcessionPlan derives the profile's concession plan for the opening
// proposal.
func (e *Engine) BuildConcessionPlan(ctx context.Context, profile, counterparty *party.Profile, initial terms.Terms) concession.Plan {
	_, span := e.tracer.StartSpan(ctx, "engine.build_concession_plan")
	defer span.End()

	plan := concession.Build(profile, counterparty, initial)
	span.SetAttributes(
		telemetry.String("plan.strategy", string(plan.Strategy)),
		telemetry.Float64("plan.rate", plan.Rate),
		telemetry.Int("plan.fallbacks", len(plan.Fallbacks)),
	)

	logging.Debug().
		Add(logging.Operation("build_concession_plan")).
		Add(logging.Party(profileName(profile))).
		Add(logging.Strategy(plan.Strategy)).
		Msg("concession plan built")

	return plan
}

// SelectMove chooses the acting party's move for the round.
func (e *Engine) SelectMove(ctx context.Context, moveCtx move.Context) move.Decision {
	_, span := e.tracer.StartSpan(ctx, "engine.select_move",
		telemetry.WithAttributes(telemetry.Int("round", moveCtx.Round)))
	defer span.End()

	decision := e.selector.Select(moveCtx)
	span.SetAttributes(telemetry.String("move.action", string(decision.Action)))

	logging.Debug().
		Add(logging.Operation("select_move")).
		Add(logging.Party(profileName(moveCtx.Profile))).
		Add(logging.Round(moveCtx.Round)).
		Add(logging.MoveAction(decision.Action)).
		Add(logging.Reason(decision.Reasoning)).
		Msg("move selected")

	return decision
}

// OptimizeForRelationship weighs the relationship against the offer's
// transaction value.
func (e *Engine) OptimizeForRelationship(ctx context.Context, profile, counterparty *party.Profile, offer terms.Terms, priorAgreements int) relationship.Decision {
	_, span := e.tracer.StartSpan(ctx, "engine.optimize_relationship",
		telemetry.WithAttributes(telemetry.Int("prior_agreements", priorAgreements)))
	defer span.End()

	decision := relationship.Optimize(profile, counterparty, offer, priorAgreements)
	span.SetAttributes(
		telemetry.Bool("relationship.prioritized", decision.PrioritizeRelationship),
		telemetry.Float64("relationship.value", decision.RelationshipValue),
		telemetry.Float64("transaction.value", decision.TransactionValue),
	)

	logging.Debug().
		Add(logging.Operation("optimize_relationship")).
		Add(logging.Party(profileName(profile))).
		Add(logging.Score(decision.RelationshipValue)).
		Msg("relationship weighed")

	return decision
}

// MaxRounds returns the configured session round cap.
func (e *Engine) MaxRounds() int {
	return e.maxRounds
}

func profileName(p *party.Profile) string {
	if p == nil {
		return ""
	}
	return p.Name
}
