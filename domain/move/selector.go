package move

import (
	"fmt"

	"github.com/felixgeelhaar/negotiation-go/domain/concession"
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
	"github.com/felixgeelhaar/negotiation-go/domain/zopa"
)

// Opponent-concession thresholds for the tit-for-tat rules.
const (
	reciprocateAbove = 0.10
	stallBelow       = 0.05
	stallAfterRound  = 3
)

// finalOfferRound is the round after which a firm strategy stops holding and
// counters with its final position.
const finalOfferRound = 8

// flexibleRateFactor scales the plan rate for the flexible strategy.
const flexibleRateFactor = 1.5

// Context carries the full round context into the selector. The selector
// keeps no state between calls: a decision can be re-derived at any point
// from recorded history.
type Context struct {
	// Profile is the acting party.
	Profile *party.Profile

	// Counterparty is the opposing party.
	Counterparty *party.Profile

	// Current is the proposal on the table, from the acting party's side.
	Current terms.Terms

	// OpponentPrevious is the opponent's prior proposal, from the acting
	// party's side.
	OpponentPrevious terms.Terms

	// Plan is the acting party's concession plan.
	Plan concession.Plan

	// Round is the 1-based round number. The caller supplies strictly
	// increasing rounds within a session.
	Round int
}

// Selector chooses one move per round. Safe for concurrent use across
// sessions as long as the injected Scorer and Rand are.
type Selector struct {
	scorer Scorer
	rand   Rand
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithScorer sets the proposal scorer.
func WithScorer(s Scorer) SelectorOption {
	return func(sel *Selector) {
		sel.scorer = s
	}
}

// WithRand sets the concession draw source.
func WithRand(r Rand) SelectorOption {
	return func(sel *Selector) {
		sel.rand = r
	}
}

// NewSelector creates a selector with the given options. Without options it
// uses the fixed reference scorer and a deterministic draw.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{
		scorer: DefaultScorer(),
		rand:   DefaultRand(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select emits the acting party's move for the round. The first matching
// rule of the plan's strategy wins; strategies without a matching rule fall
// through to a counter at the plan's rate. Select never fails under
// well-formed input.
func (s *Selector) Select(ctx Context) Decision {
	switch ctx.Plan.Strategy {
	case concession.StrategyTitForTat:
		if d, ok := s.selectTitForTat(ctx); ok {
			return d
		}
	case concession.StrategyFirm:
		return s.selectFirm(ctx)
	case concession.StrategyGradual:
		return s.selectGradual(ctx)
	case concession.StrategyFlexible:
		if d, ok := s.selectFlexible(ctx); ok {
			return d
		}
	}

	offer := s.concessionStep(ctx, ctx.Plan.Rate)
	return NewCounter("countering with a position one step closer to the fallback ladder", offer)
}

// selectTitForTat mirrors the opponent's movement. It reports ok=false when
// neither rule fires so the caller falls through to the default counter.
func (s *Selector) selectTitForTat(ctx Context) (Decision, bool) {
	conceded := OpponentConcession(ctx.Current, ctx.OpponentPrevious)

	if conceded > reciprocateAbove {
		offer := s.concessionStep(ctx, ctx.Plan.Rate)
		reason := fmt.Sprintf("opponent conceded %.2f; reciprocating with a concession", conceded)
		return NewConcede(reason, offer), true
	}

	if conceded < stallBelow && ctx.Round > stallAfterRound {
		reason := fmt.Sprintf("opponent conceded only %.2f by round %d; holding firm", conceded, ctx.Round)
		return NewHoldFirm(reason), true
	}

	return Decision{}, false
}

// selectFirm accepts only a scored deal inside the zone, counters with the
// final position late, and holds otherwise.
func (s *Selector) selectFirm(ctx Context) Decision {
	zone := zopa.Compute(ctx.Profile, ctx.Counterparty, ctx.Current)
	score := s.scorer.Score(ctx.Profile, ctx.Current)

	minAcceptable := party.DefaultMinAcceptable
	if ctx.Profile != nil {
		minAcceptable = ctx.Profile.Config.EffectiveMinAcceptable()
	}

	if zone.Exists && score >= minAcceptable {
		reason := fmt.Sprintf("proposal scores %.2f against a %.2f threshold inside the agreement zone", score, minAcceptable)
		return NewAccept(reason)
	}

	if ctx.Round > finalOfferRound {
		reason := fmt.Sprintf("round %d exceeds the firm holding window; countering with the final position", ctx.Round)
		return NewCounter(reason, ctx.Plan.FinalPosition())
	}

	return NewHoldFirm("holding the current position; the deal has not met the firm threshold")
}

// selectGradual concedes on even rounds and holds on odd rounds.
func (s *Selector) selectGradual(ctx Context) Decision {
	if ctx.Round%2 == 0 {
		offer := s.concessionStep(ctx, ctx.Plan.Rate)
		return NewConcede(fmt.Sprintf("round %d is a concession round in the gradual cadence", ctx.Round), offer)
	}
	return NewHoldFirm(fmt.Sprintf("round %d is a holding round in the gradual cadence", ctx.Round))
}

// selectFlexible concedes at an elevated rate whenever a zone exists. It
// reports ok=false outside the zone so the caller falls through to the
// default counter.
func (s *Selector) selectFlexible(ctx Context) (Decision, bool) {
	zone := zopa.Compute(ctx.Profile, ctx.Counterparty, ctx.Current)
	if !zone.Exists {
		return Decision{}, false
	}

	offer := s.concessionStep(ctx, ctx.Plan.Rate*flexibleRateFactor)
	return NewConcede("agreement zone exists; conceding at an accelerated rate to close", offer), true
}

// concessionStep produces the offer for a concession or counter: the tail
// get is removed with probability equal to the effective rate, clamped to
// [0,1]. Red lines are never removed and the gets list never drops below
// one entry; when the draw or the plan refuses the step, the current
// proposal is returned unchanged.
func (s *Selector) concessionStep(ctx Context, rate float64) terms.Terms {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}

	if s.rand.Float64() >= rate {
		return ctx.Current.Clone()
	}

	next, ok := ctx.Plan.ConcedeOnce(ctx.Current)
	if !ok {
		return ctx.Current.Clone()
	}
	return next
}

// OpponentConcession measures how much the opponent moved between its
// previous and current proposal: the drop in its gets-minus-gives count,
// normalized by the previous count (denominator floored at 1) and clamped
// to >= 0.
func OpponentConcession(current, previous terms.Terms) float64 {
	curNet := current.BNet()
	prevNet := previous.BNet()

	denom := prevNet
	if denom < 1 {
		denom = 1
	}

	conceded := float64(prevNet-curNet) / float64(denom)
	if conceded < 0 {
		return 0
	}
	return conceded
}
