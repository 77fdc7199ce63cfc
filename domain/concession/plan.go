// Package concession builds a party's concession plan for a session.
package concession

import (
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

// Strategy tags the concession behavior derived from a party's style.
type Strategy string

const (
	// StrategyTitForTat mirrors the opponent's concessions.
	StrategyTitForTat Strategy = "tit-for-tat"

	// StrategyGradual concedes on a steady cadence.
	StrategyGradual Strategy = "gradual"

	// StrategyFirm holds position and concedes only late.
	StrategyFirm Strategy = "firm"

	// StrategyFlexible concedes readily whenever a deal is in reach.
	StrategyFlexible Strategy = "flexible"
)

// TradableFlexibility is the flexibility threshold above which a non-critical
// need becomes tradable.
const TradableFlexibility = 0.5

// ladderDepth is the number of fallback positions generated per plan.
const ladderDepth = 3

// Plan is a party's pre-computed concession strategy for a session. Built
// once from profile and style; rebuild it if the style changes.
type Plan struct {
	// Initial is the party's opening position.
	Initial terms.Terms `json:"initial"`

	// Fallbacks are successively more conceded positions, most favorable
	// first.
	Fallbacks []terms.Terms `json:"fallbacks"`

	// RedLines are item descriptions the party never trades away.
	RedLines []string `json:"red_lines"`

	// Tradables are item descriptions the party will exchange for value.
	Tradables []string `json:"tradables"`

	// Rate in (0,1] is the probability a concession step lands in a round.
	Rate float64 `json:"rate"`

	// Strategy selects the per-round transition rules.
	Strategy Strategy `json:"strategy"`
}

// styleStrategies is the fixed style-to-strategy mapping.
var styleStrategies = map[party.Style]struct {
	strategy Strategy
	rate     float64
}{
	party.StyleCompetitive:   {StrategyFirm, 0.05},
	party.StyleCollaborative: {StrategyTitForTat, 0.15},
	party.StyleAccommodating: {StrategyFlexible, 0.25},
	party.StyleCompromising:  {StrategyGradual, 0.12},
	party.StyleBalanced:      {StrategyGradual, 0.12},
}

// StrategyForStyle maps a negotiation style to its strategy tag and
// concession rate. Unknown or empty styles fall back to gradual.
func StrategyForStyle(style party.Style) (Strategy, float64) {
	if entry, ok := styleStrategies[style]; ok {
		return entry.strategy, entry.rate
	}
	return StrategyGradual, 0.12
}

// Build derives a concession plan from the party's profile and the initial
// proposal. The counterparty profile is accepted for richer models; the
// plan itself depends only on the party's own needs and style. Build never
// fails: sparse profiles yield a plan with empty red lines and tradables.
func Build(profile, counterparty *party.Profile, initial terms.Terms) Plan {
	plan := Plan{
		Initial:   initial.Clone(),
		Fallbacks: make([]terms.Terms, 0, ladderDepth),
	}

	style := party.Style("")
	if profile != nil {
		style = profile.Config.Style
		plan.RedLines = profile.CriticalNeeds()
		plan.Tradables = profile.FlexibleNeeds(TradableFlexibility)
	}
	plan.Strategy, plan.Rate = StrategyForStyle(style)

	current := initial.Clone()
	for i := 0; i < ladderDepth; i++ {
		if next, ok := plan.ConcedeOnce(current); ok {
			current = next
		}
		plan.Fallbacks = append(plan.Fallbacks, current.Clone())
	}

	return plan
}

// IsRedLine reports whether the item is one the party never concedes.
func (p Plan) IsRedLine(item string) bool {
	for _, r := range p.RedLines {
		if r == item {
			return true
		}
	}
	return false
}

// ConcedeOnce removes the tail get from the acting party's list, mirrored on
// the counterparty side. The step is refused when the tail item is a red
// line or when the gets list is already at its floor of one entry; the input
// is returned unchanged with ok=false.
func (p Plan) ConcedeOnce(t terms.Terms) (terms.Terms, bool) {
	last, exists := t.LastAGet()
	if !exists || p.IsRedLine(last) {
		return t, false
	}
	next, _, ok := t.DropLastAGet()
	if !ok {
		return t, false
	}
	return next, true
}

// FinalPosition returns the first fallback, or the initial position when the
// ladder is empty.
func (p Plan) FinalPosition() terms.Terms {
	if len(p.Fallbacks) > 0 {
		return p.Fallbacks[0].Clone()
	}
	return p.Initial.Clone()
}
