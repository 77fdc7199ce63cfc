// Package main demonstrates the pre-session analysis operations: BATNA
// estimation, the zone of possible agreement, concession planning, and the
// relationship-versus-transaction comparison.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/felixgeelhaar/negotiation-go/application"
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

func main() {
	agency := &party.Profile{
		Name: "agency",
		Needs: []party.Need{
			{Description: "retainer contract", Priority: party.PriorityCritical, Flexibility: 0.1},
			{Description: "creative control", Priority: party.PriorityMedium, Flexibility: 0.7},
			{Description: "case study rights", Priority: party.PriorityLow, Flexibility: 0.9},
		},
		Offerings: []party.Offering{
			{Description: "dedicated team", Capacity: 0.8},
			{Description: "weekend availability", Capacity: 0.4},
		},
		Config: party.Config{Style: party.StyleCollaborative},
	}
	client := &party.Profile{
		Name: "client",
		Needs: []party.Need{
			{Description: "fixed budget", Priority: party.PriorityHigh, Flexibility: 0.3},
		},
		Offerings: []party.Offering{
			{Description: "retainer contract", Capacity: 0.6},
			{Description: "public endorsement", Capacity: 0.5},
		},
		Config: party.Config{Style: party.StyleCompromising, MinAcceptable: 0.55},
	}

	opening := terms.New(
		[]string{"dedicated team"},
		[]string{"retainer contract", "creative control", "case study rights"},
		[]string{"retainer contract", "creative control", "case study rights"},
		[]string{"dedicated team"},
	)

	engine, err := application.NewEngineWithOptions()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	fmt.Println("=== Analysis Example ===")

	// Fallback strength grows with what each side can offer elsewhere.
	for _, p := range []*party.Profile{agency, client} {
		estimate := engine.EstimateBATNA(ctx, p, nil)
		fmt.Printf("%s BATNA: value %.2f, availability %.2f\n", p.Name, estimate.Value, estimate.Availability)
	}

	// The agreement zone between the agency's floor and the client's reach.
	zone := engine.ComputeZOPA(ctx, agency, client, opening)
	fmt.Printf("zone: exists=%v [%.2f, %.2f] midpoint %.2f\n", zone.Exists, zone.LowerBound, zone.UpperBound, zone.Midpoint)
	fmt.Printf("recommendation: %s\n", zone.Recommendation)

	// The agency's concession plan for this opening.
	plan := engine.BuildConcessionPlan(ctx, agency, client, opening)
	fmt.Printf("strategy: %s at rate %.2f\n", plan.Strategy, plan.Rate)
	fmt.Printf("red lines: %v\n", plan.RedLines)
	fmt.Printf("tradables: %v\n", plan.Tradables)
	for i, fallback := range plan.Fallbacks {
		fmt.Printf("fallback %d: gets %v\n", i+1, fallback.AGets)
	}

	// With four prior deals the partnership outweighs this transaction.
	decision := engine.OptimizeForRelationship(ctx, agency, client, opening, 4)
	fmt.Printf("prioritize relationship: %v (%.2f vs %.2f)\n",
		decision.PrioritizeRelationship, decision.RelationshipValue, decision.TransactionValue)
	if decision.EnrichedOffer != nil {
		fmt.Printf("sweetened package: %v\n", decision.EnrichedOffer.AGives)
	}
}
