// Package main demonstrates the minimum working negotiation session.
// This is the simplest possible negotiation-go example.
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
	// 1. Describe the two parties
	supplier := &party.Profile{
		Name: "supplier",
		Needs: []party.Need{
			{Description: "multi-year commitment", Priority: party.PriorityCritical, Flexibility: 0.1},
			{Description: "reference case", Priority: party.PriorityLow, Flexibility: 0.9},
		},
		Offerings: []party.Offering{
			{Description: "volume discount", Capacity: 0.7},
			{Description: "priority support", Capacity: 0.5},
		},
		Config: party.Config{Style: party.StyleCollaborative},
	}
	buyer := &party.Profile{
		Name: "buyer",
		Needs: []party.Need{
			{Description: "low unit price", Priority: party.PriorityHigh, Flexibility: 0.4},
		},
		Offerings: []party.Offering{
			{Description: "multi-year commitment", Capacity: 0.6},
		},
		Config: party.Config{Style: party.StyleCompetitive},
	}

	// 2. State the opening proposal from the supplier's side
	opening := terms.New(
		[]string{"volume discount"},
		[]string{"multi-year commitment", "reference case"},
		[]string{"multi-year commitment", "reference case"},
		[]string{"volume discount"},
	)

	// 3. Build the engine with defaults (deterministic draws, noop tracing)
	engine, err := application.NewEngineWithOptions()
	if err != nil {
		log.Fatal(err)
	}

	// 4. Play the session
	outcome, err := application.RunSession(context.Background(), engine, application.SessionConfig{
		A:       supplier,
		B:       buyer,
		Opening: opening,
	})
	if err != nil {
		log.Fatal(err)
	}

	// 5. Check results
	fmt.Println("=== Minimal Session Example ===")
	fmt.Printf("Phase: %s\n", outcome.Phase)
	fmt.Printf("Rounds: %d\n", outcome.Rounds)
	for _, record := range outcome.Transcript.Records() {
		fmt.Printf("  round %d: %s %s\n", record.Round, record.Party, record.Decision.Action)
	}
}
