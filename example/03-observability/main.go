// Package main demonstrates running a session with stdout tracing and seeded
// concession draws.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/felixgeelhaar/negotiation-go/application"
	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/logging"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/observability"
)

func main() {
	// Structured logging at debug level shows every engine decision.
	logging.Init(logging.Config{Level: "debug", Format: "console"})

	// Spans for every engine operation and session round go to stdout.
	provider, err := observability.NewStdoutProvider("negotiation-example")
	if err != nil {
		log.Fatal(err)
	}
	defer provider.Shutdown(context.Background())

	engine, err := application.NewEngineWithOptions(
		application.WithTracer(provider.Tracer()),
		// A seeded source varies which concession steps land while staying
		// reproducible across runs.
		application.WithRand(rand.New(rand.NewSource(42))),
		application.WithMaxRounds(8),
	)
	if err != nil {
		log.Fatal(err)
	}

	landlord := &party.Profile{
		Name: "landlord",
		Needs: []party.Need{
			{Description: "two-year lease", Priority: party.PriorityCritical, Flexibility: 0.1},
			{Description: "annual escalation", Priority: party.PriorityMedium, Flexibility: 0.6},
		},
		Offerings: []party.Offering{
			{Description: "fit-out budget", Capacity: 0.6},
		},
		Config: party.Config{Style: party.StyleCompromising},
	}
	tenant := &party.Profile{
		Name: "tenant",
		Needs: []party.Need{
			{Description: "rent-free period", Priority: party.PriorityHigh, Flexibility: 0.5},
		},
		Offerings: []party.Offering{
			{Description: "two-year lease", Capacity: 0.7},
		},
		Config: party.Config{Style: party.StyleAccommodating},
	}

	opening := terms.New(
		[]string{"fit-out budget"},
		[]string{"two-year lease", "annual escalation"},
		[]string{"two-year lease", "annual escalation"},
		[]string{"fit-out budget"},
	)

	outcome, err := application.RunSession(context.Background(), engine, application.SessionConfig{
		A:       landlord,
		B:       tenant,
		Opening: opening,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("session %s ended %s after %d rounds\n", outcome.SessionID, outcome.Phase, outcome.Rounds)
}
