package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/negotiation-go/application"
	"github.com/felixgeelhaar/negotiation-go/domain/move"
	"github.com/felixgeelhaar/negotiation-go/domain/session"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/config"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/observability"
)

// simulateOptions holds options for the simulate command.
type simulateOptions struct {
	scenarioPath string
	maxRounds    int
	seed         int64
	timeout      time.Duration
	jsonOutput   bool
	trace        bool
	analyze      bool
}

// newSimulateCmd creates the simulate command.
func (a *App) newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play out a negotiation scenario",
		Long: `Play a full negotiation session between the two parties in a scenario.

Party A opens with the scenario's opening proposal; the parties then move in
alternating rounds under their own concession plans until one of them accepts
or rejects, or the round cap forces an outcome.

Examples:
  # Play a scenario
  negotiate simulate -s scenario.yaml

  # Seeded concession draws and a tighter round cap
  negotiate simulate -s scenario.yaml --seed 42 --max-rounds 6

  # Machine-readable outcome plus the pre-session analysis
  negotiate simulate -s scenario.yaml --json --analyze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.simulate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scenarioPath, "scenario", "s", "", "Path to scenario file (required)")
	cmd.Flags().IntVar(&opts.maxRounds, "max-rounds", 0, "Round cap (overrides scenario)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for concession draws (overrides scenario)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Session timeout")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the outcome as JSON")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Emit trace spans to stdout")
	cmd.Flags().BoolVar(&opts.analyze, "analyze", false, "Print the pre-session analysis (BATNA, zone, plans)")

	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

// simulate loads the scenario and plays the session.
func (a *App) simulate(ctx context.Context, opts *simulateOptions) error {
	scenario, err := config.NewLoader().LoadFile(opts.scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	engineOpts := []application.Option{}

	seed := scenario.Seed
	if opts.seed != 0 {
		seed = opts.seed
	}
	if seed != 0 {
		engineOpts = append(engineOpts, application.WithRand(rand.New(rand.NewSource(seed))))
	}

	if opts.trace {
		provider, err := observability.NewStdoutProvider("negotiation-go")
		if err != nil {
			return fmt.Errorf("failed to set up tracing: %w", err)
		}
		defer provider.Shutdown(context.Background())
		engineOpts = append(engineOpts, application.WithTracer(provider.Tracer()))
	}

	engine, err := application.NewEngineWithOptions(engineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	if opts.analyze {
		a.printAnalysis(ctx, engine, scenario)
	}

	maxRounds := scenario.MaxRounds
	if opts.maxRounds > 0 {
		maxRounds = opts.maxRounds
	}

	outcome, err := application.RunSession(ctx, engine, application.SessionConfig{
		A:               &scenario.PartyA,
		B:               &scenario.PartyB,
		Opening:         scenario.Opening,
		MaxRounds:       maxRounds,
		PriorAgreements: scenario.PriorAgreements,
	})
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	if opts.jsonOutput {
		return a.printOutcomeJSON(outcome)
	}
	a.printOutcome(scenario.Name, outcome)
	return nil
}

// printAnalysis prints the pre-session view of both parties' positions.
func (a *App) printAnalysis(ctx context.Context, engine *application.Engine, scenario *config.Scenario) {
	batnaA := engine.EstimateBATNA(ctx, &scenario.PartyA, &scenario.PartyB)
	batnaB := engine.EstimateBATNA(ctx, &scenario.PartyB, &scenario.PartyA)
	zone := engine.ComputeZOPA(ctx, &scenario.PartyA, &scenario.PartyB, scenario.Opening)
	planA := engine.BuildConcessionPlan(ctx, &scenario.PartyA, &scenario.PartyB, scenario.Opening)
	planB := engine.BuildConcessionPlan(ctx, &scenario.PartyB, &scenario.PartyA, scenario.Opening.Swapped())

	fmt.Fprintf(a.stdout, "Analysis:\n")
	fmt.Fprintf(a.stdout, "  %s BATNA: value %.2f, availability %.2f\n",
		scenario.PartyA.Name, batnaA.Value, batnaA.Availability)
	fmt.Fprintf(a.stdout, "  %s BATNA: value %.2f, availability %.2f\n",
		scenario.PartyB.Name, batnaB.Value, batnaB.Availability)
	if zone.Exists {
		fmt.Fprintf(a.stdout, "  Agreement zone: [%.2f, %.2f], midpoint %.2f\n",
			zone.LowerBound, zone.UpperBound, zone.Midpoint)
	} else {
		fmt.Fprintf(a.stdout, "  Agreement zone: none (lower %.2f above upper %.2f)\n",
			zone.LowerBound, zone.UpperBound)
	}
	fmt.Fprintf(a.stdout, "  Recommendation: %s\n", zone.Recommendation)
	fmt.Fprintf(a.stdout, "  %s strategy: %s (rate %.2f, %d red lines)\n",
		scenario.PartyA.Name, planA.Strategy, planA.Rate, len(planA.RedLines))
	fmt.Fprintf(a.stdout, "  %s strategy: %s (rate %.2f, %d red lines)\n",
		scenario.PartyB.Name, planB.Strategy, planB.Rate, len(planB.RedLines))
	fmt.Fprintf(a.stdout, "\n")
}

// printOutcome prints the session result and transcript.
func (a *App) printOutcome(name string, outcome *application.Outcome) {
	verdict := "collapsed without agreement"
	if outcome.Phase == session.PhaseAgreed {
		verdict = "closed with agreement"
	}
	fmt.Fprintf(a.stdout, "Session %s %s after %d rounds\n", outcome.SessionID, verdict, outcome.Rounds)
	if name != "" {
		fmt.Fprintf(a.stdout, "  Scenario: %s\n", name)
	}

	fmt.Fprintf(a.stdout, "\nTranscript:\n")
	for _, record := range outcome.Transcript.Records() {
		fmt.Fprintf(a.stdout, "  round %2d  %-12s %-18s %s\n",
			record.Round, record.Party, record.Decision.Action, record.Decision.Reasoning)
	}

	if outcome.Phase == session.PhaseAgreed {
		fmt.Fprintf(a.stdout, "\nFinal terms:\n")
		fmt.Fprintf(a.stdout, "  A gives: %v\n", outcome.Final.AGives)
		fmt.Fprintf(a.stdout, "  A gets:  %v\n", outcome.Final.AGets)
	}
}

// printOutcomeJSON prints the outcome as a single JSON document.
func (a *App) printOutcomeJSON(outcome *application.Outcome) error {
	type roundJSON struct {
		Round  int         `json:"round"`
		Party  string      `json:"party"`
		Action move.Action `json:"action"`
		Reason string      `json:"reason"`
	}
	doc := struct {
		*application.Outcome
		Transcript []roundJSON `json:"transcript"`
	}{Outcome: outcome}
	for _, record := range outcome.Transcript.Records() {
		doc.Transcript = append(doc.Transcript, roundJSON{
			Round:  record.Round,
			Party:  record.Party,
			Action: record.Decision.Action,
			Reason: record.Decision.Reasoning,
		})
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
