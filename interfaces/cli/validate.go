package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/infrastructure/config"
)

// validateOptions holds options for the validate command.
type validateOptions struct {
	scenarioPath string
	strict       bool
}

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a scenario file",
		Long: `Validate a negotiation scenario file for correctness.

This command checks:
  - File format (YAML or JSON)
  - Required fields (name, both parties)
  - Need priorities, flexibility and capacity ranges
  - Session settings (rounds, prior agreements)
  - Environment variable references (in strict mode)

Examples:
  # Validate a scenario file
  negotiate validate -s scenario.yaml

  # Strict validation (fail on missing env vars)
  negotiate validate -s scenario.yaml --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateScenario(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scenarioPath, "scenario", "s", "", "Path to scenario file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Enable strict validation (fail on missing env vars)")

	return cmd
}

// validateScenario validates the scenario file.
func (a *App) validateScenario(opts *validateOptions) error {
	if opts.scenarioPath == "" {
		return fmt.Errorf("scenario file path is required (-s flag)")
	}

	loaderOpts := []config.LoaderOption{
		config.WithValidation(true),
	}
	if opts.strict {
		loaderOpts = append(loaderOpts, config.WithStrictEnv(true))
	}

	loader := config.NewLoaderWithOptions(loaderOpts...)
	scenario, err := loader.LoadFile(opts.scenarioPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(a.stdout, "✓ Scenario is valid\n")
	fmt.Fprintf(a.stdout, "  Name: %s\n", scenario.Name)

	fmt.Fprintf(a.stdout, "\nScenario summary:\n")
	for _, p := range []struct {
		label   string
		profile *party.Profile
	}{
		{"Party A", &scenario.PartyA},
		{"Party B", &scenario.PartyB},
	} {
		fmt.Fprintf(a.stdout, "  %s: %s (%s style, %d needs, %d offerings)\n",
			p.label, p.profile.Name, p.profile.Config.EffectiveStyle(),
			len(p.profile.Needs), len(p.profile.Offerings))
	}
	if scenario.MaxRounds > 0 {
		fmt.Fprintf(a.stdout, "  Max rounds: %d\n", scenario.MaxRounds)
	}
	if scenario.PriorAgreements > 0 {
		fmt.Fprintf(a.stdout, "  Prior agreements: %d\n", scenario.PriorAgreements)
	}

	return nil
}
