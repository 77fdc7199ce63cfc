// Package config loads negotiation scenarios from files.
package config

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/negotiation-go/domain/party"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

// Sentinel errors for scenario loading.
var (
	// ErrScenarioNotFound indicates the scenario file does not exist.
	ErrScenarioNotFound = errors.New("scenario file not found")

	// ErrInvalidFormat indicates the scenario could not be parsed.
	ErrInvalidFormat = errors.New("invalid scenario format")

	// ErrUnsupportedFormat indicates an unsupported file format.
	ErrUnsupportedFormat = errors.New("unsupported scenario format")

	// ErrValidationFailed indicates the scenario failed validation.
	ErrValidationFailed = errors.New("scenario validation failed")

	// ErrMissingEnvVar indicates a required environment variable is not set.
	ErrMissingEnvVar = errors.New("missing environment variable")
)

// Scenario is the file representation of one negotiation setup: two parties,
// the opening proposal from party A's side, and session settings.
type Scenario struct {
	// Name labels the scenario.
	Name string `json:"name" yaml:"name"`

	// PartyA is the opening party.
	PartyA party.Profile `json:"party_a" yaml:"party_a"`

	// PartyB is the responding party.
	PartyB party.Profile `json:"party_b" yaml:"party_b"`

	// Opening is the first proposal, stated from party A's side.
	Opening terms.Terms `json:"opening" yaml:"opening"`

	// MaxRounds caps the session. Zero means the engine default.
	MaxRounds int `json:"max_rounds" yaml:"max_rounds"`

	// PriorAgreements counts previously closed deals between the parties.
	PriorAgreements int `json:"prior_agreements" yaml:"prior_agreements"`

	// Seed drives seeded concession draws. Zero keeps the deterministic
	// default draw.
	Seed int64 `json:"seed" yaml:"seed"`
}

// Validate checks the scenario shape before it reaches the engine. Profile
// validation runs here so malformed parties are rejected at the boundary.
func (s *Scenario) Validate() error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if verrs := s.PartyA.Validate(); verrs.HasErrors() {
		errs = append(errs, fmt.Errorf("party_a: %w", verrs))
	}
	if verrs := s.PartyB.Validate(); verrs.HasErrors() {
		errs = append(errs, fmt.Errorf("party_b: %w", verrs))
	}
	if s.MaxRounds < 0 {
		errs = append(errs, errors.New("max_rounds must not be negative"))
	}
	if s.PriorAgreements < 0 {
		errs = append(errs, errors.New("prior_agreements must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}
