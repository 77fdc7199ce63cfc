package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/negotiation-go/domain/party"
)

const validScenarioYAML = `
name: supplier-buyer
party_a:
  name: supplier
  needs:
    - description: long-term contract
      priority: critical
      flexibility: 0.1
    - description: quarterly payments
      priority: medium
      flexibility: 0.8
  offerings:
    - description: volume discount
      capacity: 0.7
  config:
    style: collaborative
party_b:
  name: buyer
  needs:
    - description: low unit price
      priority: high
      flexibility: 0.4
  offerings:
    - description: multi-year commitment
      capacity: 0.5
  config:
    style: competitive
    min_acceptable: 0.65
opening:
  a_gives: [volume discount]
  a_gets: [multi-year commitment, reference case]
  b_gives: [multi-year commitment, reference case]
  b_gets: [volume discount]
max_rounds: 6
prior_agreements: 2
`

func TestLoader_LoadString_YAML(t *testing.T) {
	loader := NewLoader()

	scenario, err := loader.LoadString(validScenarioYAML, FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if scenario.Name != "supplier-buyer" {
		t.Errorf("Name = %q, want supplier-buyer", scenario.Name)
	}
	if scenario.PartyA.Name != "supplier" || scenario.PartyB.Name != "buyer" {
		t.Errorf("parties = %q / %q", scenario.PartyA.Name, scenario.PartyB.Name)
	}
	if got := scenario.PartyA.Config.Style; got != party.StyleCollaborative {
		t.Errorf("party A style = %s, want collaborative", got)
	}
	if got := scenario.PartyB.Config.MinAcceptable; got != 0.65 {
		t.Errorf("party B min_acceptable = %v, want 0.65", got)
	}
	if len(scenario.Opening.AGets) != 2 || len(scenario.Opening.BGives) != 2 {
		t.Error("opening terms must keep mirrored lists aligned")
	}
	if scenario.MaxRounds != 6 || scenario.PriorAgreements != 2 {
		t.Errorf("session settings = %d rounds / %d priors", scenario.MaxRounds, scenario.PriorAgreements)
	}
}

func TestLoader_LoadString_JSON(t *testing.T) {
	loader := NewLoader()

	content := `{
		"name": "quick-deal",
		"party_a": {"name": "a"},
		"party_b": {"name": "b"},
		"opening": {"a_gives": [], "a_gets": ["x"], "b_gives": ["x"], "b_gets": []}
	}`

	scenario, err := loader.LoadString(content, FormatJSON)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if scenario.Name != "quick-deal" {
		t.Errorf("Name = %q", scenario.Name)
	}
}

func TestLoader_ValidationFailure(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing name",
			content: `{"party_a": {"name": "a"}, "party_b": {"name": "b"}}`,
		},
		{
			name:    "nameless party",
			content: `{"name": "s", "party_a": {}, "party_b": {"name": "b"}}`,
		},
		{
			name:    "negative rounds",
			content: `{"name": "s", "party_a": {"name": "a"}, "party_b": {"name": "b"}, "max_rounds": -1}`,
		},
		{
			name:    "bad priority",
			content: `{"name": "s", "party_a": {"name": "a", "needs": [{"description": "x", "priority": "urgent"}]}, "party_b": {"name": "b"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadString(tt.content, FormatJSON)
			if !errors.Is(err, ErrValidationFailed) {
				t.Errorf("error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestLoader_ValidationDisabled(t *testing.T) {
	loader := NewLoaderWithOptions(WithValidation(false))

	if _, err := loader.LoadString(`{"party_a": {}, "party_b": {}}`, FormatJSON); err != nil {
		t.Errorf("LoadString() with validation off error = %v", err)
	}
}

func TestLoader_InvalidContent(t *testing.T) {
	loader := NewLoaderWithOptions(WithValidation(false))

	if _, err := loader.LoadString("{not yaml: [", FormatYAML); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
	if _, err := loader.LoadString("not json", FormatJSON); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
	if _, err := loader.LoadString("{}", Format("toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoader_EnvExpansion(t *testing.T) {
	t.Setenv("NEGOTIATION_PARTY", "acme")

	loader := NewLoaderWithOptions(WithValidation(false))
	scenario, err := loader.LoadString(`{"name": "s", "party_a": {"name": "${NEGOTIATION_PARTY}"}, "party_b": {"name": "${MISSING_PARTY:-fallback}"}}`, FormatJSON)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if scenario.PartyA.Name != "acme" {
		t.Errorf("PartyA.Name = %q, want acme", scenario.PartyA.Name)
	}
	if scenario.PartyB.Name != "fallback" {
		t.Errorf("PartyB.Name = %q, want fallback", scenario.PartyB.Name)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(validScenarioYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader()
	scenario, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if scenario.Name != "supplier-buyer" {
		t.Errorf("Name = %q", scenario.Name)
	}

	if _, err := loader.LoadFile(filepath.Join(dir, "absent.yaml")); !errors.Is(err, ErrScenarioNotFound) {
		t.Errorf("missing file error = %v, want ErrScenarioNotFound", err)
	}
	if _, err := loader.LoadFile(dir); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("directory error = %v, want ErrInvalidFormat", err)
	}

	txt := filepath.Join(dir, "scenario.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadFile(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("extension error = %v, want ErrUnsupportedFormat", err)
	}
}
