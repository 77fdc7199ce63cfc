package config

import (
	"errors"
	"strings"
	"testing"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("NEG_HOST", "localhost")
	t.Setenv("NEG_EMPTY", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bracketed", input: "host: ${NEG_HOST}", want: "host: localhost"},
		{name: "simple", input: "host: $NEG_HOST", want: "host: localhost"},
		{name: "default used", input: "${NEG_UNSET:-fallback}", want: "fallback"},
		{name: "default skipped", input: "${NEG_HOST:-fallback}", want: "localhost"},
		{name: "empty uses default", input: "${NEG_EMPTY:-fallback}", want: "fallback"},
		{name: "unset to empty", input: "a${NEG_UNSET}b", want: "ab"},
		{name: "no variables", input: "plain text", want: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandEnvStrict(t *testing.T) {
	t.Setenv("NEG_HOST", "localhost")

	if _, err := ExpandEnvStrict("${NEG_UNSET}"); !errors.Is(err, ErrMissingEnvVar) {
		t.Errorf("error = %v, want ErrMissingEnvVar", err)
	}

	got, err := ExpandEnvStrict("${NEG_HOST}")
	if err != nil || got != "localhost" {
		t.Errorf("ExpandEnvStrict() = %q, %v", got, err)
	}
}

func TestExpandEnv_RequiredModifier(t *testing.T) {
	_, err := ExpandEnvStrict("${NEG_UNSET:?host is required}")
	if !errors.Is(err, ErrMissingEnvVar) {
		t.Fatalf("error = %v, want ErrMissingEnvVar", err)
	}
	if !strings.Contains(err.Error(), "host is required") {
		t.Errorf("error %q should carry the custom message", err)
	}
}
