package telemetry

import (
	"context"
	"testing"
)

func TestWithAttributes(t *testing.T) {
	cfg := &SpanConfig{}
	opt := WithAttributes(String("session", "abc"), Int("round", 3))
	opt.ApplySpan(cfg)

	if len(cfg.Attributes) != 2 {
		t.Fatalf("WithAttributes() applied %d attributes, want 2", len(cfg.Attributes))
	}
	if cfg.Attributes[0].Key != "session" || cfg.Attributes[0].Value != "abc" {
		t.Errorf("attribute[0] = %+v", cfg.Attributes[0])
	}
	if cfg.Attributes[1].Key != "round" || cfg.Attributes[1].Value != 3 {
		t.Errorf("attribute[1] = %+v", cfg.Attributes[1])
	}
}

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		attr  Attribute
		key   string
		value any
	}{
		{String("k", "v"), "k", "v"},
		{Int("n", 7), "n", 7},
		{Float64("f", 0.5), "f", 0.5},
		{Bool("b", true), "b", true},
	}

	for _, tt := range tests {
		if tt.attr.Key != tt.key || tt.attr.Value != tt.value {
			t.Errorf("attribute = %+v, want (%s, %v)", tt.attr, tt.key, tt.value)
		}
	}
}

func TestNoopTracer(t *testing.T) {
	tracer := NoopTracer{}
	ctx, span := tracer.StartSpan(context.Background(), "round")
	if ctx == nil {
		t.Fatal("StartSpan() returned nil context")
	}

	// All span operations are safe no-ops.
	span.SetAttributes(String("k", "v"))
	span.AddEvent("decision", Int("round", 1))
	span.End()
}
