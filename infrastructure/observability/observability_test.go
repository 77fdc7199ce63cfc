package observability

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/negotiation-go/domain/telemetry"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ServiceName != "negotiation-go" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.Tracing.Enabled {
		t.Error("tracing must be disabled by default")
	}
	if cfg.Tracing.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v, want 1.0", cfg.Tracing.SampleRate)
	}
	if cfg.Tracing.BatchTimeout != 5*time.Second {
		t.Errorf("BatchTimeout = %v", cfg.Tracing.BatchTimeout)
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := []Option{
		WithServiceName("deal-desk"),
		WithServiceVersion("2.0.0"),
		WithEnvironment("staging"),
		WithTracing(ExporterOTLP, "collector:4317"),
		WithTracingInsecure(),
		WithSampleRate(0.25),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.ServiceName != "deal-desk" || cfg.ServiceVersion != "2.0.0" || cfg.Environment != "staging" {
		t.Errorf("service identity = %+v", cfg)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.Exporter != ExporterOTLP || cfg.Tracing.Endpoint != "collector:4317" {
		t.Errorf("tracing config = %+v", cfg.Tracing)
	}
	if !cfg.Tracing.Insecure || cfg.Tracing.SampleRate != 0.25 {
		t.Errorf("tracing config = %+v", cfg.Tracing)
	}
}

func TestNew_DisabledTracing(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Shutdown(context.Background())

	if p.Tracer() == nil {
		t.Fatal("Tracer() must never be nil")
	}
	if _, ok := p.Tracer().(telemetry.NoopTracer); !ok {
		t.Error("disabled tracing should yield the noop tracer")
	}
}

func TestNew_NoopExporter(t *testing.T) {
	p, err := New(WithNoopTracing())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := p.Tracer().(telemetry.NoopTracer); !ok {
		t.Error("noop exporter should yield the noop tracer")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNew_StdoutTracing(t *testing.T) {
	p, err := NewStdoutProvider("negotiation-test")
	if err != nil {
		t.Fatalf("NewStdoutProvider() error = %v", err)
	}
	defer p.Shutdown(context.Background())

	ctx, span := p.Tracer().StartSpan(context.Background(), "test.span",
		telemetry.WithAttributes(telemetry.String("session.id", "s-1")))
	if ctx == nil || span == nil {
		t.Fatal("StartSpan() must return a context and a span")
	}
	span.SetAttributes(telemetry.Int("round", 3))
	span.AddEvent("round", telemetry.Bool("conceded", true))
	span.End()
}

func TestNewNoopProvider(t *testing.T) {
	p := NewNoopProvider()
	if p.Tracer() == nil {
		t.Fatal("Tracer() must never be nil")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestConvertAttributes(t *testing.T) {
	attrs := convertAttributes([]telemetry.Attribute{
		telemetry.String("s", "v"),
		telemetry.Int("i", 1),
		telemetry.Float64("f", 0.5),
		telemetry.Bool("b", true),
		{Key: "skipped", Value: struct{}{}},
	})
	if len(attrs) != 4 {
		t.Errorf("convertAttributes() kept %d attributes, want 4", len(attrs))
	}
}
