package application

import (
	"github.com/felixgeelhaar/negotiation-go/domain/move"
	"github.com/felixgeelhaar/negotiation-go/domain/telemetry"
)

// Option configures the engine.
type Option func(*EngineConfig)

// WithScorer sets the proposal scorer.
func WithScorer(s move.Scorer) Option {
	return func(c *EngineConfig) {
		c.Scorer = s
	}
}

// WithRand sets the concession draw source.
func WithRand(r move.Rand) Option {
	return func(c *EngineConfig) {
		c.Rand = r
	}
}

// WithTracer sets the tracer for engine operations and session rounds.
func WithTracer(t telemetry.Tracer) Option {
	return func(c *EngineConfig) {
		c.Tracer = t
	}
}

// WithMaxRounds sets the session round cap.
func WithMaxRounds(n int) Option {
	return func(c *EngineConfig) {
		c.MaxRounds = n
	}
}

// NewEngineWithOptions creates an engine with functional options.
func NewEngineWithOptions(opts ...Option) (*Engine, error) {
	config := EngineConfig{}
	for _, opt := range opts {
		opt(&config)
	}
	return NewEngine(config)
}
