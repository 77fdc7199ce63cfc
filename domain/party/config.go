package party

// Style identifies the negotiation style a party has chosen for a session.
type Style string

const (
	// StyleCompetitive pursues the party's own outcome with minimal concession.
	StyleCompetitive Style = "competitive"

	// StyleCollaborative looks for joint gains and reciprocates movement.
	StyleCollaborative Style = "collaborative"

	// StyleCompromising trades concessions steadily toward the middle.
	StyleCompromising Style = "compromising"

	// StyleAccommodating concedes readily to preserve the relationship.
	StyleAccommodating Style = "accommodating"

	// StyleBalanced adapts between the other styles round by round.
	StyleBalanced Style = "balanced"
)

// IsValid returns true if the style is a known value.
func (s Style) IsValid() bool {
	switch s {
	case StyleCompetitive, StyleCollaborative, StyleCompromising, StyleAccommodating, StyleBalanced:
		return true
	}
	return false
}

// DefaultMinAcceptable is the minimum acceptable score used when a party has
// not configured one.
const DefaultMinAcceptable = 0.6

// Config holds a party's negotiation settings. Immutable for the duration of
// a session.
type Config struct {
	// Style is the party's chosen negotiation style. An empty or unknown
	// style is treated as balanced.
	Style Style `json:"style" yaml:"style"`

	// MinAcceptable in [0,1] is the lowest proposal score the party will
	// accept. Zero means unset; EffectiveMinAcceptable applies the default.
	MinAcceptable float64 `json:"min_acceptable" yaml:"min_acceptable"`
}

// EffectiveMinAcceptable returns the configured minimum acceptable score, or
// DefaultMinAcceptable when unset.
func (c Config) EffectiveMinAcceptable() float64 {
	if c.MinAcceptable <= 0 {
		return DefaultMinAcceptable
	}
	return c.MinAcceptable
}

// EffectiveStyle returns the configured style, or StyleBalanced when the
// style is empty or unknown.
func (c Config) EffectiveStyle() Style {
	if c.Style.IsValid() {
		return c.Style
	}
	return StyleBalanced
}
