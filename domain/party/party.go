// Package party provides the profile types describing a negotiating party.
package party

// Priority ranks how important a need is to the party that holds it.
type Priority string

const (
	// PriorityCritical marks a need the party cannot close a deal without.
	PriorityCritical Priority = "critical"

	// PriorityHigh marks a strongly desired need.
	PriorityHigh Priority = "high"

	// PriorityMedium marks a useful but negotiable need.
	PriorityMedium Priority = "medium"

	// PriorityLow marks a nice-to-have need.
	PriorityLow Priority = "low"
)

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Need is something a party wants out of the negotiation.
type Need struct {
	// Description identifies the need. Descriptions are unique within a profile.
	Description string `json:"description" yaml:"description"`

	// Priority ranks the need's importance.
	Priority Priority `json:"priority" yaml:"priority"`

	// Flexibility in [0,1] measures how far the party will bend on this need.
	Flexibility float64 `json:"flexibility" yaml:"flexibility"`
}

// Offering is something a party can put on the table.
type Offering struct {
	// Description identifies the offering.
	Description string `json:"description" yaml:"description"`

	// Capacity in [0,1] measures how much of the offering the party can deliver.
	Capacity float64 `json:"capacity" yaml:"capacity"`
}

// Profile describes one negotiating party. The engine treats profiles as
// read-only; ownership stays with the party.
type Profile struct {
	// Name is a human-readable party identifier.
	Name string `json:"name" yaml:"name"`

	// Needs is the ordered list of what the party wants.
	Needs []Need `json:"needs" yaml:"needs"`

	// Offerings is the ordered list of what the party can give.
	Offerings []Offering `json:"offerings" yaml:"offerings"`

	// Config holds the party's negotiation settings for the session.
	Config Config `json:"config" yaml:"config"`
}

// CriticalNeeds returns the descriptions of all critical-priority needs.
func (p *Profile) CriticalNeeds() []string {
	out := make([]string, 0)
	for _, n := range p.Needs {
		if n.Priority == PriorityCritical {
			out = append(out, n.Description)
		}
	}
	return out
}

// FlexibleNeeds returns the descriptions of non-critical needs whose
// flexibility exceeds the given threshold.
func (p *Profile) FlexibleNeeds(threshold float64) []string {
	out := make([]string, 0)
	for _, n := range p.Needs {
		if n.Priority != PriorityCritical && n.Flexibility > threshold {
			out = append(out, n.Description)
		}
	}
	return out
}

// MeanOfferingCapacity returns the arithmetic mean capacity across the
// party's offerings. A profile with no offerings reports the moderate
// default of 0.5 rather than zero, matching the engine's sparse-data rule.
func (p *Profile) MeanOfferingCapacity() float64 {
	if len(p.Offerings) == 0 {
		return 0.5
	}
	var sum float64
	for _, o := range p.Offerings {
		sum += o.Capacity
	}
	return sum / float64(len(p.Offerings))
}
