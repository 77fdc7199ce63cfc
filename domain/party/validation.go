package party

import (
	"fmt"
	"strings"
)

// ValidationError describes one malformed field in a profile.
type ValidationError struct {
	// Path is the path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validate checks the profile for malformed data. The engine itself never
// validates; callers are expected to reject bad profiles before invoking it.
func (p *Profile) Validate() ValidationErrors {
	var errs ValidationErrors
	add := func(path, msg string) {
		errs = append(errs, ValidationError{Path: path, Message: msg})
	}

	if p.Name == "" {
		add("name", "name is required")
	}

	seen := make(map[string]bool)
	for i, n := range p.Needs {
		path := fmt.Sprintf("needs[%d]", i)
		if n.Description == "" {
			add(path+".description", "description is required")
		} else if seen[n.Description] {
			add(path+".description", fmt.Sprintf("duplicate need %q", n.Description))
		} else {
			seen[n.Description] = true
		}
		if !n.Priority.IsValid() {
			add(path+".priority", fmt.Sprintf("unknown priority %q", n.Priority))
		}
		if n.Flexibility < 0 || n.Flexibility > 1 {
			add(path+".flexibility", "flexibility must be in [0,1]")
		}
	}

	seen = make(map[string]bool)
	for i, o := range p.Offerings {
		path := fmt.Sprintf("offerings[%d]", i)
		if o.Description == "" {
			add(path+".description", "description is required")
		} else if seen[o.Description] {
			add(path+".description", fmt.Sprintf("duplicate offering %q", o.Description))
		} else {
			seen[o.Description] = true
		}
		if o.Capacity < 0 || o.Capacity > 1 {
			add(path+".capacity", "capacity must be in [0,1]")
		}
	}

	if p.Config.Style != "" && !p.Config.Style.IsValid() {
		add("config.style", fmt.Sprintf("unknown style %q", p.Config.Style))
	}
	if p.Config.MinAcceptable < 0 || p.Config.MinAcceptable > 1 {
		add("config.min_acceptable", "min_acceptable must be in [0,1]")
	}

	return errs
}
