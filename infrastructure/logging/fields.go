package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/negotiation-go/domain/concession"
	"github.com/felixgeelhaar/negotiation-go/domain/move"
	"github.com/felixgeelhaar/negotiation-go/domain/party"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for negotiation logging.

// SessionID adds a session ID field.
func SessionID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("session_id", id)
	}
}

// Round adds a round number field.
func Round(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("round", n)
	}
}

// Party adds a party name field.
func Party(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("party", name)
	}
}

// MoveAction adds the selected action field.
func MoveAction(a move.Action) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("action", string(a))
	}
}

// Strategy adds a concession strategy field.
func Strategy(s concession.Strategy) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("strategy", string(s))
	}
}

// Style adds a negotiation style field.
func Style(s party.Style) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("style", string(s))
	}
}

// ZopaExists adds an agreement-zone existence field.
func ZopaExists(exists bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("zopa_exists", exists)
	}
}

// Score adds a proposal score field.
func Score(score float64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Float64("score", score)
	}
}

// Conceded adds an opponent-concession magnitude field.
func Conceded(magnitude float64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Float64("conceded", magnitude)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Reason adds a reason field.
func Reason(reason string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("reason", reason)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
