package session

import (
	"time"

	"github.com/felixgeelhaar/negotiation-go/domain/move"
	"github.com/felixgeelhaar/negotiation-go/domain/terms"
)

// RoundRecord captures one round of a session for the caller. The engine
// itself stores nothing; the transcript lives with the session and dies
// with it unless the caller keeps it.
type RoundRecord struct {
	// Round is the 1-based round number.
	Round int `json:"round"`

	// Party names the acting party.
	Party string `json:"party"`

	// Decision is the move the acting party selected.
	Decision move.Decision `json:"decision"`

	// Table is the proposal on the table after the move, from party A's
	// side.
	Table terms.Terms `json:"table"`

	// At is when the round was played.
	At time.Time `json:"at"`
}

// Transcript is the ordered in-memory history of a session's rounds.
type Transcript struct {
	records []RoundRecord
}

// Append adds a round record.
func (t *Transcript) Append(r RoundRecord) {
	t.records = append(t.records, r)
}

// Records returns a copy of the recorded rounds.
func (t *Transcript) Records() []RoundRecord {
	out := make([]RoundRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of recorded rounds.
func (t *Transcript) Len() int {
	return len(t.records)
}

// Last returns the most recent record, if any.
func (t *Transcript) Last() (RoundRecord, bool) {
	if len(t.records) == 0 {
		return RoundRecord{}, false
	}
	return t.records[len(t.records)-1], true
}
