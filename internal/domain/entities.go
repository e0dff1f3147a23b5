package domain

import (
	"fmt"
	"time"
)

// Counter bounds
const (
	MaxRound = 4
	MaxGoal  = 12
)

// Settings is the configured start of a countdown
type Settings struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// DefaultSettings is the start used until the user submits their own
var DefaultSettings = Settings{Minutes: 25, Seconds: 0}

// String formats as M:SS, minutes unpadded
func (s Settings) String() string {
	return FormatClock(s.Minutes, s.Seconds)
}

// FormatClock formats minutes unpadded and seconds padded to two digits
func FormatClock(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// CycleRecord is one completed countdown as written to the journal.
// Round and Goal hold the counters after the completion; Saturated is set
// when they were already pinned at the maxima.
type CycleRecord struct {
	SessionID   string    `json:"session_id"`
	Widget      string    `json:"widget"`
	CompletedAt time.Time `json:"completed_at"`
	Round       int       `json:"round"`
	Goal        int       `json:"goal"`
	Start       Settings  `json:"start"`
	Saturated   bool      `json:"saturated"`
}
