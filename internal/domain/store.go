package domain

import "time"

// Journal is the append-only history of completed cycles.
// It never feeds back into the clock or the counters.
type Journal interface {
	Append(rec CycleRecord) error

	// Since returns records completed at or after t, oldest first
	Since(t time.Time) ([]CycleRecord, error)

	// Recent returns up to n records, newest first
	Recent(n int) ([]CycleRecord, error)

	Close() error
}
