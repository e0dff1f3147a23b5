package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/pomo/internal/domain"
)

// SessionService records the cycles completed during one run of the program
type SessionService struct {
	id      string
	journal domain.Journal
	logger  *slog.Logger
	now     func() time.Time
}

// NewSessionService creates a new SessionService with a fresh session id
func NewSessionService(journal domain.Journal, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &SessionService{
		id:      id,
		journal: journal,
		logger:  logger.With("session", id),
		now:     time.Now,
	}
}

// ID returns the session id stamped on every record
func (s *SessionService) ID() string {
	return s.id
}

// RecordCycle appends a completed cycle to the journal.
// SessionID and a zero CompletedAt are filled in.
func (s *SessionService) RecordCycle(ctx context.Context, rec domain.CycleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rec.SessionID = s.id
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = s.now()
	}

	if err := s.journal.Append(rec); err != nil {
		s.logger.Error("failed to record cycle", "error", err, "widget", rec.Widget)
		return fmt.Errorf("recording cycle: %w", err)
	}

	s.logger.Info("cycle completed",
		"widget", rec.Widget,
		"round", rec.Round,
		"goal", rec.Goal,
		"start", rec.Start.String(),
		"saturated", rec.Saturated,
	)
	return nil
}

// TodayCount returns how many cycles were completed since local midnight,
// across all sessions
func (s *SessionService) TodayCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	recs, err := s.journal.Since(midnight)
	if err != nil {
		return 0, fmt.Errorf("reading journal: %w", err)
	}
	return len(recs), nil
}

// Recent returns the latest n records, newest first
func (s *SessionService) Recent(ctx context.Context, n int) ([]domain.CycleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.journal.Recent(n)
}
