package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/pomo/internal/domain"
	"github.com/mmcdole/pomo/internal/service"
)

// Command factories for async operations

// TickPeriod is the interval of the clock tick schedule
const TickPeriod = time.Second

const journalTimeout = 5 * time.Second

// ClockTickCmd schedules the next tick of one widget
func ClockTickCmd(widgetID, gen int) tea.Cmd {
	return tea.Tick(TickPeriod, func(time.Time) tea.Msg {
		return ClockTickMsg{WidgetID: widgetID, Gen: gen}
	})
}

// RecordCycleCmd writes a completed cycle to the journal
func RecordCycleCmd(svc *service.SessionService, rec domain.CycleRecord) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		defer cancel()

		if err := svc.RecordCycle(ctx, rec); err != nil {
			return ErrMsg{Err: err, Context: "saving cycle"}
		}
		n, err := svc.TodayCount(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "reading journal"}
		}
		return CycleRecordedMsg{TodayCount: n}
	}
}

// LoadTodayCountCmd reads how many cycles were completed today
func LoadTodayCountCmd(svc *service.SessionService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		defer cancel()

		n, err := svc.TodayCount(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "reading journal"}
		}
		return TodayCountMsg{Count: n}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
