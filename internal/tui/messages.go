package tui

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ClockTickMsg is one second of a widget's tick schedule. Gen must match the
// widget's current generation or the tick is stale and dropped.
type ClockTickMsg struct {
	WidgetID int
	Gen      int
}

// CycleRecordedMsg signals a completed cycle reached the journal
type CycleRecordedMsg struct {
	TodayCount int
}

// TodayCountMsg carries the number of cycles completed today
type TodayCountMsg struct {
	Count int
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
