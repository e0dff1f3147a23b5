package pomodoro

import "github.com/mmcdole/pomo/internal/domain"

// TickKind describes what a tick did to the clock
type TickKind int

const (
	// TickIgnored means the clock was idle
	TickIgnored TickKind = iota
	// TickCountdown means one second came off the clock
	TickCountdown
	// TickCycleComplete means the clock ran out and was reset to the configured start
	TickCycleComplete
)

// TickResult is returned by Machine.Tick
type TickResult struct {
	Kind TickKind

	// Saturated is set on a completion that left the counters unchanged
	// because they were already at their maxima.
	Saturated bool
}

// Machine is the countdown clock of a single widget. It is not safe for
// concurrent use; the TUI drives it from its update loop only.
type Machine struct {
	start    domain.Settings
	minutes  int
	seconds  int
	active   bool
	counters *Counters
}

// NewMachine creates an idle clock showing start. Several machines may share
// one Counters.
func NewMachine(start domain.Settings, counters *Counters) *Machine {
	if counters == nil {
		counters = NewCounters()
	}
	return &Machine{
		start:    start,
		minutes:  start.Minutes,
		seconds:  start.Seconds,
		counters: counters,
	}
}

func (m *Machine) Minutes() int           { return m.minutes }
func (m *Machine) Seconds() int           { return m.seconds }
func (m *Machine) Active() bool           { return m.active }
func (m *Machine) Start() domain.Settings { return m.start }
func (m *Machine) Counters() *Counters    { return m.counters }

// Display renders the remaining time as M:SS
func (m *Machine) Display() string {
	return domain.FormatClock(m.minutes, m.seconds)
}

// Toggle flips between running and paused and returns the new state.
// Remaining time is untouched.
func (m *Machine) Toggle() bool {
	m.active = !m.active
	return m.active
}

// Tick advances a running clock by one second. When the clock reaches 0:00
// the cycle completes within the same tick: the shared counters advance and
// the clock is reset to the configured start, still running.
func (m *Machine) Tick() TickResult {
	if !m.active {
		return TickResult{Kind: TickIgnored}
	}

	switch {
	case m.seconds > 0:
		m.seconds--
	case m.minutes > 0:
		m.minutes--
		m.seconds = 59
	}

	if m.minutes > 0 || m.seconds > 0 {
		return TickResult{Kind: TickCountdown}
	}

	advanced := m.counters.advance()
	m.minutes, m.seconds = m.start.Minutes, m.start.Seconds
	return TickResult{Kind: TickCycleComplete, Saturated: !advanced}
}

// Reset stops the clock, restores the configured start and zeroes the
// shared counters.
func (m *Machine) Reset() {
	m.active = false
	m.minutes, m.seconds = m.start.Minutes, m.start.Seconds
	m.counters.zero()
}

// Configure replaces the configured start and the remaining time.
// Running state and counters are left alone.
func (m *Machine) Configure(s domain.Settings) {
	m.start = s
	m.minutes, m.seconds = s.Minutes, s.Seconds
}
