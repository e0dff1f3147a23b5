package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/pomo/internal/domain"
	"github.com/mmcdole/pomo/internal/pomodoro"
	"github.com/mmcdole/pomo/internal/tui/components"
	"github.com/mmcdole/pomo/internal/tui/styles"
)

// WidgetWidth is the rendered width of one timer card
const WidgetWidth = 34

// Widget is one mounted timer: a clock machine, the face presenting it and
// the tick schedule driving it. The schedule is identified by gen; bumping
// gen cancels it, since ticks carrying an older gen are dropped.
type Widget struct {
	ID      int
	Machine *pomodoro.Machine
	Face    components.ClockFace
	gen     int
}

// NewWidget mounts a face on a fresh clock sharing counters
func NewWidget(id int, start domain.Settings, counters *pomodoro.Counters, face components.ClockFace) *Widget {
	return &Widget{
		ID:      id,
		Machine: pomodoro.NewMachine(start, counters),
		Face:    face,
	}
}

// Name is the face variant
func (w *Widget) Name() string {
	return w.Face.Name()
}

// Mount hands the initial clock to the face
func (w *Widget) Mount() tea.Cmd {
	return w.show()
}

func (w *Widget) show() tea.Cmd {
	return w.Face.Show(w.Machine.Minutes(), w.Machine.Seconds())
}

// cancelSchedule drops any tick in flight
func (w *Widget) cancelSchedule() {
	w.gen++
}

// Toggle starts or pauses the clock. Starting opens a new tick schedule;
// pausing cancels the current one.
func (w *Widget) Toggle() tea.Cmd {
	w.cancelSchedule()
	if w.Machine.Toggle() {
		return ClockTickCmd(w.ID, w.gen)
	}
	return nil
}

// Reset stops the clock, restores the configured start and zeroes the counters
func (w *Widget) Reset() tea.Cmd {
	w.cancelSchedule()
	w.Machine.Reset()
	return w.show()
}

// Configure applies submitted settings; a running schedule keeps running
func (w *Widget) Configure(s domain.Settings) tea.Cmd {
	w.Machine.Configure(s)
	return w.show()
}

// Unmount cancels the schedule for good
func (w *Widget) Unmount() {
	w.cancelSchedule()
	if w.Machine.Active() {
		w.Machine.Toggle()
	}
}

// HandleTick advances the clock for a live tick and schedules the next one.
// ok is false for ticks belonging to another widget or a cancelled schedule.
func (w *Widget) HandleTick(msg ClockTickMsg) (res pomodoro.TickResult, cmd tea.Cmd, ok bool) {
	if msg.WidgetID != w.ID || msg.Gen != w.gen || !w.Machine.Active() {
		return pomodoro.TickResult{}, nil, false
	}
	res = w.Machine.Tick()
	return res, tea.Batch(ClockTickCmd(w.ID, w.gen), w.show()), true
}

// CycleRecord describes the cycle that just completed on this widget
func (w *Widget) CycleRecord(res pomodoro.TickResult) domain.CycleRecord {
	c := w.Machine.Counters()
	return domain.CycleRecord{
		Widget:    w.Name(),
		Round:     c.Round(),
		Goal:      c.Goal(),
		Start:     w.Machine.Start(),
		Saturated: res.Saturated,
	}
}

// progress is the elapsed share of the current countdown, in percent
func (w *Widget) progress() float64 {
	start := w.Machine.Start()
	total := start.Minutes*60 + start.Seconds
	if total <= 0 {
		return 0
	}
	left := w.Machine.Minutes()*60 + w.Machine.Seconds()
	return float64(total-left) * 100 / float64(total)
}

// View renders the timer card
func (w *Widget) View(focused bool) string {
	glyph := styles.PlayGlyph
	if w.Machine.Active() {
		glyph = styles.PauseGlyph
	}
	c := w.Machine.Counters()

	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.ButtonStyle.Render(glyph),
		" ",
		styles.ButtonStyle.Render(styles.ResetGlyph),
		" ",
		styles.SettingsButtonStyle.Render(styles.SettingsGlyph),
	)

	inner := WidgetWidth - 4
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render("Pomodoro"),
		styles.DimStyle.Render(w.Name()),
		"",
		w.Face.View(),
		"",
		styles.RenderProgressBar(w.progress(), inner-2),
		"",
		controls,
		"",
		styles.DimStyle.Render(fmt.Sprintf("Round: %d / %d", c.Round(), domain.MaxRound)),
		styles.DimStyle.Render(fmt.Sprintf("Goal: %d / %d", c.Goal(), domain.MaxGoal)),
	)

	border := styles.InactiveBorder
	if focused {
		border = styles.ActiveBorder
	}
	return border.Width(inner).Align(lipgloss.Center).Render(content)
}
