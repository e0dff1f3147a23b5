package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/pomo/internal/adapter"
	"github.com/mmcdole/pomo/internal/domain"
	"github.com/mmcdole/pomo/internal/pomodoro"
	"github.com/mmcdole/pomo/internal/service"
	"github.com/mmcdole/pomo/internal/tui/components"
)

// Options configures NewModel
type Options struct {
	Variant  adapter.Variant
	Start    domain.Settings
	Session  *service.SessionService // nil disables the journal
	ShowHelp bool
	Logger   *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Timers, all sharing Counters
	Widgets  []*Widget
	Focus    int
	Counters *pomodoro.Counters

	// UI Components
	Settings components.SettingsPanel
	Help     help.Model
	ShowHelp bool

	// Services
	Session *service.SessionService

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	TodayCount  int

	logger *slog.Logger
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	counters := pomodoro.NewCounters()

	var faces []components.ClockFace
	switch opts.Variant {
	case adapter.VariantPlain:
		faces = append(faces, components.NewPlainFace())
	case adapter.VariantAnimated:
		faces = append(faces, components.NewAnimatedFace())
	default:
		faces = append(faces, components.NewPlainFace(), components.NewAnimatedFace())
	}

	widgets := make([]*Widget, len(faces))
	for i, face := range faces {
		widgets[i] = NewWidget(i+1, opts.Start, counters, face)
	}

	return Model{
		Widgets:  widgets,
		Counters: counters,
		Settings: components.NewSettingsPanel(),
		Help:     help.New(),
		ShowHelp: opts.ShowHelp,
		Session:  opts.Session,
		logger:   logger,
	}
}

// Focused returns the widget keys act on
func (m Model) Focused() *Widget {
	return m.Widgets[m.Focus]
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.Widgets)+1)
	for _, w := range m.Widgets {
		cmds = append(cmds, w.Mount())
	}
	if m.Session != nil {
		cmds = append(cmds, LoadTodayCountCmd(m.Session))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ClockTickMsg:
		return m.handleClockTick(msg)

	case components.FrameMsg:
		var cmds []tea.Cmd
		for _, w := range m.Widgets {
			cmds = append(cmds, w.Face.Update(msg))
		}
		return m, tea.Batch(cmds...)

	case CycleRecordedMsg:
		m.TodayCount = msg.TodayCount
		return m, nil

	case TodayCountMsg:
		m.TodayCount = msg.Count
		return m, nil

	case ErrMsg:
		m.logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusTimeout)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component messages
	if m.Settings.IsVisible() {
		var cmd tea.Cmd
		m.Settings, cmd, _ = m.Settings.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleClockTick(msg ClockTickMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, w := range m.Widgets {
		res, cmd, ok := w.HandleTick(msg)
		if !ok {
			continue
		}
		cmds = append(cmds, cmd)

		if res.Kind != pomodoro.TickCycleComplete {
			continue
		}
		rec := w.CycleRecord(res)
		m.logger.Debug("cycle complete",
			"widget", rec.Widget, "round", rec.Round, "goal", rec.Goal, "saturated", rec.Saturated)
		if m.Session != nil {
			cmds = append(cmds, RecordCycleCmd(m.Session, rec))
		}
	}
	return m, tea.Batch(cmds...)
}

// stopAll cancels every tick schedule before the program exits
func (m Model) stopAll() {
	for _, w := range m.Widgets {
		w.Unmount()
	}
}

// View renders the application
func (m Model) View() string {
	views := make([]string, len(m.Widgets))
	for i, w := range m.Widgets {
		views[i] = w.View(i == m.Focus)
	}

	sections := []string{arrangeWidgets(views, m.Width)}
	if m.Settings.IsVisible() {
		sections = append(sections, m.Settings.View())
	}
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)

	footer := m.renderFooter()
	if m.Width == 0 || m.Height == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, body, footer)
	}

	bodyHeight := m.Height - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.Place(m.Width, bodyHeight, lipgloss.Center, lipgloss.Center, body),
		footer,
	)
}
