package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/pomo/internal/domain"
	"github.com/mmcdole/pomo/internal/pomodoro"
)

const statusTimeout = 3 * time.Second

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Route to the settings panel while it is open; only ctrl+c escapes it
	if m.Settings.IsVisible() {
		if msg.Type == tea.KeyCtrlC {
			m.stopAll()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		var submitted bool
		m.Settings, cmd, submitted = m.Settings.Update(msg)
		if submitted {
			return m.applySettings()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		m.stopAll()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, Keys.NextWidget):
		m.Focus = (m.Focus + 1) % len(m.Widgets)
		return m, nil

	case key.Matches(msg, Keys.PrevWidget):
		m.Focus = (m.Focus - 1 + len(m.Widgets)) % len(m.Widgets)
		return m, nil

	case key.Matches(msg, Keys.Toggle):
		w := m.Focused()
		cmd := w.Toggle()
		m.logger.Debug("toggle", "widget", w.Name(), "active", w.Machine.Active())
		return m, cmd

	case key.Matches(msg, Keys.Reset):
		w := m.Focused()
		cmd := w.Reset()
		m.logger.Info("reset", "widget", w.Name(), "start", w.Machine.Start().String())
		return m, cmd

	case key.Matches(msg, Keys.Settings):
		m.Settings.Show(m.Focused().Machine.Start())
		return m, textinput.Blink
	}

	return m, nil
}

// applySettings validates the panel and configures the focused widget.
// A rejected submission leaves every widget untouched.
func (m Model) applySettings() (tea.Model, tea.Cmd) {
	minutes, seconds := m.Settings.Values()

	s, err := pomodoro.ParseSettings(minutes, seconds)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			m.Settings.SetErrors(verr)
		}
		m.logger.Debug("settings rejected", "error", err)
		m.StatusMsg = "Settings not applied"
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusTimeout)
	}

	m.Settings.SetErrors(nil)
	w := m.Focused()
	cmd := w.Configure(s)
	m.logger.Info("settings applied", "widget", w.Name(), "start", s.String())
	m.StatusMsg = "Start set to " + s.String()
	m.StatusIsErr = false
	return m, tea.Batch(cmd, ClearStatusCmd(statusTimeout))
}
