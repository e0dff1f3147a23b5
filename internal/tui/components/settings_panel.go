package components

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/pomo/internal/domain"
	"github.com/mmcdole/pomo/internal/tui/styles"
)

// SettingsPanel is the collapsible form holding the minutes and seconds inputs
type SettingsPanel struct {
	visible bool
	focus   int // 0 = minutes, 1 = seconds
	minutes textinput.Model
	seconds textinput.Model
	errs    map[domain.Field]error
}

// NewSettingsPanel creates a hidden settings panel
func NewSettingsPanel() SettingsPanel {
	return SettingsPanel{
		minutes: newNumberInput("mm"),
		seconds: newNumberInput("ss"),
	}
}

func newNumberInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 6
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	return ti
}

// Show displays the panel prefilled with the current configured start
func (p *SettingsPanel) Show(start domain.Settings) {
	p.visible = true
	p.SetValues(strconv.Itoa(start.Minutes), strconv.Itoa(start.Seconds))
	p.errs = nil
	p.focusField(0)
}

// Hide dismisses the panel
func (p *SettingsPanel) Hide() {
	p.visible = false
	p.minutes.Blur()
	p.seconds.Blur()
}

// IsVisible returns whether the panel is shown
func (p SettingsPanel) IsVisible() bool {
	return p.visible
}

// Values returns the raw minutes and seconds text
func (p SettingsPanel) Values() (string, string) {
	return p.minutes.Value(), p.seconds.Value()
}

// SetValues replaces the raw input text
func (p *SettingsPanel) SetValues(minutes, seconds string) {
	p.minutes.SetValue(minutes)
	p.seconds.SetValue(seconds)
}

// SetErrors shows the per-field errors of a rejected submission
func (p *SettingsPanel) SetErrors(verr *domain.ValidationError) {
	p.errs = nil
	if verr.Empty() {
		return
	}
	p.errs = make(map[domain.Field]error, len(verr.Fields))
	for f, err := range verr.Fields {
		p.errs[f] = err
	}
}

// FieldError returns the error currently shown next to field
func (p SettingsPanel) FieldError(field domain.Field) error {
	return p.errs[field]
}

func (p *SettingsPanel) focusField(i int) {
	p.focus = i
	if i == 0 {
		p.minutes.Focus()
		p.seconds.Blur()
	} else {
		p.seconds.Focus()
		p.minutes.Blur()
	}
}

// Update handles input events, returns (panel, cmd, submitted)
func (p SettingsPanel) Update(msg tea.Msg) (SettingsPanel, tea.Cmd, bool) {
	if !p.visible {
		return p, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, settingsKeys.Apply):
			return p, nil, true
		case key.Matches(keyMsg, settingsKeys.Close):
			p.Hide()
			return p, nil, false
		case key.Matches(keyMsg, settingsKeys.NextField), key.Matches(keyMsg, settingsKeys.PrevField):
			p.focusField(1 - p.focus)
			return p, textinput.Blink, false
		}
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.minutes, cmd = p.minutes.Update(msg)
	} else {
		p.seconds, cmd = p.seconds.Update(msg)
	}
	return p, cmd, false
}

// fieldMessage maps a validation error to the text shown under the input
func fieldMessage(field domain.Field, err error) string {
	switch {
	case errors.Is(err, domain.ErrFieldRequired):
		return "enter " + string(field)
	case errors.Is(err, domain.ErrFieldNotDigits):
		return "numbers only"
	case errors.Is(err, domain.ErrFieldOutOfRange):
		return "number too large"
	default:
		return err.Error()
	}
}

func (p SettingsPanel) renderField(label string, field domain.Field, input textinput.Model, focused bool) string {
	box := styles.InputStyle
	if focused {
		box = styles.FocusedInputStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.LabelStyle.Width(9).Render(label),
		box.Render(input.View()),
	)
	if err := p.errs[field]; err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, row, styles.ErrorStyle.Render(fieldMessage(field, err)))
	}
	return row
}

// View renders the settings panel
func (p SettingsPanel) View() string {
	if !p.visible {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(styles.SettingsGlyph+" Settings"),
		"",
		p.renderField("Minutes", domain.FieldMinutes, p.minutes, p.focus == 0),
		p.renderField("Seconds", domain.FieldSeconds, p.seconds, p.focus == 1),
		"",
		styles.ButtonStyle.Render("enter: apply")+" "+styles.DimStyle.Render("esc: close"),
	)

	return styles.ModalStyle.Render(content)
}
