package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/pomo/internal/tui/styles"
)

// widgetGap is the space between side-by-side timer cards
const widgetGap = 2

// arrangeWidgets lays the cards out side by side when they fit in width,
// stacked otherwise. A zero width means unknown and lays them side by side.
func arrangeWidgets(views []string, width int) string {
	if len(views) == 0 {
		return ""
	}

	total := 0
	for _, v := range views {
		total += lipgloss.Width(v)
	}
	total += widgetGap * (len(views) - 1)

	if width > 0 && total > width {
		return lipgloss.JoinVertical(lipgloss.Center, views...)
	}

	gap := strings.Repeat(" ", widgetGap)
	parts := make([]string, 0, len(views)*2-1)
	for i, v := range views {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, v)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderFooter renders status on the left, today's tally and key help on the right
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	var right string
	if m.Session != nil {
		right = styles.AccentStyle.Render(fmt.Sprintf("%d", m.TodayCount)) +
			styles.DimStyle.Render(" cycles today")
	}

	line := left
	if m.Width > 0 {
		gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		line = left + strings.Repeat(" ", gap) + right
	} else if right != "" {
		line = left + " " + right
	}

	if !m.ShowHelp {
		return line
	}

	var helpView string
	if m.Settings.IsVisible() {
		helpView = m.Help.View(settingsHelp)
	} else {
		helpView = m.Help.View(Keys)
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, helpView)
}
