package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	TomatoRed  = lipgloss.Color("#E53935")
	DeepRed    = lipgloss.Color("#B71C1C")
	LeafGreen  = lipgloss.Color("#43A047")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
)

// Hex values of the colors the animated face blends between
const (
	FadeFromHex = "#1F2937"
	FadeToHex   = "#F9FAFB"
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(TomatoRed)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(TomatoRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(TomatoRed)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(LeafGreen)
)

// Clock styles
var (
	DigitStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	DigitBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SlateLight).
			Padding(0, 1)

	ColonStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Margin(0, 1)
)

// Control glyphs
const (
	PlayGlyph     = "▶"
	PauseGlyph    = "⏸"
	ResetGlyph    = "↻"
	SettingsGlyph = "⚙"
)

// Button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(DeepRed).
			Padding(0, 1)

	SettingsButtonStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(LeafGreen).
				Padding(0, 1)
)

// Form styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(DeepRed).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(TomatoRed).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(TomatoRed).
			Padding(1, 2).
			Background(SlateDark)
)

// Progress bar styles
var (
	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(TomatoRed)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(DimGray)
)

// Helper functions

// RenderProgressBar renders a progress bar, percent in [0,100]
func RenderProgressBar(percent float64, width int) string {
	if width < 3 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return ProgressFullStyle.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}
