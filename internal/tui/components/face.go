package components

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mmcdole/pomo/internal/tui/styles"
)

// ClockFace renders the remaining time of one widget. Faces only observe the
// clock; they never change it.
type ClockFace interface {
	// Name identifies the variant ("plain", "animated")
	Name() string

	// Show is handed the clock after every transition
	Show(minutes, seconds int) tea.Cmd

	// Update receives messages the face scheduled itself
	Update(msg tea.Msg) tea.Cmd

	View() string
}

var lastFaceID int64

func nextFaceID() int {
	return int(atomic.AddInt64(&lastFaceID, 1))
}

func padSeconds(seconds int) string {
	return fmt.Sprintf("%02d", seconds)
}

// PlainFace prints M:SS with no effects
type PlainFace struct {
	minutes int
	seconds int
}

// NewPlainFace creates a plain clock face
func NewPlainFace() *PlainFace {
	return &PlainFace{}
}

func (f *PlainFace) Name() string { return "plain" }

func (f *PlainFace) Show(minutes, seconds int) tea.Cmd {
	f.minutes, f.seconds = minutes, seconds
	return nil
}

func (f *PlainFace) Update(tea.Msg) tea.Cmd { return nil }

func (f *PlainFace) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		styles.DigitStyle.Render(strconv.Itoa(f.minutes)),
		styles.ColonStyle.Render(":"),
		styles.DigitStyle.Render(padSeconds(f.seconds)),
	)
}

// Animation tuning
const (
	animFPS       = 30
	springFreq    = 8.0
	springDamping = 0.72
	settleEpsilon = 0.01
)

// FrameMsg advances the springs of one animated face
type FrameMsg struct {
	FaceID int
}

// digitBox is one animated box; scale runs from 0 to 1 each time its value changes
type digitBox struct {
	value    int
	scale    float64
	velocity float64
}

func (b *digitBox) set(v int) bool {
	if b.value == v {
		return false
	}
	b.value = v
	b.scale, b.velocity = 0, 0
	return true
}

func (b *digitBox) settled() bool {
	return math.Abs(1-b.scale) < settleEpsilon && math.Abs(b.velocity) < settleEpsilon
}

// AnimatedFace replays an entry animation on a digit box whenever its value
// changes: the box grows in and the digits fade from the background colour.
type AnimatedFace struct {
	id        int
	spring    harmonica.Spring
	minutes   digitBox
	seconds   digitBox
	animating bool
	fadeFrom  colorful.Color
	fadeTo    colorful.Color
}

// NewAnimatedFace creates an animated clock face
func NewAnimatedFace() *AnimatedFace {
	from, _ := colorful.Hex(styles.FadeFromHex)
	to, _ := colorful.Hex(styles.FadeToHex)
	return &AnimatedFace{
		id:       nextFaceID(),
		spring:   harmonica.NewSpring(harmonica.FPS(animFPS), springFreq, springDamping),
		minutes:  digitBox{scale: 1},
		seconds:  digitBox{scale: 1},
		fadeFrom: from,
		fadeTo:   to,
	}
}

// ID identifies the face in FrameMsg
func (f *AnimatedFace) ID() int { return f.id }

func (f *AnimatedFace) Name() string { return "animated" }

// Animating reports whether a frame chain is running
func (f *AnimatedFace) Animating() bool { return f.animating }

func (f *AnimatedFace) Show(minutes, seconds int) tea.Cmd {
	changed := f.minutes.set(minutes)
	changed = f.seconds.set(seconds) || changed
	if !changed || f.animating {
		return nil
	}
	f.animating = true
	return f.frame()
}

func (f *AnimatedFace) frame() tea.Cmd {
	id := f.id
	return tea.Tick(time.Second/animFPS, func(time.Time) tea.Msg {
		return FrameMsg{FaceID: id}
	})
}

func (f *AnimatedFace) Update(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.FaceID != f.id || !f.animating {
		return nil
	}

	for _, b := range []*digitBox{&f.minutes, &f.seconds} {
		if b.settled() {
			b.scale, b.velocity = 1, 0
			continue
		}
		b.scale, b.velocity = f.spring.Update(b.scale, b.velocity, 1.0)
	}

	if f.minutes.settled() && f.seconds.settled() {
		f.minutes.scale, f.seconds.scale = 1, 1
		f.minutes.velocity, f.seconds.velocity = 0, 0
		f.animating = false
		return nil
	}
	return f.frame()
}

func (f *AnimatedFace) renderBox(text string, b digitBox) string {
	t := b.scale
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	fg := f.fadeFrom.BlendLab(f.fadeTo, t).Clamped().Hex()

	// the box grows from no padding to full padding as it scales in
	pad := int(t*2 + 0.5)
	return styles.DigitBoxStyle.
		Padding(0, pad).
		Render(styles.DigitStyle.Foreground(lipgloss.Color(fg)).Render(text))
}

func (f *AnimatedFace) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		f.renderBox(strconv.Itoa(f.minutes.value), f.minutes),
		styles.ColonStyle.Render(":"),
		f.renderBox(padSeconds(f.seconds.value), f.seconds),
	)
}
