package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/pomo/internal/adapter"
	"github.com/mmcdole/pomo/internal/domain"
	"github.com/mmcdole/pomo/internal/pomodoro"
	"github.com/mmcdole/pomo/internal/service"
	"github.com/mmcdole/pomo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, variant adapter.Variant) Model {
	t.Helper()
	m := NewModel(Options{
		Variant: variant,
		Start:   domain.DefaultSettings,
		Logger:  adapter.NullLogger(),
	})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// tick delivers the live tick of the focused widget
func tick(t *testing.T, m Model) Model {
	t.Helper()
	w := m.Focused()
	m, _ = update(t, m, ClockTickMsg{WidgetID: w.ID, Gen: w.gen})
	return m
}

func TestNewModel_Variants(t *testing.T) {
	tests := []struct {
		variant adapter.Variant
		names   []string
	}{
		{adapter.VariantPlain, []string{"plain"}},
		{adapter.VariantAnimated, []string{"animated"}},
		{adapter.VariantBoth, []string{"plain", "animated"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			m := newTestModel(t, tt.variant)
			require.Len(t, m.Widgets, len(tt.names))
			for i, w := range m.Widgets {
				assert.Equal(t, tt.names[i], w.Name())
				assert.Same(t, m.Counters, w.Machine.Counters())
			}
		})
	}
}

func TestToggle_StartsAndTicks(t *testing.T) {
	m := newTestModel(t, adapter.VariantPlain)

	m, cmd := update(t, m, keySpace)
	require.NotNil(t, cmd, "starting schedules a tick")
	assert.True(t, m.Focused().Machine.Active())
	assert.Equal(t, "25:00", m.Focused().Machine.Display())

	m = tick(t, m)
	assert.Equal(t, "24:59", m.Focused().Machine.Display())
}

func TestPause_CancelsSchedule(t *testing.T) {
	m := newTestModel(t, adapter.VariantPlain)
	w := m.Focused()

	m, _ = update(t, m, keySpace)
	staleGen := w.gen
	m, cmd := update(t, m, keySpace)
	assert.Nil(t, cmd)
	assert.False(t, w.Machine.Active())

	m, cmd = update(t, m, ClockTickMsg{WidgetID: w.ID, Gen: staleGen})
	assert.Nil(t, cmd)
	assert.Equal(t, "25:00", w.Machine.Display())

	// restarting opens a new schedule; the old one stays dead
	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, ClockTickMsg{WidgetID: w.ID, Gen: staleGen})
	assert.Equal(t, "25:00", w.Machine.Display())
	tick(t, m)
	assert.Equal(t, "24:59", w.Machine.Display())
}

func TestReset_StopsAndZeroes(t *testing.T) {
	m := newTestModel(t, adapter.VariantPlain)
	w := m.Focused()
	w.Configure(domain.Settings{Minutes: 0, Seconds: 1})

	m, _ = update(t, m, keySpace)
	m = tick(t, m)
	require.Equal(t, 1, m.Counters.Round())
	liveGen := w.gen

	m, _ = update(t, m, runes("r"))

	assert.False(t, w.Machine.Active())
	assert.Equal(t, 0, m.Counters.Round())
	assert.Equal(t, "0:01", w.Machine.Display())

	m, _ = update(t, m, ClockTickMsg{WidgetID: w.ID, Gen: liveGen})
	assert.Equal(t, "0:01", w.Machine.Display(), "tick from before reset is dropped")
}

func TestTicksOnlyReachTheirWidget(t *testing.T) {
	m := newTestModel(t, adapter.VariantBoth)
	plain, animated := m.Widgets[0], m.Widgets[1]

	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, ClockTickMsg{WidgetID: plain.ID, Gen: plain.gen})

	assert.Equal(t, "24:59", plain.Machine.Display())
	assert.Equal(t, "25:00", animated.Machine.Display())
}

func TestSharedCountersAcrossVariants(t *testing.T) {
	m := newTestModel(t, adapter.VariantBoth)
	plain, animated := m.Widgets[0], m.Widgets[1]
	plain.Configure(domain.Settings{Seconds: 1})
	animated.Configure(domain.Settings{Seconds: 1})

	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, keySpace)
	require.Equal(t, 1, m.Focus)

	m, _ = update(t, m, ClockTickMsg{WidgetID: plain.ID, Gen: plain.gen})
	m, _ = update(t, m, ClockTickMsg{WidgetID: animated.ID, Gen: animated.gen})

	assert.Equal(t, 2, m.Counters.Round())
	assert.Contains(t, plain.View(false), "Round: 2 / 4")
	assert.Contains(t, animated.View(true), "Round: 2 / 4")

	// reset from one widget zeroes what the other shows
	m, _ = update(t, m, runes("r"))
	assert.Contains(t, plain.View(false), "Round: 0 / 4")
	assert.True(t, plain.Machine.Active(), "reset only stops the focused clock")
}

func TestSettings_ApplyValid(t *testing.T) {
	m := newTestModel(t, adapter.VariantPlain)

	m, _ = update(t, m, runes("s"))
	require.True(t, m.Settings.IsVisible())
	m.Settings.SetValues("0", "2")
	m, _ = update(t, m, keyEnter)

	w := m.Focused()
	assert.Equal(t, "0:02", w.Machine.Display())
	assert.False(t, m.StatusIsErr)

	m, _ = update(t, m, keyEsc)
	require.False(t, m.Settings.IsVisible())
	m, _ = update(t, m, keySpace)
	m = tick(t, m)
	m = tick(t, m)

	assert.Equal(t, 1, m.Counters.Round())
	assert.Equal(t, "0:02", w.Machine.Display())
}

func TestSettings_RejectedLeavesStateAlone(t *testing.T) {
	m := newTestModel(t, adapter.VariantPlain)
	w := m.Focused()

	m, _ = update(t, m, runes("s"))
	m.Settings.SetValues("", "1a")
	m, _ = update(t, m, keyEnter)

	assert.Equal(t, "25:00", w.Machine.Display())
	assert.Equal(t, domain.DefaultSettings, w.Machine.Start())
	assert.Equal(t, domain.ErrFieldRequired, m.Settings.FieldError(domain.FieldMinutes))
	assert.Equal(t, domain.ErrFieldNotDigits, m.Settings.FieldError(domain.FieldSeconds))
	assert.True(t, m.StatusIsErr)
	assert.True(t, m.Settings.IsVisible())

	m.Settings.SetValues("5", "1a")
	m, _ = update(t, m, keyEnter)
	assert.Nil(t, m.Settings.FieldError(domain.FieldMinutes))
	assert.Equal(t, domain.ErrFieldNotDigits, m.Settings.FieldError(domain.FieldSeconds))
	assert.Equal(t, "25:00", w.Machine.Display())
}

func TestSettings_KeysGoToPanel(t *testing.T) {
	m := newTestModel(t, adapter.VariantPlain)
	m, _ = update(t, m, runes("s"))

	m, _ = update(t, m, runes("r"))

	assert.False(t, m.Focused().Machine.Active())
	minutes, _ := m.Settings.Values()
	assert.Equal(t, "25r", minutes, "keys are typed, not treated as controls")
}

func TestQuit_UnmountsWidgets(t *testing.T) {
	m := newTestModel(t, adapter.VariantBoth)
	m, _ = update(t, m, keySpace)
	w := m.Focused()
	gen := w.gen

	_, cmd := update(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, w.Machine.Active())
	assert.NotEqual(t, gen, w.gen)
}

func TestCycleCompletion_RecordsToJournal(t *testing.T) {
	journal, err := store.NewJournalStore("")
	require.NoError(t, err)
	defer journal.Close()
	svc := service.NewSessionService(journal, adapter.NullLogger())

	m := NewModel(Options{
		Variant: adapter.VariantPlain,
		Start:   domain.Settings{Seconds: 1},
		Session: svc,
		Logger:  adapter.NullLogger(),
	})
	m, _ = update(t, m, keySpace)
	w := m.Focused()

	res := w.Machine.Tick()
	require.Equal(t, pomodoro.TickCycleComplete, res.Kind)

	msg := RecordCycleCmd(svc, w.CycleRecord(res))()
	require.IsType(t, CycleRecordedMsg{}, msg)
	assert.Equal(t, 1, msg.(CycleRecordedMsg).TodayCount)

	m, _ = update(t, m, msg)
	assert.Equal(t, 1, m.TodayCount)

	recs, err := svc.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "plain", recs[0].Widget)
	assert.Equal(t, 1, recs[0].Round)
	assert.Equal(t, domain.Settings{Seconds: 1}, recs[0].Start)
}

func TestErrMsg_ShowsStatus(t *testing.T) {
	m := newTestModel(t, adapter.VariantPlain)

	m, cmd := update(t, m, ErrMsg{Err: domain.ErrJournalClosed, Context: "saving cycle"})

	assert.NotNil(t, cmd)
	assert.True(t, m.StatusIsErr)
	assert.Equal(t, "saving cycle: cycle journal is closed", m.StatusMsg)

	m, _ = update(t, m, ClearStatusMsg{})
	assert.Empty(t, m.StatusMsg)
}

func TestView_ShowsCountersAndControls(t *testing.T) {
	m := newTestModel(t, adapter.VariantBoth)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Round: 0 / 4")
	assert.Contains(t, view, "Goal: 0 / 12")
	assert.Contains(t, view, "plain")
	assert.Contains(t, view, "animated")
	assert.Contains(t, view, "▶")

	m, _ = update(t, m, keySpace)
	assert.Contains(t, m.View(), "⏸")
}

func TestArrangeWidgets_StacksWhenNarrow(t *testing.T) {
	a := "aaaa\naaaa"
	b := "bbbb\nbbbb"

	wide := arrangeWidgets([]string{a, b}, 80)
	narrow := arrangeWidgets([]string{a, b}, 6)

	assert.Equal(t, 2, len(splitLines(wide)))
	assert.Equal(t, 4, len(splitLines(narrow)))
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
