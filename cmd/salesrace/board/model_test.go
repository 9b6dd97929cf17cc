package board

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"salesrace/internal/config"
	"salesrace/internal/race"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press feeds keys to m in order, dropping commands.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newModel(seed ...race.Competitor) Model {
	store := race.NewStore(race.WithRoster(seed))
	return New(store, Options{Currency: "R$", Theme: config.ThemeLight})
}

func values(st race.State) []float64 {
	out := make([]float64, len(st.Competitors))
	for i, c := range st.Competitors {
		out[i] = c.Value
	}
	return out
}

func TestNew_SelectsFirst(t *testing.T) {
	m := newModel(race.Competitor{Name: "Alfredo"}, race.Competitor{Name: "Bia"})
	assert.Equal(t, 1, m.Selected())
	assert.Contains(t, m.View(), "Sales Race")

	empty := newModel()
	assert.Zero(t, empty.Selected())
}

func TestAddSelectsNewCompetitor(t *testing.T) {
	m := newModel(race.Competitor{Name: "Alfredo"})
	m = press(t, m, "a")

	st := m.State()
	require.Len(t, st.Competitors, 2)
	assert.Equal(t, 2, m.Selected())
	assert.Equal(t, "Competitor 2", st.Competitors[1].Name)
}

func TestAddStopsAtMax(t *testing.T) {
	m := newModel()
	for i := 0; i < race.MaxCompetitors+3; i++ {
		m = press(t, m, "a")
	}
	assert.Len(t, m.State().Competitors, race.MaxCompetitors)
	assert.Equal(t, "The track is full.", m.status)
}

func TestSelectionWraps(t *testing.T) {
	m := newModel(race.Competitor{Name: "A"}, race.Competitor{Name: "B"}, race.Competitor{Name: "C"})
	m = press(t, m, "down", "j")
	assert.Equal(t, 3, m.Selected())
	m = press(t, m, "down")
	assert.Equal(t, 1, m.Selected())
	m = press(t, m, "up")
	assert.Equal(t, 3, m.Selected())
}

func TestValueEdit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain", "1500", 1500},
		{"trailing junk", "12abc", 12},
		{"negative", "-50", 0},
		{"garbage", "abc", 0},
		{"decimal", "99.5", 99.5},
		{"over range", "1e400", race.MaxValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(race.Competitor{Name: "Ana", Value: 10})
			m = press(t, m, "v", tt.input, "enter")
			assert.Equal(t, []float64{tt.want}, values(m.State()))
			assert.Equal(t, editNone, m.mode)
		})
	}
}

func TestValueEdit_EmptyKeepsValue(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana", Value: 10})
	m = press(t, m, "v", "enter")
	assert.Equal(t, []float64{10}, values(m.State()))
}

func TestValueEdit_WinsAndStarts(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana"}, race.Competitor{Name: "Bia"})
	assert.False(t, m.State().Started)

	m = press(t, m, "v", "1000", "enter")
	st := m.State()
	assert.True(t, st.Started)
	require.NotNil(t, st.Winner)
	assert.Equal(t, "Ana", st.Winner.Name)
	assert.Contains(t, m.View(), "WINNER!")

	// A bigger qualifier later does not take the title.
	m = press(t, m, "down", "v", "5000", "enter")
	assert.Equal(t, 1, m.State().Winner.ID)
}

func TestEscCancels(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana", Value: 10})
	m = press(t, m, "v", "999", "esc")
	assert.Equal(t, []float64{10}, values(m.State()))
	assert.Equal(t, editNone, m.mode)
}

func TestRename_TypingQDoesNotQuit(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana"})
	m = press(t, m, "n", "q", "enter")
	assert.Equal(t, "Anaq", m.State().Competitors[0].Name)
}

func TestTargetEdit(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"5000", 5000},
		{"0", 1},
		{"-10", 1},
		{"abc", 1},
		{"20000000", 10_000_000},
		{"1e400", 10_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := newModel()
			m = press(t, m, "t", tt.input, "enter")
			assert.Equal(t, tt.want, m.State().Target)
		})
	}
}

func TestQuickTargetsAndNudges(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana", Value: 1200})
	require.NotNil(t, m.State().Winner)

	m = press(t, m, "4")
	assert.Equal(t, 50_000.0, m.State().Target)
	assert.Nil(t, m.State().Winner)

	m = press(t, m, "8", "]")
	assert.Equal(t, 1_001_000.0, m.State().Target)

	m = press(t, m, "1", "[")
	assert.Equal(t, race.MinTarget, m.State().Target)
}

func TestValueNudge(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana", Value: 50})
	m = press(t, m, "+", "+")
	assert.Equal(t, []float64{250}, values(m.State()))
	m = press(t, m, "-", "-", "-", "-")
	assert.Equal(t, []float64{0}, values(m.State()))
}

func TestRemoveSelectsNeighbour(t *testing.T) {
	m := newModel(race.Competitor{Name: "A"}, race.Competitor{Name: "B"}, race.Competitor{Name: "C"})
	m = press(t, m, "down", "down", "x")
	assert.Equal(t, 2, m.Selected())
	m = press(t, m, "delete", "x")
	assert.Zero(t, m.Selected())
	assert.Empty(t, m.State().Competitors)

	// Nothing selected: edits are refused.
	m = press(t, m, "v")
	assert.Equal(t, editNone, m.mode)
	assert.Equal(t, "Select a competitor first.", m.status)
}

func TestReset(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana", Value: 1500}, race.Competitor{Name: "Bia", Value: 300})
	m = press(t, m, "2", "r")

	st := m.State()
	assert.Equal(t, []float64{0, 0}, values(st))
	assert.Equal(t, race.DefaultTarget, st.Target)
	assert.Nil(t, st.Winner)
	assert.False(t, st.Started)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newModel()
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k)
	}

	m := press(t, newModel(race.Competitor{Name: "Ana"}), "n")
	_, cmd := m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestHelpToggle(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana"})
	m = press(t, m, "?")
	assert.True(t, m.showHelp)

	// Board commands are ignored while help is shown.
	m = press(t, m, "a")
	assert.Len(t, m.State().Competitors, 1)

	m = press(t, m, "?")
	assert.False(t, m.showHelp)
}

func TestWindowSize(t *testing.T) {
	m := newModel(race.Competitor{Name: "Ana"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	m = next.(Model)
	assert.Equal(t, 140, m.layout.TerminalWidth)
	assert.Equal(t, 48, m.viewport.Height)
	assert.Equal(t, 3, m.layout.CardColumns())
}
