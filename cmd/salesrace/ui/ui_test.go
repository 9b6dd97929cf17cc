package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesrace/internal/config"
	"salesrace/internal/race"
)

func testBoard(st race.State) Board {
	return Board{
		State:    st,
		Styles:   NewStyles(LightTheme()),
		Layout:   NewLayoutConfig(120, 40, 0),
		Currency: "R$",
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, ThemeFor(config.ThemeAuto).IsDark)
	assert.False(t, ThemeFor(config.ThemeLight).IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, ThemeFor(config.ThemeAuto).IsDark)
	assert.True(t, ThemeFor(config.ThemeDark).IsDark)
}

func TestLayout(t *testing.T) {
	l := NewLayoutConfig(120, 40, 0)
	assert.Equal(t, 3, l.CardColumns())
	assert.LessOrEqual(t, LaneWidth(l.TrackWidth()), l.ContentWidth())

	assert.Equal(t, 2, NewLayoutConfig(90, 40, 0).CardColumns())
	assert.Equal(t, 1, NewLayoutConfig(70, 40, 0).CardColumns())
	assert.Equal(t, 33, NewLayoutConfig(120, 40, 33).TrackWidth())
	assert.Equal(t, DefaultTerminalWidth, NewLayoutConfig(0, 0, 0).TerminalWidth)
}

func TestRenderLane_WidthIsConstant(t *testing.T) {
	s := NewStyles(LightTheme())
	const track = 40
	for _, v := range []float64{0, 100, 500, 760, 950, 1000, 1100, 1500, 9000} {
		st := race.State{Target: 1000}
		l := race.LaneFor(st, race.Competitor{ID: 1, Color: race.Palette[0], Value: v}, track)
		assert.Equal(t, LaneWidth(track), lipgloss.Width(RenderLane(s, l, track)), "value %v", v)
	}
}

func TestRenderLane_CarPlacement(t *testing.T) {
	s := NewStyles(LightTheme())
	const track = 40
	st := race.State{Target: 1000}

	start := RenderLane(s, race.LaneFor(st, race.Competitor{Value: 0}, track), track)
	assert.True(t, strings.HasPrefix(start, glyphStart+glyphRail+glyphCar), start)

	// Exactly on target: car sits on the last in-bounds cell, extension empty.
	atGoal := race.LaneFor(st, race.Competitor{Value: 1000}, track)
	assert.Equal(t, track-1, CarCell(atGoal, track))
	assert.Equal(t, 0, OvertimeCells(atGoal, track))
	out := RenderLane(s, atGoal, track)
	assert.Contains(t, out, glyphCar+glyphFinish+glyphFlag)

	// Past target: car rides the overtime extension.
	over := race.LaneFor(st, race.Competitor{Value: 1100}, track)
	assert.Equal(t, 2, OvertimeCells(over, track))
	out = RenderLane(s, over, track)
	assert.Contains(t, out, glyphFinish+glyphFlag+glyphOvertime+glyphCar)

	// Overshoot is capped at the extension width.
	far := race.LaneFor(st, race.Competitor{Value: 10_000}, track)
	assert.Equal(t, OvertimeWidth(track), OvertimeCells(far, track))
}

func TestRenderLane_Markers(t *testing.T) {
	s := NewStyles(LightTheme())
	st := race.State{Target: 1000}
	out := RenderLane(s, race.LaneFor(st, race.Competitor{Value: 950}, 40), 40)
	assert.Equal(t, 2, strings.Count(out, glyphMarker))

	out = RenderLane(s, race.LaneFor(st, race.Competitor{Value: 1000}, 40), 40)
	assert.Zero(t, strings.Count(out, glyphMarker))
}

func TestTrackPanel_Tags(t *testing.T) {
	st := race.State{
		Target: 1000,
		Competitors: race.Roster{
			{ID: 1, Name: "Ana", Color: race.Palette[0], Value: 950},
			{ID: 2, Name: "Bia", Color: race.Palette[1], Value: 1000},
			{ID: 3, Name: "Caio", Color: race.Palette[2], Value: 1500},
		},
		Winner: &race.Competitor{ID: 2, Name: "Bia", Value: 1000},
	}
	out := TrackPanel(testBoard(st))

	assert.Contains(t, out, "Almost there!")
	assert.Contains(t, out, "GOAL REACHED!")
	assert.Contains(t, out, "EXCEEDED!")
	assert.Contains(t, out, "+50.0% beyond target!")
	assert.Contains(t, out, "R$ 1.000 (100.0%)")
	assert.Contains(t, out, "WINNER")
	assert.Contains(t, out, glyphWinner)
}

func TestTrackPanel_Empty(t *testing.T) {
	out := TrackPanel(testBoard(race.State{Target: 1000}))
	assert.Contains(t, out, "No competitors yet")
}

func TestWinnerBanner(t *testing.T) {
	b := testBoard(race.State{Target: 1000})
	assert.Empty(t, WinnerBanner(b))

	b.State.Winner = &race.Competitor{ID: 1, Name: "Ana", Value: 1200}
	out := WinnerBanner(b)
	assert.Contains(t, out, "WINNER!")
	assert.Contains(t, out, "Ana • R$ 1.200")
	assert.NotContains(t, out, "MILLIONAIRE")

	b.State.Winner.Value = 2_500_000
	out = WinnerBanner(b)
	assert.Contains(t, out, "MILLIONAIRE!")
	assert.Contains(t, out, "2.5M in sales!")
}

func TestConfigPanel(t *testing.T) {
	b := testBoard(race.State{Target: 5000})
	out := ConfigPanel(b)
	assert.Contains(t, out, "R$ 5.000")
	for _, label := range []string{"1:1k", "2:5k", "3:10k", "4:50k", "5:100k", "6:250k", "7:500k", "8:1M"} {
		assert.Contains(t, out, label)
	}
	assert.NotContains(t, out, "💰")

	b.State.Target = 2_000_000
	assert.Contains(t, ConfigPanel(b), "💰 2.0M")

	b.TargetInput = "> 12345"
	assert.Contains(t, ConfigPanel(b), "> 12345")
}

func TestEditorGrid(t *testing.T) {
	st := race.State{
		Target:      1000,
		Competitors: race.Roster{{ID: 1, Name: "Ana", Color: race.Palette[0], Value: 250}},
	}
	b := testBoard(st)
	out := EditorGrid(b)
	assert.Contains(t, out, "Competitors (1/20)")
	assert.Contains(t, out, "Car #1")
	assert.Contains(t, out, "25.0% of target")
	assert.NotContains(t, out, "(full)")

	b.Editing = &FieldEditor{ID: 1, Field: race.FieldName, View: "> Ana Paula"}
	assert.Contains(t, EditorGrid(b), "> Ana Paula")
}

func TestEditorGrid_FullDisablesAdd(t *testing.T) {
	s := race.NewStore()
	for i := 0; i < race.MaxCompetitors; i++ {
		s.Add()
	}
	out := EditorGrid(testBoard(s.Snapshot()))
	assert.Contains(t, out, "Competitors (20/20)")
	assert.Contains(t, out, "Add (full)")
}

func TestLeaderboard_Order(t *testing.T) {
	st := race.State{
		Target: 1000,
		Competitors: race.Roster{
			{ID: 1, Name: "Ana", Value: 300},
			{ID: 2, Name: "Bia", Value: 300},
			{ID: 3, Name: "Caio", Value: 500},
			{ID: 4, Name: "Duda", Value: 10},
		},
	}
	out := Leaderboard(testBoard(st))

	caio := strings.Index(out, "Caio")
	ana := strings.Index(out, "Ana")
	bia := strings.Index(out, "Bia")
	require.True(t, caio >= 0 && ana >= 0 && bia >= 0)
	assert.Less(t, caio, ana)
	assert.Less(t, ana, bia)
	assert.Contains(t, out, "🥇")
	assert.Contains(t, out, "🥉")
	assert.Contains(t, out, "4th")
}

func TestRender_Idempotent(t *testing.T) {
	s := race.NewStore(race.WithRoster(race.Roster{{Name: "Ana", Value: 1200}, {Name: "Bia"}}))
	b := testBoard(s.Snapshot())
	first := Render(b)
	assert.Equal(t, first, Render(b))
	assert.Contains(t, first, "WINNER!")
	assert.Contains(t, first, "race in progress")
}

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Col1", "Col2")
	assert.Empty(t, table.View(DefaultStyles()))

	table.AddRow("Row1Col1", "Row1Col2")
	view := table.View(DefaultStyles())
	assert.Contains(t, view, "Col1")
	assert.Contains(t, view, "Row1Col2")
}

func TestRenderHelp(t *testing.T) {
	out, err := RenderHelp(80, true)
	require.NoError(t, err)
	assert.Contains(t, out, "reset")
}

func TestEmptyCurrencyHasNoStraySpace(t *testing.T) {
	b := testBoard(race.State{
		Target:      2_500_000,
		Competitors: race.Roster{{ID: 1, Name: "Ana", Color: race.Palette[0], Value: 10}},
	})
	b.Currency = ""

	assert.Contains(t, TrackPanel(b), "🎯 Target: 2.5M")
	assert.NotContains(t, TrackPanel(b), "Target:  2.5M")

	panel := ConfigPanel(b)
	assert.Contains(t, panel, "Race target")
	assert.NotContains(t, panel, "()")
	assert.Contains(t, panel, "Current target: 2.500.000")

	b.Currency = "US$"
	assert.Contains(t, TrackPanel(b), "🎯 Target: US$ 2.5M")
	assert.Contains(t, ConfigPanel(b), "Race target (US$)")
}
