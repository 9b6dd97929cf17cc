package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"salesrace/internal/race"
)

// Lane glyphs. Every glyph is one cell wide so lanes line up.
const (
	glyphCar      = "▶"
	glyphWinner   = "★"
	glyphFill     = "━"
	glyphEmpty    = "·"
	glyphMarker   = "┊"
	glyphStart    = "⚐"
	glyphRail     = "│"
	glyphFinish   = "┃"
	glyphFlag     = "⚑"
	glyphOvertime = "━"
)

// TrackPanel renders one lane plus an info line per competitor.
func TrackPanel(b Board) string {
	track := b.Layout.TrackWidth()
	title := spread("🏁 Race track", "🎯 Target: "+b.targetLabel(), LaneWidth(track))

	if len(b.State.Competitors) == 0 {
		return b.panel(title, b.Styles.Muted.Render("No competitors yet. Press a to add one."))
	}

	lanes := race.Lanes(b.State, float64(track))
	rows := make([]string, 0, 2*len(lanes))
	for _, l := range lanes {
		rows = append(rows, RenderLane(b.Styles, l, track), b.laneInfo(l, LaneWidth(track)))
	}
	return b.panel(title, strings.Join(rows, "\n"))
}

// targetLabel compacts targets of a million or more.
func (b Board) targetLabel() string {
	if b.State.Target >= race.MillionValue {
		return b.withCurrency(race.FormatValue(b.State.Target))
	}
	return b.money(b.State.Target)
}

// CarCell returns the in-bounds cell index the car occupies on a lane of
// track cells: 0 at the start, track-1 on the finish line.
func CarCell(l race.Lane, track int) int {
	idx := int(math.Round(l.Position)) - 1
	return min(max(idx, 0), track-1)
}

// OvertimeCells returns how many extension cells an out-of-bounds car covers.
func OvertimeCells(l race.Lane, track int) int {
	if l.InBounds {
		return 0
	}
	n := int(math.Round(l.Overtime / 100 * float64(track)))
	return min(max(n, 1), OvertimeWidth(track))
}

// RenderLane draws start, body, finish and overtime extension for one lane.
func RenderLane(s Styles, l race.Lane, track int) string {
	car := carStyle(l).Render(carGlyph(l))

	body := make([]string, track)
	filled := int(math.Round(l.ProgressCapped / 100 * float64(track)))
	for i := range body {
		if i < filled {
			body[i] = s.TrackFill.Render(glyphFill)
		} else {
			body[i] = s.TrackEmpty.Render(glyphEmpty)
		}
	}
	if l.Marker75 {
		body[markerCell(race.MarkerThreeQuarters, track)] = s.Marker75.Render(glyphMarker)
	}
	if l.Marker90 {
		body[markerCell(race.MarkerAlmost, track)] = s.Marker90.Render(glyphMarker)
	}
	if l.InBounds {
		body[CarCell(l, track)] = car
	}

	ext := make([]string, OvertimeWidth(track))
	for i := range ext {
		ext[i] = " "
	}
	if n := OvertimeCells(l, track); n > 0 {
		for i := 0; i < n-1; i++ {
			ext[i] = s.TrackOver.Render(glyphOvertime)
		}
		ext[n-1] = car
	}

	var sb strings.Builder
	sb.WriteString(s.Start.Render(glyphStart + glyphRail))
	sb.WriteString(strings.Join(body, ""))
	sb.WriteString(s.Finish.Render(glyphFinish + glyphFlag))
	sb.WriteString(strings.Join(ext, ""))
	return sb.String()
}

func markerCell(percent float64, track int) int {
	return min(int(percent/100*float64(track)), track-1)
}

func carGlyph(l race.Lane) string {
	if l.IsWinner {
		return glyphWinner
	}
	return glyphCar
}

// carStyle rings the car once it reaches the goal: yellow at 100%, purple at 120%.
func carStyle(l race.Lane) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(l.Competitor.Color)).Bold(true)
	switch {
	case l.Progress >= race.ExceededPercent:
		st = st.Background(Overtime)
	case l.Progress >= race.GoalPercent:
		st = st.Background(Warning)
	}
	return st
}

// laneInfo renders the swatch, name and tags on the left and value and
// percentage on the right.
func (b Board) laneInfo(l race.Lane, width int) string {
	s := b.Styles
	left := Swatch(l.Competitor.Color) + " " + s.Bold.Render(l.Competitor.Name)
	if l.IsWinner {
		left += " " + s.Badge.Render("WINNER")
	}
	for _, t := range l.Tags {
		left += " " + tagStyle(s, t).Render(t.Label())
	}

	right := b.money(l.Competitor.Value) + " (" + race.FormatPercent(l.Progress) + ")"
	if l.Progress > race.GoalPercent {
		right += " " + s.Purple.Render("+"+race.FormatPercent(l.Progress-race.GoalPercent)+" beyond target! 🚀")
	}
	return spread(left, s.Body.Render(right), width)
}

func tagStyle(s Styles, t race.Tag) lipgloss.Style {
	switch t {
	case race.TagAlmostThere:
		return s.Warning
	case race.TagGoalReached:
		return s.Success
	case race.TagExceeded:
		return s.Purple
	default:
		return s.Warning
	}
}
