package ui

import (
	"github.com/charmbracelet/lipgloss"

	"salesrace/internal/race"
)

// Leaderboard ranks competitors by value with medals for the podium.
func Leaderboard(b Board) string {
	standings := race.Standings(b.State.Competitors)
	if len(standings) == 0 {
		return b.panel("🏆 Ranking", b.Styles.Muted.Render("Nobody is racing."))
	}

	t := NewSimpleTable("#", "", "Seller", "Sales", "Target")
	t.AlignRight[3] = true
	t.AlignRight[4] = true
	t.RowStyle = func(i int) lipgloss.Style { return placeStyle(b.Styles, i+1) }
	for _, st := range standings {
		c := st.Competitor
		t.AddRow(
			race.Medal(st.Place),
			Swatch(c.Color),
			c.Name,
			b.money(c.Value),
			race.FormatPercent(race.Progress(c, b.State.Target)),
		)
	}
	return b.panel("🏆 Ranking", t.View(b.Styles))
}

func placeStyle(s Styles, place int) lipgloss.Style {
	switch place {
	case 1:
		return s.RowGold
	case 2:
		return s.RowSilver
	case 3:
		return s.RowBronze
	default:
		return s.Row
	}
}
