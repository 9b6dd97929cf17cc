package ui

import (
	"strings"

	"salesrace/internal/race"
)

// WinnerBanner renders the winner announcement, or "" when nobody has won.
// A millionaire winner gets the escalated treatment.
func WinnerBanner(b Board) string {
	w := b.State.Winner
	if w == nil {
		return ""
	}
	million := w.Value >= race.MillionValue

	lines := []string{"🏆 🎉 WINNER! 🎉"}
	if million {
		lines = append(lines, "💰👑 MILLIONAIRE! 👑💰")
	}
	lines = append(lines, w.Name+" • "+b.money(w.Value))
	if million {
		lines = append(lines, race.FormatValue(w.Value)+" in sales! 🚀")
	}

	style := b.Styles.Banner
	if million {
		style = b.Styles.BannerMillion
	}
	width := b.Layout.ContentWidth() + 2*PanelPaddingH
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
