package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"salesrace/internal/race"
)

// FieldEditor is an in-progress edit rendered in place of a card field.
type FieldEditor struct {
	ID    int
	Field race.Field
	View  string
}

// Board bundles what every panel renders from.
type Board struct {
	State    race.State
	Styles   Styles
	Layout   LayoutConfig
	Currency string

	// Selected is the focused competitor id, 0 for none.
	Selected int
	// Editing replaces one card field with a live input.
	Editing *FieldEditor
	// TargetInput replaces the target readout while the target is edited.
	TargetInput string
}

func (b Board) money(v float64) string {
	return race.Money(b.Currency, v)
}

// withCurrency prefixes s with the currency symbol, if one is set.
func (b Board) withCurrency(s string) string {
	if b.Currency == "" {
		return s
	}
	return b.Currency + " " + s
}

// Render stacks every panel, top to bottom.
func Render(b Board) string {
	parts := []string{
		Header(b),
		ConfigPanel(b),
	}
	if banner := WinnerBanner(b); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts,
		TrackPanel(b),
		EditorGrid(b),
		Leaderboard(b),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Header renders the title and the race status line.
func Header(b Board) string {
	status := b.Styles.Muted.Render("waiting for the start")
	if b.State.Started {
		status = b.Styles.Success.Render("race in progress")
	}
	title := b.Styles.Header.Render("🏁 Sales Race")
	sub := b.Styles.Subtitle.Render("Sales competition")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", sub, "  ", status)
}

// panel wraps body in the bordered panel style at the layout's width.
func (b Board) panel(title, body string) string {
	inner := b.Styles.Title.Render(title) + "\n" + body
	return b.Styles.Panel.Width(b.Layout.ContentWidth() + 2*PanelPaddingH).Render(inner)
}

// spread places left and right at opposite ends of width cells.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
