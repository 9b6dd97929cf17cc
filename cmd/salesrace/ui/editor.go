package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"salesrace/internal/race"
)

// EditorGrid renders one card per competitor, wrapped into rows.
func EditorGrid(b Board) string {
	s := b.Styles
	count := len(b.State.Competitors)

	add := s.Button.Render("a + Add")
	if !b.State.CanAdd() {
		add = s.Disabled.Render("a + Add (full)")
	}
	title := spread(fmt.Sprintf("👥 Competitors (%d/%d)", count, race.MaxCompetitors), add, b.Layout.ContentWidth())

	if count == 0 {
		return b.panel(title, s.Muted.Render("The track is empty."))
	}

	cols := b.Layout.CardColumns()
	width := b.Layout.CardWidth()
	var rows []string
	for start := 0; start < count; start += cols {
		end := min(start+cols, count)
		cards := make([]string, 0, 2*(end-start))
		for i, c := range b.State.Competitors[start:end] {
			if i > 0 {
				cards = append(cards, strings.Repeat(" ", CardGap))
			}
			cards = append(cards, b.card(c, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return b.panel(title, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// card renders the editor card for c at the given outer width.
func (b Board) card(c race.Competitor, width int) string {
	s := b.Styles
	selected := c.ID == b.Selected
	inner := width - 2*(PanelBorderWidth+PanelPaddingH)

	head := spread(Swatch(c.Color)+" "+s.Bold.Render(fmt.Sprintf("Car #%d", c.ID)), s.Error.Render("x ✕"), inner)

	name := c.Name
	if name == "" {
		name = s.Muted.Render("(no name)")
	}
	value := b.money(c.Value)
	if e := b.Editing; e != nil && e.ID == c.ID {
		switch e.Field {
		case race.FieldName:
			name = e.View
		case race.FieldValue:
			value = e.View
		}
	}

	lines := []string{
		head,
		s.Muted.Render("Seller name:"),
		name,
		s.Muted.Render("💰 Value:"),
		value,
		s.RenderDivider(inner),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.Bold.Render(b.money(c.Value))),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center,
			s.Muted.Render(race.FormatPercent(race.Progress(c, b.State.Target))+" of target")),
	}

	style := s.Card
	if selected {
		style = s.CardSelected
	}
	return style.Width(width - 2*PanelBorderWidth).Render(strings.Join(lines, "\n"))
}
