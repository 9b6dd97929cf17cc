package ui

import (
	"fmt"
	"strings"

	"salesrace/internal/race"
)

// QuickTargetKey is the key that selects QuickTargets[i].
func QuickTargetKey(i int) string {
	return fmt.Sprintf("%d", i+1)
}

// ConfigPanel renders the target readout or input, the quick-target row,
// and the current-target summary.
func ConfigPanel(b Board) string {
	s := b.Styles
	target := b.State.Target

	var sb strings.Builder
	if b.TargetInput != "" {
		sb.WriteString(s.Input.Render(b.TargetInput))
	} else {
		sb.WriteString(s.Input.Render(b.money(target)))
		sb.WriteString("  ")
		sb.WriteString(s.Muted.Render("t edit · [ ] ±" + race.FormatAmount(race.TargetStep)))
	}
	sb.WriteString("\n")

	buttons := make([]string, len(race.QuickTargets))
	for i, v := range race.QuickTargets {
		label := QuickTargetKey(i) + ":" + race.FormatThreshold(v)
		if v == target {
			buttons[i] = s.QuickTargetActive.Render(label)
		} else {
			buttons[i] = s.QuickTarget.Render(label)
		}
	}
	sb.WriteString(strings.Join(buttons, " "))
	sb.WriteString("\n")

	summary := "Current target: " + b.money(target)
	if target >= race.MillionValue {
		summary += "  " + s.Warning.Render("💰 "+race.FormatValue(target))
	}
	sb.WriteString(s.Body.Render(summary))

	title := "🎯 Race target"
	if b.Currency != "" {
		title += fmt.Sprintf(" (%s)", b.Currency)
	}
	return b.panel(title, sb.String())
}
