package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// HelpMarkdown documents the board's key bindings.
const HelpMarkdown = `# Sales Race keys

| Key | Action |
| --- | --- |
| ↑ ↓ ← → / k j | select a competitor |
| a | add a competitor (max 20) |
| x / delete | remove the selected competitor |
| enter / n | rename the selected competitor |
| v | type a value for the selected competitor |
| + / - | nudge the selected value by 100 |
| t | type a new target |
| [ / ] | nudge the target by 1000 |
| 1 … 8 | quick targets 1k 5k 10k 50k 100k 250k 500k 1M |
| r | reset values, target and winner |
| pgup / pgdown | scroll the board |
| ? | toggle this help |
| q / ctrl+c | quit |

While typing, **enter** commits and **esc** cancels. Targets are clamped
to 1 … 10.000.000 and values to 0 or more.
`

// RenderHelp renders HelpMarkdown for a terminal of the given width.
func RenderHelp(width int, dark bool) (string, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 40)),
	)
	if err != nil {
		return "", fmt.Errorf("help renderer: %w", err)
	}
	out, err := r.Render(HelpMarkdown)
	if err != nil {
		return "", fmt.Errorf("render help: %w", err)
	}
	return out, nil
}
