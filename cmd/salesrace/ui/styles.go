// Package ui renders the sales race board: configuration panel, winner
// banner, track, competitor cards and leaderboard. Every panel is a pure
// function of a race.State snapshot.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"salesrace/internal/config"
)

// Color palette
var (
	// Light Mode Colors
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1e1b4b") // indigo-950
	LightPrimary    = lipgloss.Color("#3730a3") // indigo-800
	LightAccent     = lipgloss.Color("#2563eb") // blue-600
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#c7d2fe")
	LightCard       = lipgloss.Color("#ffffff")
	LightTrack      = lipgloss.Color("#d1d5db")

	// Dark Mode Colors, after the purple/blue/indigo gradient of the board
	DarkBackground = lipgloss.Color("#1e1b4b")
	DarkForeground = lipgloss.Color("#f8fafc")
	DarkPrimary    = lipgloss.Color("#bfdbfe") // blue-200
	DarkAccent     = lipgloss.Color("#3b82f6") // blue-500
	DarkMuted      = lipgloss.Color("#93c5fd") // blue-300
	DarkBorder     = lipgloss.Color("#4c1d95") // purple-900
	DarkCard       = lipgloss.Color("#312e81")
	DarkTrack      = lipgloss.Color("#1f2937") // gray-800

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#ef4444") // red-500
	Success     = lipgloss.Color("#4ade80") // green-400
	Warning     = lipgloss.Color("#facc15") // yellow-400
	Orange      = lipgloss.Color("#fb923c") // orange-400
	Overtime    = lipgloss.Color("#a855f7") // purple-500
	Pink        = lipgloss.Color("#ec4899") // pink-500
	Gold        = lipgloss.Color("#eab308")
	Silver      = lipgloss.Color("#9ca3af")
	Bronze      = lipgloss.Color("#ea580c")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	Track      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		Track:      LightTrack,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		Track:      DarkTrack,
		IsDark:     true,
	}
}

// ThemeFor resolves a configured theme. Auto inspects COLORFGBG, whose format
// is "foreground;background": a background index of 0-6 or 8 is dark.
func ThemeFor(t config.Theme) Theme {
	switch t {
	case config.ThemeDark:
		return DarkTheme()
	case config.ThemeLight:
		return LightTheme()
	}
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
	Panel  lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Orange  lipgloss.Style
	Purple  lipgloss.Style

	// Config panel
	QuickTarget       lipgloss.Style
	QuickTargetActive lipgloss.Style
	Input             lipgloss.Style

	// Banner
	Banner        lipgloss.Style
	BannerMillion lipgloss.Style

	// Track
	TrackEmpty lipgloss.Style
	TrackFill  lipgloss.Style
	TrackOver  lipgloss.Style
	Start      lipgloss.Style
	Finish     lipgloss.Style
	Marker75   lipgloss.Style
	Marker90   lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Button       lipgloss.Style
	Disabled     lipgloss.Style

	// Leaderboard rows
	RowGold   lipgloss.Style
	RowSilver lipgloss.Style
	RowBronze lipgloss.Style
	Row       lipgloss.Style

	Divider lipgloss.Style
	Badge   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(PanelPaddingV, PanelPaddingH),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(Warning).Bold(true),
		Orange:  lipgloss.NewStyle().Foreground(Orange).Bold(true),
		Purple:  lipgloss.NewStyle().Foreground(Overtime).Bold(true),

		QuickTarget: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		QuickTargetActive: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1).
			Bold(true),

		Banner: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Warning).
			Foreground(Orange).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 2),

		BannerMillion: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Destructive).
			Foreground(Warning).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 2),

		TrackEmpty: lipgloss.NewStyle().Foreground(theme.Track),
		TrackFill:  lipgloss.NewStyle().Foreground(Success),
		TrackOver:  lipgloss.NewStyle().Foreground(Pink),
		Start:      lipgloss.NewStyle().Foreground(theme.Foreground).Bold(true),
		Finish:     lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Marker75:   lipgloss.NewStyle().Foreground(Warning),
		Marker90:   lipgloss.NewStyle().Foreground(Orange),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Background(Success).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),

		Disabled: lipgloss.NewStyle().
			Background(Silver).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),

		RowGold:   lipgloss.NewStyle().Foreground(Gold).Bold(true),
		RowSilver: lipgloss.NewStyle().Foreground(Silver).Bold(true),
		RowBronze: lipgloss.NewStyle().Foreground(Bronze).Bold(true),
		Row:       lipgloss.NewStyle().Foreground(theme.Foreground),

		Divider: lipgloss.NewStyle().Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(Warning).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultStyles returns styles for the auto-detected theme
func DefaultStyles() Styles {
	return NewStyles(ThemeFor(config.ThemeAuto))
}

// Swatch renders a colour chip for a competitor.
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
