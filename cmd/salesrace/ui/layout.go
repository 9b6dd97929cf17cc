// Package ui layout constants for consistent spacing and dimensions
package ui

import (
	"math"

	"salesrace/internal/config"
	"salesrace/internal/race"
)

const (
	// Panel borders and spacing
	PanelBorderWidth = 1
	PanelPaddingH    = 1
	PanelPaddingV    = 0
	CardGap          = 1

	// Lane decorations: start flag + rail, finish rail + flag
	LaneStartWidth  = 2
	LaneFinishWidth = 2

	// Responsive breakpoints, mirroring a 1/2/3 column card grid
	MinimumTerminalWidth = 60
	TwoColumnWidth       = 80
	FullFeaturesWidth    = 120

	// Used before the first WindowSizeMsg arrives
	DefaultTerminalWidth  = 100
	DefaultTerminalHeight = 40
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	// FixedTrack is a configured lane length; 0 fits the terminal.
	FixedTrack int
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height, fixedTrack int) LayoutConfig {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	if height <= 0 {
		height = DefaultTerminalHeight
	}
	return LayoutConfig{TerminalWidth: width, TerminalHeight: height, FixedTrack: fixedTrack}
}

// ContentWidth returns the usable width inside a bordered panel.
func (l LayoutConfig) ContentWidth() int {
	return max(l.TerminalWidth-2*(PanelBorderWidth+PanelPaddingH), MinimumTerminalWidth-2*(PanelBorderWidth+PanelPaddingH))
}

// TrackWidth is the lane length in cells, not counting the start and finish
// decorations or the overtime extension.
func (l LayoutConfig) TrackWidth() int {
	if l.FixedTrack > 0 {
		return l.FixedTrack
	}
	avail := float64(l.ContentWidth() - LaneStartWidth - LaneFinishWidth)
	w := int(math.Floor(avail / (1 + race.MaxOvertimePercent/100)))
	return min(max(w, config.MinTrackWidth), config.MaxTrackWidth)
}

// OvertimeWidth is the extension drawn past the finish line, in cells.
func OvertimeWidth(track int) int {
	return int(math.Round(race.MaxOvertimePercent / 100 * float64(track)))
}

// LaneWidth is the full printed width of one lane.
func LaneWidth(track int) int {
	return LaneStartWidth + track + LaneFinishWidth + OvertimeWidth(track)
}

// CardColumns returns how many competitor cards fit per row.
func (l LayoutConfig) CardColumns() int {
	switch {
	case l.TerminalWidth >= FullFeaturesWidth:
		return 3
	case l.TerminalWidth >= TwoColumnWidth:
		return 2
	default:
		return 1
	}
}

// CardWidth returns the outer width of one card.
func (l LayoutConfig) CardWidth() int {
	cols := l.CardColumns()
	return (l.ContentWidth() - CardGap*(cols-1)) / cols
}
