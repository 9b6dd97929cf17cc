package race

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Input bounds and steps for the editable fields.
const (
	MinTarget  = 1.0
	MaxTarget  = 10_000_000.0
	MaxValue   = 1_000_000_000_000.0
	TargetStep = 1000.0
	ValueStep  = 100.0
)

// QuickTargets are the one-key finish lines offered by the config panel.
var QuickTargets = []float64{1_000, 5_000, 10_000, 50_000, 100_000, 250_000, 500_000, 1_000_000}

var leadingNumber = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseLeading reads the numeric prefix of s, ignoring trailing junk
// ("12abc" reads as 12). ok is false when s has no numeric prefix.
// Numbers too large for a float64 read as ±Inf so the clamps bound them.
func parseLeading(s string) (float64, bool) {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseTarget turns raw input into a storable target. Unparseable input and
// zero read as the minimum; the result is clamped to [MinTarget, MaxTarget].
func ParseTarget(raw string) float64 {
	v, ok := parseLeading(raw)
	if !ok || v == 0 {
		v = MinTarget
	}
	return ClampTarget(v)
}

// ClampTarget bounds t to [MinTarget, MaxTarget].
func ClampTarget(t float64) float64 {
	return math.Min(math.Max(t, MinTarget), MaxTarget)
}

// ParseValue turns raw input into a storable competitor value. Unparseable
// or negative input reads as 0; the result is at most MaxValue.
func ParseValue(raw string) float64 {
	v, ok := parseLeading(raw)
	if !ok {
		return 0
	}
	return ClampValue(v)
}

// ClampValue bounds v to [0, MaxValue].
func ClampValue(v float64) float64 {
	return math.Min(math.Max(0, v), MaxValue)
}
