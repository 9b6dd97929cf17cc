package race

import "math"

// DefaultTrackWidth is the reference lane length the position formula is
// expressed in. Terminal lanes pass their own cell count.
const DefaultTrackWidth = 484.0

// Lane thresholds, in percent of target.
const (
	MarkerThreeQuarters = 75.0
	MarkerAlmost        = 90.0
	GoalPercent         = 100.0
	ExceededPercent     = 120.0
	MaxOvertimePercent  = 20.0
	MillionValue        = 1_000_000.0
)

// Progress is value as a percentage of target. It is not capped.
func Progress(c Competitor, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return 100 * c.Value / target
}

// ProgressCapped bounds p to [0, 100] for bar widths.
func ProgressCapped(p float64) float64 {
	return math.Max(0, math.Min(p, GoalPercent))
}

// TrackPosition maps capped progress onto a lane of trackWidth units.
func TrackPosition(progressCapped, trackWidth float64) float64 {
	return progressCapped / 100 * trackWidth
}

// OvertimeExtent is how far past the finish line a car is drawn, as a
// percentage of lane width: half the overshoot, at most 20.
func OvertimeExtent(p float64) float64 {
	if p <= GoalPercent {
		return 0
	}
	return math.Min((p-GoalPercent)*0.5, MaxOvertimePercent)
}

// Tag is a lane embellishment.
type Tag int

const (
	TagAlmostThere Tag = iota
	TagGoalReached
	TagExceeded
	TagMillionaire
)

// Label returns the badge text for t.
func (t Tag) Label() string {
	switch t {
	case TagAlmostThere:
		return "🔥 Almost there!"
	case TagGoalReached:
		return "🏆 GOAL REACHED!"
	case TagExceeded:
		return "🚀 EXCEEDED!"
	case TagMillionaire:
		return "💰 MILLIONAIRE!"
	default:
		return ""
	}
}

// Lane is everything the track view needs to draw one competitor.
type Lane struct {
	Competitor     Competitor
	Progress       float64
	ProgressCapped float64
	// Position is the car offset along the lane in track units. Only
	// meaningful while InBounds.
	Position float64
	// Overtime is the extension past the finish, in percent of lane width.
	Overtime float64
	InBounds bool
	Marker75 bool
	Marker90 bool
	IsWinner bool
	Tags     []Tag
}

// LaneFor derives the lane for c.
func LaneFor(s State, c Competitor, trackWidth float64) Lane {
	p := Progress(c, s.Target)
	pc := ProgressCapped(p)
	l := Lane{
		Competitor:     c,
		Progress:       p,
		ProgressCapped: pc,
		Position:       TrackPosition(pc, trackWidth),
		Overtime:       OvertimeExtent(p),
		InBounds:       p <= GoalPercent,
		Marker75:       pc >= MarkerThreeQuarters && pc < GoalPercent,
		Marker90:       pc >= MarkerAlmost && pc < GoalPercent,
		IsWinner:       s.IsWinner(c.ID),
	}
	l.Tags = TagsFor(p, c.Value)
	return l
}

// TagsFor lists the badges earned at progress p with value v, in display order.
func TagsFor(p, v float64) []Tag {
	var tags []Tag
	if p >= MarkerAlmost && p < GoalPercent {
		tags = append(tags, TagAlmostThere)
	}
	if p >= GoalPercent {
		tags = append(tags, TagGoalReached)
	}
	if v >= MillionValue {
		tags = append(tags, TagMillionaire)
	}
	if p >= ExceededPercent {
		tags = append(tags, TagExceeded)
	}
	return tags
}

// Lanes derives one lane per competitor in roster order.
func Lanes(s State, trackWidth float64) []Lane {
	out := make([]Lane, len(s.Competitors))
	for i, c := range s.Competitors {
		out[i] = LaneFor(s, c, trackWidth)
	}
	return out
}

// Standing is one leaderboard row.
type Standing struct {
	Place      int
	Competitor Competitor
}

// Standings ranks the roster, highest value first.
func Standings(r Roster) []Standing {
	ranked := r.Ranked()
	out := make([]Standing, len(ranked))
	for i, c := range ranked {
		out[i] = Standing{Place: i + 1, Competitor: c}
	}
	return out
}
