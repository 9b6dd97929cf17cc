package race

import (
	"slices"

	"go.uber.org/zap"
)

// DefaultTarget is the finish line a fresh or reset race uses.
const DefaultTarget = 1000.0

// State is an immutable snapshot of the race. Views render from it.
type State struct {
	Competitors Roster
	Target      float64
	// Winner is the competitor as it stood when it crossed the line.
	// It is nil until someone qualifies. Its ID is 0 once that competitor
	// has been removed from the track.
	Winner  *Competitor
	Started bool
}

// IsWinner reports whether id is the current winner.
func (s State) IsWinner(id int) bool {
	return s.Winner != nil && s.Winner.ID != 0 && s.Winner.ID == id
}

// CanAdd reports whether another competitor fits on the track.
func (s State) CanAdd() bool {
	return len(s.Competitors) < MaxCompetitors
}

// Op names a store mutation for observers.
type Op string

const (
	OpAdd       Op = "add"
	OpRemove    Op = "remove"
	OpUpdate    Op = "update"
	OpSetTarget Op = "set_target"
	OpReset     Op = "reset"
)

// Observer is notified after every mutation that was applied.
type Observer func(op Op, s State)

// Store owns the race state. It is not safe for concurrent use; the board
// mutates it from the bubbletea update loop only.
type Store struct {
	competitors Roster
	target      float64
	winner      *Competitor
	started     bool

	logger    *zap.Logger
	observers []Observer
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTarget sets the initial target.
func WithTarget(t float64) Option {
	return func(s *Store) { s.target = t }
}

// WithObserver registers fn to run after each applied mutation.
func WithObserver(fn Observer) Option {
	return func(s *Store) { s.observers = append(s.observers, fn) }
}

// WithRoster seeds the store. Ids and colours are kept when present and
// filled in otherwise; entries past MaxCompetitors are dropped.
func WithRoster(seed Roster) Option {
	return func(s *Store) {
		var r Roster
		for _, c := range seed {
			if len(r) >= MaxCompetitors {
				break
			}
			if c.ID <= 0 || r.Index(c.ID) >= 0 {
				c.ID = r.NextID()
			}
			if c.Name == "" {
				c.Name = DefaultName(c.ID)
			}
			if c.Color == "" {
				c.Color = PickColor(r.Colors(), len(r))
			}
			c.Value = ClampValue(c.Value)
			r = append(r, c)
		}
		s.competitors = r
	}
}

// NewStore builds a store. Without WithRoster it starts with no competitors.
func NewStore(opts ...Option) *Store {
	s := &Store{
		target: DefaultTarget,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.target < 1 {
		s.target = 1
	}
	s.started = slices.ContainsFunc(s.competitors, func(c Competitor) bool { return c.Value > 0 })
	s.recomputeWinner()
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	st := State{
		Competitors: slices.Clone(s.competitors),
		Target:      s.target,
		Started:     s.started,
	}
	if s.winner != nil {
		w := *s.winner
		st.Winner = &w
	}
	return st
}

// Add appends a competitor. It is a no-op once MaxCompetitors are racing.
func (s *Store) Add() (Competitor, bool) {
	next, c, ok := s.competitors.WithNew()
	if !ok {
		s.logger.Debug("add ignored, roster full", zap.Int("count", len(s.competitors)))
		return Competitor{}, false
	}
	s.competitors = next
	s.logger.Debug("competitor added",
		zap.Int("id", c.ID),
		zap.String("color", c.Color),
		zap.Int("count", len(s.competitors)))
	s.commit(OpAdd)
	return c, true
}

// Remove deletes the competitor with id. Unknown ids are ignored.
func (s *Store) Remove(id int) bool {
	if s.competitors.Index(id) < 0 {
		return false
	}
	s.competitors = s.competitors.Without(id)
	if s.winner != nil && s.winner.ID == id {
		// Keep the title but free the id: Add may mint it again.
		s.winner.ID = 0
	}
	s.logger.Debug("competitor removed", zap.Int("id", id), zap.Int("count", len(s.competitors)))
	s.commit(OpRemove)
	return true
}

// UpdateCompetitor applies e to the competitor with id. Unknown ids are ignored.
func (s *Store) UpdateCompetitor(id int, e Edit) bool {
	if s.competitors.Index(id) < 0 {
		return false
	}
	s.competitors = s.competitors.WithField(id, e)
	if e.Field == FieldValue && e.Value > 0 {
		s.started = true
	}
	s.logger.Debug("competitor updated", zap.Int("id", id), zap.Stringer("field", e.Field))
	s.commit(OpUpdate)
	return true
}

// SetTarget replaces the target. A changed target clears the winner, which is
// then recomputed under the new finish line. Range clamping is the caller's
// job (see ParseTarget).
func (s *Store) SetTarget(t float64) bool {
	if t == s.target {
		return false
	}
	s.target = t
	s.winner = nil
	s.logger.Debug("target changed", zap.Float64("target", t))
	s.commit(OpSetTarget)
	return true
}

// Reset zeroes every value, restores the default target, and clears the
// winner and the started flag. The roster itself is kept.
func (s *Store) Reset() {
	s.competitors = s.competitors.Zeroed()
	s.target = DefaultTarget
	s.winner = nil
	s.started = false
	s.logger.Info("race reset", zap.Int("count", len(s.competitors)))
	s.commit(OpReset)
}

func (s *Store) commit(op Op) {
	s.recomputeWinner()
	if len(s.observers) == 0 {
		return
	}
	st := s.Snapshot()
	for _, fn := range s.observers {
		fn(op, st)
	}
}

// recomputeWinner fills an empty winner slot with the highest qualifier.
// An existing winner is never replaced here; only SetTarget and Reset clear it.
func (s *Store) recomputeWinner() {
	if s.winner != nil {
		return
	}
	w, ok := FindWinner(s.competitors, s.target)
	if !ok {
		return
	}
	s.winner = &w
	s.logger.Info("winner decided",
		zap.Int("id", w.ID),
		zap.String("name", w.Name),
		zap.Float64("value", w.Value),
		zap.Float64("target", s.target))
}

// FindWinner returns the highest-valued competitor at or past target.
// Ties go to the earlier roster entry.
func FindWinner(r Roster, target float64) (Competitor, bool) {
	ranked := r.Ranked()
	if len(ranked) == 0 || ranked[0].Value < target {
		return Competitor{}, false
	}
	return ranked[0], true
}
