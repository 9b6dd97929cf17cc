// Package race holds the sales race state: the competitor roster, the target,
// the sticky winner, and the pure derivations the board renders from them.
package race

import (
	"fmt"
	"slices"
)

// MaxCompetitors bounds the roster length.
const MaxCompetitors = 20

// Competitor is one car on the track. Values are plain records; the store
// replaces them rather than mutating in place.
type Competitor struct {
	ID    int     `yaml:"id" json:"id"`
	Name  string  `yaml:"name" json:"name"`
	Color string  `yaml:"color" json:"color"`
	Value float64 `yaml:"value" json:"value"`
}

// DefaultName is the name given to a freshly added competitor.
func DefaultName(id int) string {
	return fmt.Sprintf("Competitor %d", id)
}

// Field names an editable competitor field.
type Field int

const (
	FieldName Field = iota
	FieldValue
)

// String returns the field name as shown in logs.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldValue:
		return "value"
	default:
		return "unknown"
	}
}

// Edit carries the replacement for a single field.
type Edit struct {
	Field Field
	Name  string
	Value float64
}

// NameEdit replaces a competitor's name.
func NameEdit(name string) Edit { return Edit{Field: FieldName, Name: name} }

// ValueEdit replaces a competitor's value. The value is stored as given;
// clamping belongs to ParseValue at the input boundary.
func ValueEdit(v float64) Edit { return Edit{Field: FieldValue, Value: v} }

// Roster is an ordered competitor list. Every method returns a new slice
// and leaves the receiver untouched.
type Roster []Competitor

// NextID returns max(ids)+1, or 1 for an empty roster.
func (r Roster) NextID() int {
	next := 1
	for _, c := range r {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

// Colors lists the colours currently in use, in roster order.
func (r Roster) Colors() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Color
	}
	return out
}

// Index returns the position of id, or -1.
func (r Roster) Index(id int) int {
	return slices.IndexFunc(r, func(c Competitor) bool { return c.ID == id })
}

// Find returns the competitor with id.
func (r Roster) Find(id int) (Competitor, bool) {
	if i := r.Index(id); i >= 0 {
		return r[i], true
	}
	return Competitor{}, false
}

// WithNew appends a competitor with the next id, default name, and the first
// free palette colour. A full roster is returned unchanged (as a copy).
func (r Roster) WithNew() (Roster, Competitor, bool) {
	if len(r) >= MaxCompetitors {
		return slices.Clone(r), Competitor{}, false
	}
	id := r.NextID()
	c := Competitor{
		ID:    id,
		Name:  DefaultName(id),
		Color: PickColor(r.Colors(), len(r)),
	}
	return append(slices.Clone(r), c), c, true
}

// Without drops the competitor with id.
func (r Roster) Without(id int) Roster {
	return slices.DeleteFunc(slices.Clone(r), func(c Competitor) bool { return c.ID == id })
}

// WithField returns a roster where the matching competitor carries the edit.
func (r Roster) WithField(id int, e Edit) Roster {
	out := slices.Clone(r)
	i := out.Index(id)
	if i < 0 {
		return out
	}
	switch e.Field {
	case FieldName:
		out[i].Name = e.Name
	case FieldValue:
		out[i].Value = e.Value
	}
	return out
}

// Zeroed returns the roster with every value reset to 0.
func (r Roster) Zeroed() Roster {
	out := slices.Clone(r)
	for i := range out {
		out[i].Value = 0
	}
	return out
}

// Ranked returns the roster sorted by value, highest first. Ties keep roster order.
func (r Roster) Ranked() Roster {
	out := slices.Clone(r)
	slices.SortStableFunc(out, func(a, b Competitor) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})
	return out
}
