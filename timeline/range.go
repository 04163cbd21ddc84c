package timeline

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of months.
type Range struct{ From, To Month }

// NewRange returns the range covering both m and x, whatever their order.
func NewRange(m, x Month) Range {
	if x.Before(m) {
		m, x = x, m
	}
	return Range{From: m, To: x}
}

// Horizon returns the range starting at 'start' and covering 'months' months.
func Horizon(start Month, months int) Range {
	return Range{From: start, To: start.Add(months - 1)}
}

// Contains returns true if the month is included in the range (boundaries included).
func (r Range) Contains(m Month) bool { return !m.Before(r.From) && !m.After(r.To) }

// Months returns the number of months the range covers.
func (r Range) Months() int { return r.To.Sub(r.From) + 1 }

// Years returns the number of whole or partial years the range covers.
func (r Range) Years() int { return (r.Months() + 11) / 12 }

// All returns an iterator over every month in the range, in chronological order.
func (r Range) All() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for m := r.From; !m.After(r.To); m = m.Add(1) {
			if !yield(m) {
				return
			}
		}
	}
}

// Identifier computes a unique, human readable identifier for the range.
func (r Range) Identifier() string {
	if r.From == r.To {
		return r.From.String()
	}
	if r.From.Month() == 1 && r.To.Month() == 12 && r.From.Year() == r.To.Year() {
		return fmt.Sprintf("%d", r.From.Year())
	}
	return fmt.Sprintf("%s_%s", r.From, r.To)
}
