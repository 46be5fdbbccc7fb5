package core

import "math"

// Interval is a closed range [Min, Max] of real numbers.
// Min > Max denotes an empty interval.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing and is the identity for UnionInterval
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	// UnitInterval is [0, 1]
	UnitInterval = Interval{Min: 0, Max: 1}
)

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Empty returns the empty interval
func Empty() Interval {
	return EmptyInterval
}

// Universe returns the interval covering all real numbers
func Universe() Interval {
	return UniverseInterval
}

// UnionInterval returns the tightest interval enclosing both a and b
func UnionInterval(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether Min <= x <= Max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether Min < x < Max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval padded by delta in total, half on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Add returns the interval shifted by offset
func (i Interval) Add(offset float64) Interval {
	return Interval{Min: i.Min + offset, Max: i.Max + offset}
}
