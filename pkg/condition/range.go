package condition

import "github.com/roach88/advkit/pkg/ir"

type rangeMode int

const (
	rangeExact rangeMode = iota
	rangeBounds
)

// Range is a numeric comparison: either an exact value or a min/max pair.
//
// Min and Max switch the range into bounds mode; Exact switches it back.
// Bounds set earlier are kept and render again once bounds mode is active,
// so Min(3).Exact(6).Max(2) renders {"min":3,"max":2}.
//
// The zero value renders as the scalar 1.
type Range struct {
	mode  rangeMode
	exact *int
	min   *int
	max   *int
}

// NewRange returns the default range (exactly 1).
func NewRange() Range {
	return Range{}
}

// Exactly returns a range matching exactly n.
func Exactly(n int) Range {
	return Range{}.Exact(n)
}

// AtLeast returns a range with only a lower bound.
func AtLeast(n int) Range {
	return Range{}.Min(n)
}

// AtMost returns a range with only an upper bound.
func AtMost(n int) Range {
	return Range{}.Max(n)
}

// Between returns a range with both bounds.
func Between(lo, hi int) Range {
	return Range{}.Min(lo).Max(hi)
}

// Exact sets the exact value and switches to exact mode.
func (r Range) Exact(n int) Range {
	r.exact = ptr(n)
	r.mode = rangeExact
	return r
}

// Min sets the lower bound and switches to bounds mode.
func (r Range) Min(n int) Range {
	r.min = ptr(n)
	r.mode = rangeBounds
	return r
}

// Max sets the upper bound and switches to bounds mode.
func (r Range) Max(n int) Range {
	r.max = ptr(n)
	r.mode = rangeBounds
	return r
}

// IsExact reports whether the range renders as a scalar.
func (r Range) IsExact() bool {
	return r.mode == rangeExact
}

// Render returns a scalar in exact mode, otherwise {"min"?, "max"?}.
func (r Range) Render() ir.Value {
	if r.mode == rangeExact {
		if r.exact == nil {
			return ir.Int(1)
		}
		return ir.Int(*r.exact)
	}

	obj := ir.NewObject()
	if r.min != nil {
		obj.Set("min", ir.Int(*r.min))
	}
	if r.max != nil {
		obj.Set("max", ir.Int(*r.max))
	}
	return obj
}
