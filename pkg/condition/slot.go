package condition

import "github.com/roach88/advkit/pkg/ir"

// Slot matches inventory slot counts.
type Slot struct {
	occupied *Range
	full     *Range
	empty    *Range
}

// NewSlot returns an empty slot descriptor.
func NewSlot() Slot {
	return Slot{}
}

// Occupied sets the occupied slot range.
func (s Slot) Occupied(r Range) Slot {
	s.occupied = &r
	return s
}

// Full sets the full slot range.
func (s Slot) Full(r Range) Slot {
	s.full = &r
	return s
}

// Empty sets the empty slot range.
func (s Slot) Empty(r Range) Slot {
	s.empty = &r
	return s
}

// Render implements Renderer.
func (s Slot) Render() ir.Value {
	obj := ir.NewObject()
	setRange(obj, "occupied", s.occupied)
	setRange(obj, "full", s.full)
	setRange(obj, "empty", s.empty)
	return obj
}

func setRange(obj *ir.Object, key string, r *Range) {
	if r != nil {
		obj.Set(key, r.Render())
	}
}

func setBool(obj *ir.Object, key string, b *bool) {
	if b != nil {
		obj.Set(key, ir.Bool(*b))
	}
}

func setString(obj *ir.Object, key string, s *string) {
	if s != nil {
		obj.Set(key, ir.String(*s))
	}
}
