package condition

import "github.com/roach88/advkit/pkg/ir"

// StatusEffect matches one active status effect. It is stored under its
// effect id ("minecraft:speed") in a parent object.
type StatusEffect struct {
	effect    Effect
	amplifier *Range
	duration  *Range
	ambient   *bool
	visible   *bool
}

// StatusEffectOf returns a descriptor matching effect with any attributes.
func StatusEffectOf(effect Effect) StatusEffect {
	return StatusEffect{effect: effect}
}

// Amplifier sets the amplifier range.
func (s StatusEffect) Amplifier(r Range) StatusEffect {
	s.amplifier = &r
	return s
}

// Duration sets the duration range in ticks.
func (s StatusEffect) Duration(r Range) StatusEffect {
	s.duration = &r
	return s
}

// Ambient sets whether the effect comes from a beacon.
func (s StatusEffect) Ambient(b bool) StatusEffect {
	s.ambient = ptr(b)
	return s
}

// Visible sets whether the effect shows particles.
func (s StatusEffect) Visible(b bool) StatusEffect {
	s.visible = ptr(b)
	return s
}

// Key implements Keyed.
func (s StatusEffect) Key() string {
	return s.effect.ID()
}

// Render implements Renderer.
func (s StatusEffect) Render() ir.Value {
	obj := ir.NewObject()
	setRange(obj, "amplifier", s.amplifier)
	setRange(obj, "duration", s.duration)
	setBool(obj, "ambient", s.ambient)
	setBool(obj, "visible", s.visible)
	return obj
}

// StatusEffects is a set of status effects rendered as one object keyed by
// effect id.
type StatusEffects []StatusEffect

// Render implements Renderer. A later effect with the same id replaces an
// earlier one.
func (e StatusEffects) Render() ir.Value {
	obj := ir.NewObject()
	for _, s := range e {
		obj.Set(s.Key(), s.Render())
	}
	return obj
}
