package condition

import (
	"slices"

	"github.com/roach88/advkit/pkg/ir"
)

// Entity matches an entity by type, distance from the player, location,
// active effects and raw NBT.
type Entity struct {
	typ      *string
	distance *Range
	location *Location
	effects  StatusEffects
	nbt      *string
}

// NewEntity returns an entity descriptor matching any entity.
func NewEntity() Entity {
	return Entity{}
}

// EntityOf returns a descriptor matching entities of type id.
func EntityOf(id string) Entity {
	return Entity{typ: ptr(id)}
}

// Type sets the entity type id.
func (e Entity) Type(id string) Entity {
	e.typ = ptr(id)
	return e
}

// Distance sets the distance range from the player.
func (e Entity) Distance(r Range) Entity {
	e.distance = &r
	return e
}

// Location sets the location the entity must be in.
func (e Entity) Location(l Location) Entity {
	e.location = &l
	return e
}

// Effects appends status effects the entity must have.
func (e Entity) Effects(s ...StatusEffect) Entity {
	e.effects = append(slices.Clip(e.effects), s...)
	return e
}

// NBT sets the raw NBT string.
func (e Entity) NBT(nbt string) Entity {
	e.nbt = ptr(nbt)
	return e
}

// Render implements Renderer.
func (e Entity) Render() ir.Value {
	obj := ir.NewObject()
	setString(obj, "type", e.typ)
	setRange(obj, "distance", e.distance)
	if e.location != nil {
		obj.Set("location", ir.NewObject(ir.O(e.location.Key(), e.location.Render())))
	}
	if len(e.effects) > 0 {
		obj.Set("effects", e.effects.Render())
	}
	setString(obj, "nbt", e.nbt)
	return obj
}
