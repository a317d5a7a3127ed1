// Package condition provides the primitive descriptors used as trigger
// conditions: ranges, items, entities, damage, locations, distances, status
// effects, blocks and slots.
//
// Every descriptor is an immutable value. Setters use value receivers and
// return a modified copy, so a partially configured descriptor can be reused
// to derive variants:
//
//	base := condition.ItemOf("minecraft:diamond_sword")
//	sharp := base.Enchantment(condition.EnchantmentOf("minecraft:sharpness"))
//	any := base.EmptyEnchantments()
//
// Fields that were never set are omitted from the rendered object.
package condition

import "github.com/roach88/advkit/pkg/ir"

// Renderer is implemented by every descriptor.
type Renderer interface {
	Render() ir.Value
}

// Keyed is implemented by descriptors that choose the key they are stored
// under in a parent object (Location, StatusEffect).
type Keyed interface {
	Renderer
	Key() string
}

// MinecraftNamespace prefixes every vanilla resource id.
const MinecraftNamespace = "minecraft"

func minecraftID(name string) string {
	return MinecraftNamespace + ":" + name
}

func ptr[T any](v T) *T {
	return &v
}
