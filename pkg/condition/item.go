package condition

import (
	"math"
	"slices"
	"strings"

	"github.com/roach88/advkit/pkg/ir"
)

// Item describes an item stack.
//
// Rendered key order: item|tag, potion, data, durability, count,
// enchantments, nbt.
type Item struct {
	id             *string
	potion         Potion
	data           *int8
	durability     *Range
	count          *Range
	enchantments   []Enchantment
	anyEnchantment bool
	nbt            *string
}

// NewItem returns an item descriptor without an item id.
func NewItem() Item {
	return Item{}
}

// ItemOf returns an item descriptor for id. An id starting with '#' names an
// item tag and renders under "tag" with the '#' stripped.
func ItemOf(id string) Item {
	return Item{id: ptr(id)}
}

// MinecraftItem returns an item descriptor for a vanilla item name
// ("stone" becomes "minecraft:stone").
func MinecraftItem(name string) Item {
	return ItemOf(minecraftID(strings.ToLower(name)))
}

// ID sets the item id.
func (i Item) ID(id string) Item {
	i.id = ptr(id)
	return i
}

// Potion sets the potion type.
func (i Item) Potion(p Potion) Item {
	i.potion = p
	return i
}

// Data sets the legacy data value. Values outside the byte range
// [-128, 127] are clamped to 0. Data only renders when an item id is set.
func (i Item) Data(n int) Item {
	if n < math.MinInt8 || n > math.MaxInt8 {
		n = 0
	}
	i.data = ptr(int8(n))
	return i
}

// Durability sets the remaining durability range.
func (i Item) Durability(r Range) Item {
	i.durability = &r
	return i
}

// Count sets the stack size range.
func (i Item) Count(r Range) Item {
	i.count = &r
	return i
}

// Enchantment appends enchantments and cancels EmptyEnchantments.
func (i Item) Enchantment(e ...Enchantment) Item {
	i.enchantments = append(slices.Clip(i.enchantments), e...)
	i.anyEnchantment = false
	return i
}

// EmptyEnchantments requests an enchantment list holding a single empty
// object, which matches an item with any enchantment.
func (i Item) EmptyEnchantments() Item {
	i.anyEnchantment = true
	return i
}

// ClearEnchantments drops previously added enchantments.
func (i Item) ClearEnchantments() Item {
	i.enchantments = nil
	return i
}

// NBT sets the raw NBT string.
func (i Item) NBT(nbt string) Item {
	i.nbt = ptr(nbt)
	return i
}

// Render implements Renderer.
func (i Item) Render() ir.Value {
	obj := ir.NewObject()
	if i.id != nil {
		if trimmed := strings.TrimSpace(*i.id); strings.HasPrefix(trimmed, "#") {
			obj.Set("tag", ir.String(trimmed[1:]))
		} else {
			obj.Set("item", ir.String(*i.id))
		}
	}
	if i.potion != "" {
		obj.Set("potion", ir.String(i.potion.ID()))
	}
	if i.data != nil && i.id != nil {
		obj.Set("data", ir.Int(*i.data))
	}
	if i.durability != nil {
		obj.Set("durability", i.durability.Render())
	}
	if i.count != nil {
		obj.Set("count", i.count.Render())
	}
	if i.anyEnchantment {
		obj.Set("enchantments", ir.Array{ir.NewObject()})
	} else if len(i.enchantments) > 0 {
		arr := make(ir.Array, len(i.enchantments))
		for n, e := range i.enchantments {
			arr[n] = e.Render()
		}
		obj.Set("enchantments", arr)
	}
	if i.nbt != nil {
		obj.Set("nbt", ir.String(*i.nbt))
	}
	return obj
}

// ItemList is an ordered list of item descriptors, rendered as an array.
type ItemList struct {
	items []Item
}

// Items returns a list holding items.
func Items(items ...Item) ItemList {
	return ItemList{}.Add(items...)
}

// Add appends items.
func (l ItemList) Add(items ...Item) ItemList {
	l.items = append(slices.Clip(l.items), items...)
	return l
}

// Clear drops all items.
func (l ItemList) Clear() ItemList {
	l.items = nil
	return l
}

// Len returns the number of items.
func (l ItemList) Len() int {
	return len(l.items)
}

// Render implements Renderer.
func (l ItemList) Render() ir.Value {
	arr := make(ir.Array, len(l.items))
	for n, item := range l.items {
		arr[n] = item.Render()
	}
	return arr
}

// Enchantment matches an enchantment by id and/or level range.
type Enchantment struct {
	id     *string
	levels *Range
}

// EnchantmentOf matches the enchantment with id at any level.
func EnchantmentOf(id string) Enchantment {
	return Enchantment{id: ptr(id)}
}

// EnchantmentLevels matches any enchantment within levels.
func EnchantmentLevels(levels Range) Enchantment {
	return Enchantment{levels: &levels}
}

// ID sets the enchantment id.
func (e Enchantment) ID(id string) Enchantment {
	e.id = ptr(id)
	return e
}

// Levels sets the level range.
func (e Enchantment) Levels(r Range) Enchantment {
	e.levels = &r
	return e
}

// Render implements Renderer.
func (e Enchantment) Render() ir.Value {
	obj := ir.NewObject()
	if e.id != nil {
		obj.Set("enchantment", ir.String(*e.id))
	}
	if e.levels != nil {
		obj.Set("levels", e.levels.Render())
	}
	return obj
}
