package advancement

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/advkit/pkg/condition"
	"github.com/roach88/advkit/pkg/ir"
)

// TriggerType is the event a criterion listens for.
type TriggerType int

const (
	BredAnimals TriggerType = iota
	BrewedPotion
	ChangedDimension
	ConstructBeacon
	ConsumeItem
	CuredZombieVillager
	EffectsChanged
	EnchantedItem
	EnterBlock
	EntityHurtPlayer
	EntityKilledPlayer
	Impossible
	InventoryChanged
	ItemDurabilityChanged
	Levitation
	Location
	NetherTravel
	PlacedBlock
	PlayerHurtEntity
	PlayerKilledEntity
	RecipeUnlocked
	SleptInBed
	SummonedEntity
	TameAnimal
	Tick
	UsedEnderEye
	UsedTotem
	VillagerTrade
)

var triggerNames = [...]string{
	BredAnimals:           "bred_animals",
	BrewedPotion:          "brewed_potion",
	ChangedDimension:      "changed_dimension",
	ConstructBeacon:       "construct_beacon",
	ConsumeItem:           "consume_item",
	CuredZombieVillager:   "cured_zombie_villager",
	EffectsChanged:        "effects_changed",
	EnchantedItem:         "enchanted_item",
	EnterBlock:            "enter_block",
	EntityHurtPlayer:      "entity_hurt_player",
	EntityKilledPlayer:    "entity_killed_player",
	Impossible:            "impossible",
	InventoryChanged:      "inventory_changed",
	ItemDurabilityChanged: "item_durability_changed",
	Levitation:            "levitation",
	Location:              "location",
	NetherTravel:          "nether_travel",
	PlacedBlock:           "placed_block",
	PlayerHurtEntity:      "player_hurt_entity",
	PlayerKilledEntity:    "player_killed_entity",
	RecipeUnlocked:        "recipe_unlocked",
	SleptInBed:            "slept_in_bed",
	SummonedEntity:        "summoned_entity",
	TameAnimal:            "tame_animal",
	Tick:                  "tick",
	UsedEnderEye:          "used_ender_eye",
	UsedTotem:             "used_totem",
	VillagerTrade:         "villager_trade",
}

// TriggerTypes returns every trigger type in declaration order.
func TriggerTypes() []TriggerType {
	types := make([]TriggerType, len(triggerNames))
	for i := range triggerNames {
		types[i] = TriggerType(i)
	}
	return types
}

// Name returns the lowercase name without namespace ("bred_animals").
func (t TriggerType) Name() string {
	if t < 0 || int(t) >= len(triggerNames) {
		return fmt.Sprintf("trigger(%d)", int(t))
	}
	return triggerNames[t]
}

// String returns the wire name ("minecraft:bred_animals").
func (t TriggerType) String() string {
	return condition.MinecraftNamespace + ":" + t.Name()
}

// ParseTriggerType accepts a trigger name with or without the minecraft
// namespace, case-insensitively.
func ParseTriggerType(s string) (TriggerType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, condition.MinecraftNamespace+":")
	if i := slices.Index(triggerNames[:], name); i >= 0 {
		return TriggerType(i), nil
	}
	return 0, fmt.Errorf("unknown trigger type %q", s)
}

// Trigger is one named criterion: a trigger type and its conditions.
type Trigger struct {
	kind       TriggerType
	name       string
	conditions []Condition
}

// NewTrigger returns a trigger of kind stored under name in the criteria map.
func NewTrigger(kind TriggerType, name string) Trigger {
	return Trigger{kind: kind, name: name}
}

// Kind returns the trigger type.
func (t Trigger) Kind() TriggerType {
	return t.kind
}

// Name returns the criterion name.
func (t Trigger) Name() string {
	return t.name
}

// Conditions returns a copy of the trigger's conditions.
func (t Trigger) Conditions() []Condition {
	return slices.Clone(t.conditions)
}

// Condition appends conditions.
func (t Trigger) Condition(c ...Condition) Trigger {
	t.conditions = append(slices.Clip(t.conditions), c...)
	return t
}

// ClearConditions drops every condition.
func (t Trigger) ClearConditions() Trigger {
	t.conditions = nil
	return t
}

// Render returns {"trigger": wireName, "conditions"?: {...}}. Conditions are
// omitted when there are none.
func (t Trigger) Render() ir.Value {
	obj := ir.NewObject(ir.O("trigger", ir.String(t.kind.String())))
	if len(t.conditions) > 0 {
		conds := ir.NewObject()
		for _, c := range t.conditions {
			key, val := c.Resolve().Pair()
			conds.Set(key, val)
		}
		obj.Set("conditions", conds)
	}
	return obj
}
