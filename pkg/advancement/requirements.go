package advancement

import (
	"slices"

	"github.com/roach88/advkit/pkg/ir"
)

// Requirements is an AND of OR-groups of criterion names.
type Requirements struct {
	groups [][]string
}

// NewRequirements returns an empty requirement list, which renders as [].
func NewRequirements() Requirements {
	return Requirements{}
}

// AndOneOf appends a group satisfied when any of names is met.
func (r Requirements) AndOneOf(names ...string) Requirements {
	r.groups = append(slices.Clip(r.groups), slices.Clone(names))
	return r
}

// Groups returns a copy of the OR-groups.
func (r Requirements) Groups() [][]string {
	out := make([][]string, len(r.groups))
	for i, g := range r.groups {
		out[i] = slices.Clone(g)
	}
	return out
}

// Render implements condition.Renderer.
func (r Requirements) Render() ir.Value {
	arr := make(ir.Array, len(r.groups))
	for i, g := range r.groups {
		arr[i] = ir.Strings(g...)
	}
	return arr
}

// Rewards are granted when the advancement completes.
type Rewards struct {
	recipes    []string
	loots      []string
	experience *int
	function   *string
}

// NewRewards returns an empty reward set, which renders as {}.
func NewRewards() Rewards {
	return Rewards{}
}

// Recipes appends unlocked recipe ids.
func (r Rewards) Recipes(ids ...string) Rewards {
	r.recipes = append(slices.Clip(r.recipes), ids...)
	return r
}

// Loots appends loot table ids.
func (r Rewards) Loots(ids ...string) Rewards {
	r.loots = append(slices.Clip(r.loots), ids...)
	return r
}

// Experience sets the experience points awarded.
func (r Rewards) Experience(n int) Rewards {
	r.experience = &n
	return r
}

// Function sets the function run for the player.
func (r Rewards) Function(id string) Rewards {
	r.function = &id
	return r
}

// Render implements condition.Renderer.
func (r Rewards) Render() ir.Value {
	obj := ir.NewObject()
	if len(r.recipes) > 0 {
		obj.Set("recipes", ir.Strings(r.recipes...))
	}
	if len(r.loots) > 0 {
		obj.Set("loots", ir.Strings(r.loots...))
	}
	if r.experience != nil {
		obj.Set("experience", ir.Int(*r.experience))
	}
	if r.function != nil {
		obj.Set("function", ir.String(*r.function))
	}
	return obj
}
