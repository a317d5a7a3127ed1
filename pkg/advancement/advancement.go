// Package advancement assembles advancement documents: criteria built from
// triggers and their conditions, requirements, rewards and display data.
//
// A Builder collects the parts and Build produces an immutable Advancement
// whose JSON form has a fixed key order:
//
//	parent?, display?, criteria, requirements?, rewards?
//
// An advancement built without triggers gets a single "default" criterion
// of type Impossible, so it can only be granted explicitly.
package advancement

import (
	"slices"

	"github.com/roach88/advkit/pkg/ir"
)

// DefaultCriterion names the criterion substituted when no trigger is given.
const DefaultCriterion = "default"

// Builder configures an advancement. Setters return a modified copy.
type Builder struct {
	key          Key
	parent       *string
	display      *Display
	triggers     []Trigger
	requirements *Requirements
	rewards      *Rewards
}

// New starts an advancement with the given key.
func New(key Key) Builder {
	return Builder{key: key}
}

// Parent sets the parent advancement id.
func (b Builder) Parent(id string) Builder {
	b.parent = &id
	return b
}

// ParentKey sets the parent advancement by key.
func (b Builder) ParentKey(k Key) Builder {
	return b.Parent(k.String())
}

// Display sets the display.
func (b Builder) Display(d Display) Builder {
	b.display = &d
	return b
}

// Trigger appends triggers. Each trigger becomes one criterion.
func (b Builder) Trigger(t ...Trigger) Builder {
	b.triggers = append(slices.Clip(b.triggers), t...)
	return b
}

// ClearTriggers drops every trigger.
func (b Builder) ClearTriggers() Builder {
	b.triggers = nil
	return b
}

// Requirements sets the requirement list.
func (b Builder) Requirements(r Requirements) Builder {
	b.requirements = &r
	return b
}

// Rewards sets the rewards.
func (b Builder) Rewards(r Rewards) Builder {
	b.rewards = &r
	return b
}

// Build validates the key and criterion names and returns the advancement.
// Without triggers, the default impossible trigger is used.
func (b Builder) Build() (*Advancement, error) {
	if err := b.key.Validate(); err != nil {
		return nil, err
	}

	triggers := slices.Clone(b.triggers)
	if len(triggers) == 0 {
		triggers = []Trigger{NewTrigger(Impossible, DefaultCriterion)}
	}

	seen := make(map[string]struct{}, len(triggers))
	for _, t := range triggers {
		if t.name == "" {
			return nil, &Error{
				Code:    ErrCodeInvalidName,
				Message: "criterion name is empty",
				Key:     b.key.String(),
			}
		}
		if _, dup := seen[t.name]; dup {
			return nil, newDuplicateNameError(b.key, t.name)
		}
		seen[t.name] = struct{}{}
	}

	return &Advancement{
		key:          b.key,
		parent:       b.parent,
		display:      b.display,
		triggers:     triggers,
		requirements: b.requirements,
		rewards:      b.rewards,
	}, nil
}

// Advancement is a built, immutable advancement.
type Advancement struct {
	key          Key
	parent       *string
	display      *Display
	triggers     []Trigger
	requirements *Requirements
	rewards      *Rewards
}

// ID returns the advancement key.
func (a *Advancement) ID() Key {
	return a.key
}

// Parent returns the parent id and whether one is set.
func (a *Advancement) Parent() (string, bool) {
	if a.parent == nil {
		return "", false
	}
	return *a.parent, true
}

// Criteria returns the criterion names in order.
func (a *Advancement) Criteria() []string {
	names := make([]string, len(a.triggers))
	for i, t := range a.triggers {
		names[i] = t.name
	}
	return names
}

// Triggers returns a copy of the triggers.
func (a *Advancement) Triggers() []Trigger {
	return slices.Clone(a.triggers)
}

// Render returns the advancement document.
func (a *Advancement) Render() ir.Value {
	obj := ir.NewObject()
	if a.parent != nil {
		obj.Set("parent", ir.String(*a.parent))
	}
	if a.display != nil {
		obj.Set("display", a.display.Render())
	}

	criteria := ir.NewObject()
	for _, t := range a.triggers {
		criteria.Set(t.name, t.Render())
	}
	obj.Set("criteria", criteria)

	if a.requirements != nil {
		obj.Set("requirements", a.requirements.Render())
	}
	if a.rewards != nil {
		obj.Set("rewards", a.rewards.Render())
	}
	return obj
}

// JSON returns the compact JSON document.
func (a *Advancement) JSON() []byte {
	return ir.Marshal(a.Render())
}

// Indent returns the JSON document indented by two spaces, the form written
// to disk and handed to servers.
func (a *Advancement) Indent() []byte {
	return ir.MarshalIndent(a.Render(), "  ")
}

// Hash returns a content hash of the compact document.
func (a *Advancement) Hash() string {
	return ir.Hash(ir.DomainAdvancement, a.Render())
}
