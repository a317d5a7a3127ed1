package compiler

import (
	"fmt"
	"slices"

	"github.com/roach88/advkit/pkg/advancement"
	"github.com/roach88/advkit/pkg/ir"
	"github.com/roach88/advkit/pkg/text"
)

// Compile validates def and builds the advancement it describes. Validation
// problems are returned together as ValidationErrors.
func Compile(def *Definition) (*advancement.Advancement, error) {
	if errs := Validate(def); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	key, err := advancement.ParseKey(def.ID)
	if err != nil {
		return nil, err
	}
	b := advancement.New(key)

	if def.Parent != "" {
		parent, err := advancement.ParseKey(def.Parent)
		if err != nil {
			return nil, err
		}
		b = b.ParentKey(parent)
	}

	if def.Display != nil {
		b = b.Display(compileDisplay(def.Display))
	}

	for _, c := range def.Criteria {
		t, err := compileCriterion(c)
		if err != nil {
			return nil, err
		}
		b = b.Trigger(t)
	}

	if len(def.Requirements) > 0 {
		req := advancement.NewRequirements()
		for _, group := range def.Requirements {
			req = req.AndOneOf(group...)
		}
		b = b.Requirements(req)
	}

	if def.Rewards != nil {
		b = b.Rewards(compileRewards(def.Rewards))
	}

	adv, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", def.ID, err)
	}
	return adv, nil
}

// CompileFile loads and compiles the definition at path.
func CompileFile(path string) (*advancement.Advancement, error) {
	def, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(def)
}

func compileCriterion(c CriterionDef) (advancement.Trigger, error) {
	kind, err := advancement.ParseTriggerType(c.Trigger)
	if err != nil {
		return advancement.Trigger{}, err
	}
	t := advancement.NewTrigger(kind, c.Name)
	for _, key := range sortedKeys(c.Conditions) {
		v, err := ir.FromAny(c.Conditions[key])
		if err != nil {
			return advancement.Trigger{}, fmt.Errorf("criterion %q condition %q: %w", c.Name, key, err)
		}
		t = t.Condition(advancement.ValueCondition(key, v))
	}
	return t, nil
}

func compileDisplay(d *DisplayDef) advancement.Display {
	display := advancement.NewDisplay("", "", d.Icon).
		TitleText(compileText(d.Title)).
		DescriptionText(compileText(d.Description))
	if d.Frame != "" {
		display = display.Frame(advancement.ParseFrame(d.Frame))
	}
	if d.Background != "" {
		display = display.Background(d.Background)
	}
	if d.ShowToast != nil {
		display = display.Toast(*d.ShowToast)
	}
	if d.Announce != nil {
		display = display.Announce(*d.Announce)
	}
	if d.Hidden != nil {
		display = display.Hidden(*d.Hidden)
	}
	return display
}

func compileText(t TextDef) text.Component {
	c := text.Plain(t.Text)
	if col, ok := text.ParseColor(t.Color); ok {
		c = c.Color(col)
	}
	if t.Bold != nil {
		c = c.Bold(*t.Bold)
	}
	if t.Italic != nil {
		c = c.Italic(*t.Italic)
	}
	if t.Underlined != nil {
		c = c.Underlined(*t.Underlined)
	}
	if t.Strikethrough != nil {
		c = c.Strikethrough(*t.Strikethrough)
	}
	if t.Obfuscated != nil {
		c = c.Obfuscated(*t.Obfuscated)
	}
	for _, child := range t.Extra {
		c = c.Append(compileText(child))
	}
	return c
}

func compileRewards(r *RewardsDef) advancement.Rewards {
	rewards := advancement.NewRewards()
	if len(r.Recipes) > 0 {
		rewards = rewards.Recipes(r.Recipes...)
	}
	if len(r.Loots) > 0 {
		rewards = rewards.Loots(r.Loots...)
	}
	if r.Experience != nil {
		rewards = rewards.Experience(*r.Experience)
	}
	if r.Function != "" {
		rewards = rewards.Function(r.Function)
	}
	return rewards
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
