package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is one advancement as written in a definition file.
type Definition struct {
	ID           string         `yaml:"id" json:"id"`
	Parent       string         `yaml:"parent,omitempty" json:"parent,omitempty"`
	Display      *DisplayDef    `yaml:"display,omitempty" json:"display,omitempty"`
	Criteria     []CriterionDef `yaml:"criteria,omitempty" json:"criteria,omitempty"`
	Requirements [][]string     `yaml:"requirements,omitempty" json:"requirements,omitempty"`
	Rewards      *RewardsDef    `yaml:"rewards,omitempty" json:"rewards,omitempty"`
}

// DisplayDef is the display block.
type DisplayDef struct {
	Title       TextDef `yaml:"title" json:"title"`
	Description TextDef `yaml:"description" json:"description"`
	Icon        string  `yaml:"icon" json:"icon"`
	Frame       string  `yaml:"frame,omitempty" json:"frame,omitempty"`
	Background  string  `yaml:"background,omitempty" json:"background,omitempty"`
	ShowToast   *bool   `yaml:"show_toast,omitempty" json:"show_toast,omitempty"`
	Announce    *bool   `yaml:"announce_to_chat,omitempty" json:"announce_to_chat,omitempty"`
	Hidden      *bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

// TextDef is a text component. It decodes from either a plain string or an
// object with text and formatting fields.
type TextDef struct {
	Text          string    `yaml:"text" json:"text"`
	Color         string    `yaml:"color,omitempty" json:"color,omitempty"`
	Bold          *bool     `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic        *bool     `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underlined    *bool     `yaml:"underlined,omitempty" json:"underlined,omitempty"`
	Strikethrough *bool     `yaml:"strikethrough,omitempty" json:"strikethrough,omitempty"`
	Obfuscated    *bool     `yaml:"obfuscated,omitempty" json:"obfuscated,omitempty"`
	Extra         []TextDef `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// textDefFields has TextDef's fields without its decode methods.
type textDefFields TextDef

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TextDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = TextDef{Text: node.Value}
		return nil
	}
	var fields textDefFields
	if err := node.Decode(&fields); err != nil {
		return err
	}
	*t = TextDef(fields)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TextDef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = TextDef{Text: s}
		return nil
	}
	var fields textDefFields
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("text must be a string or an object: %w", err)
	}
	*t = TextDef(fields)
	return nil
}

// CriterionDef is one named trigger.
type CriterionDef struct {
	Name    string `yaml:"name" json:"name"`
	Trigger string `yaml:"trigger" json:"trigger"`
	// Conditions are raw JSON-like values. Keys render in sorted order.
	Conditions map[string]any `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

// RewardsDef is the rewards block.
type RewardsDef struct {
	Recipes    []string `yaml:"recipes,omitempty" json:"recipes,omitempty"`
	Loots      []string `yaml:"loots,omitempty" json:"loots,omitempty"`
	Experience *int     `yaml:"experience,omitempty" json:"experience,omitempty"`
	Function   string   `yaml:"function,omitempty" json:"function,omitempty"`
}
