// Package text builds rich chat text components.
package text

import (
	"slices"
	"strings"

	"github.com/roach88/advkit/pkg/ir"
)

// Color is a named chat color.
type Color string

const (
	Black       Color = "black"
	DarkBlue    Color = "dark_blue"
	DarkGreen   Color = "dark_green"
	DarkAqua    Color = "dark_aqua"
	DarkRed     Color = "dark_red"
	DarkPurple  Color = "dark_purple"
	Gold        Color = "gold"
	Gray        Color = "gray"
	DarkGray    Color = "dark_gray"
	Blue        Color = "blue"
	Green       Color = "green"
	Aqua        Color = "aqua"
	Red         Color = "red"
	LightPurple Color = "light_purple"
	Yellow      Color = "yellow"
	White       Color = "white"
)

var colors = []Color{
	Black, DarkBlue, DarkGreen, DarkAqua, DarkRed, DarkPurple, Gold, Gray,
	DarkGray, Blue, Green, Aqua, Red, LightPurple, Yellow, White,
}

// ParseColor returns the color named s, case-insensitively.
func ParseColor(s string) (Color, bool) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(colors, c) {
		return c, true
	}
	return "", false
}

// Component is a chat text component: a string with optional formatting and
// child components that inherit it.
type Component struct {
	text          string
	color         Color
	bold          *bool
	italic        *bool
	underlined    *bool
	strikethrough *bool
	obfuscated    *bool
	extra         []Component
}

// Plain returns an unformatted component.
func Plain(s string) Component {
	return Component{text: s}
}

// Text returns the component's own text, without children.
func (c Component) Text() string {
	return c.text
}

// PlainText returns the text of the component followed by the plain text of
// every child.
func (c Component) PlainText() string {
	var b strings.Builder
	c.writePlain(&b)
	return b.String()
}

func (c Component) writePlain(b *strings.Builder) {
	b.WriteString(c.text)
	for _, e := range c.extra {
		e.writePlain(b)
	}
}

// IsEmpty reports whether the component's own text is empty.
func (c Component) IsEmpty() bool {
	return c.text == ""
}

func (c Component) Color(col Color) Component {
	c.color = col
	return c
}

func (c Component) Bold(b bool) Component {
	c.bold = &b
	return c
}

func (c Component) Italic(b bool) Component {
	c.italic = &b
	return c
}

func (c Component) Underlined(b bool) Component {
	c.underlined = &b
	return c
}

func (c Component) Strikethrough(b bool) Component {
	c.strikethrough = &b
	return c
}

func (c Component) Obfuscated(b bool) Component {
	c.obfuscated = &b
	return c
}

// Append adds child components.
func (c Component) Append(children ...Component) Component {
	c.extra = append(slices.Clip(c.extra), children...)
	return c
}

// Render returns the component as a JSON object. Unset formatting is
// omitted; children render under "extra".
func (c Component) Render() ir.Value {
	obj := ir.NewObject()
	if c.color != "" {
		obj.Set("color", ir.String(c.color))
	}
	for _, f := range []struct {
		key string
		val *bool
	}{
		{"bold", c.bold},
		{"italic", c.italic},
		{"underlined", c.underlined},
		{"strikethrough", c.strikethrough},
		{"obfuscated", c.obfuscated},
	} {
		if f.val != nil {
			obj.Set(f.key, ir.Bool(*f.val))
		}
	}
	obj.Set("text", ir.String(c.text))
	if len(c.extra) > 0 {
		arr := make(ir.Array, len(c.extra))
		for i, e := range c.extra {
			arr[i] = e.Render()
		}
		obj.Set("extra", arr)
	}
	return obj
}
