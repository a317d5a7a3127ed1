package advancement

import (
	"math/rand/v2"
	"strings"

	"github.com/roach88/advkit/pkg/ir"
	"github.com/roach88/advkit/pkg/text"
)

// Frame is the border drawn around an advancement icon.
type Frame string

const (
	FrameTask      Frame = "task"
	FrameGoal      Frame = "goal"
	FrameChallenge Frame = "challenge"

	// FrameRandom stands for one of the three frames chosen uniformly each
	// time it is resolved.
	FrameRandom Frame = "random"
)

var frames = [...]Frame{FrameTask, FrameGoal, FrameChallenge}

// Resolve returns f, or a random concrete frame for FrameRandom. Two calls
// may return different frames.
func (f Frame) Resolve() Frame {
	if f == FrameRandom {
		return frames[rand.IntN(len(frames))]
	}
	return f
}

// ParseFrame parses a frame name case-insensitively. "random" is resolved
// immediately; unknown names fall back to FrameTask.
func ParseFrame(s string) Frame {
	switch f := Frame(strings.ToLower(strings.TrimSpace(s))); f {
	case FrameTask, FrameGoal, FrameChallenge:
		return f
	case FrameRandom:
		return f.Resolve()
	}
	return FrameTask
}

// Display is the advancement's appearance in the advancement screen.
type Display struct {
	title       text.Component
	description text.Component
	icon        string
	background  *string
	frame       *Frame
	toast       *bool
	announce    *bool
	hidden      *bool
}

// NewDisplay returns a display with plain title and description.
func NewDisplay(title, description, icon string) Display {
	return Display{
		title:       text.Plain(title),
		description: text.Plain(description),
		icon:        icon,
	}
}

// Title sets a plain title.
func (d Display) Title(s string) Display {
	d.title = text.Plain(s)
	return d
}

// TitleText sets a rich text title.
func (d Display) TitleText(c text.Component) Display {
	d.title = c
	return d
}

// Description sets a plain description.
func (d Display) Description(s string) Display {
	d.description = text.Plain(s)
	return d
}

// DescriptionText sets a rich text description.
func (d Display) DescriptionText(c text.Component) Display {
	d.description = c
	return d
}

// Icon sets the icon item id.
func (d Display) Icon(id string) Display {
	d.icon = id
	return d
}

// Background sets the background texture, used by root advancements.
func (d Display) Background(path string) Display {
	d.background = &path
	return d
}

// Frame sets the frame. FrameRandom is resolved here, once.
func (d Display) Frame(f Frame) Display {
	f = f.Resolve()
	d.frame = &f
	return d
}

// Toast sets show_toast.
func (d Display) Toast(b bool) Display {
	d.toast = &b
	return d
}

// Announce sets announce_to_chat.
func (d Display) Announce(b bool) Display {
	d.announce = &b
	return d
}

// Hidden hides the advancement until it is completed.
func (d Display) Hidden(b bool) Display {
	d.hidden = &b
	return d
}

// Render implements condition.Renderer.
func (d Display) Render() ir.Value {
	obj := ir.NewObject(
		ir.O("title", renderText(d.title)),
		ir.O("description", renderText(d.description)),
		ir.O("icon", ir.NewObject(ir.O("item", ir.String(d.icon)))),
	)
	if d.background != nil {
		obj.Set("background", ir.String(*d.background))
	}
	if d.frame != nil {
		obj.Set("frame", ir.String(*d.frame))
	}
	if d.toast != nil {
		obj.Set("show_toast", ir.Bool(*d.toast))
	}
	if d.announce != nil {
		obj.Set("announce_to_chat", ir.Bool(*d.announce))
	}
	if d.hidden != nil {
		obj.Set("hidden", ir.Bool(*d.hidden))
	}
	return obj
}

// renderText collapses a component with empty text to "".
func renderText(c text.Component) ir.Value {
	if c.IsEmpty() {
		return ir.String("")
	}
	return c.Render()
}
