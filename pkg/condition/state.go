package condition

import (
	"slices"

	"github.com/roach88/advkit/pkg/ir"
)

type property struct {
	name  string
	value string
}

// State is an ordered set of block state properties ("facing": "north").
type State struct {
	props []property
}

// NewState returns an empty state.
func NewState() State {
	return State{}
}

// Add sets a property. Setting an existing property replaces its value and
// keeps its position.
func (s State) Add(name, value string) State {
	props := slices.Clone(s.props)
	for i := range props {
		if props[i].name == name {
			props[i].value = value
			s.props = props
			return s
		}
	}
	s.props = append(props, property{name: name, value: value})
	return s
}

// Clear drops every property.
func (s State) Clear() State {
	s.props = nil
	return s
}

// Len returns the number of properties.
func (s State) Len() int {
	return len(s.props)
}

// Render implements Renderer.
func (s State) Render() ir.Value {
	obj := ir.NewObject()
	for _, p := range s.props {
		obj.Set(p.name, ir.String(p.value))
	}
	return obj
}

// Block matches a block by id and optional state properties.
type Block struct {
	id    string
	state State
}

// BlockOf returns a block descriptor for id.
func BlockOf(id string) Block {
	return Block{id: id}
}

// State sets a state property.
func (b Block) State(name, value string) Block {
	b.state = b.state.Add(name, value)
	return b
}

// WithState replaces all state properties.
func (b Block) WithState(s State) Block {
	b.state = s
	return b
}

// ClearState drops every state property.
func (b Block) ClearState() Block {
	b.state = State{}
	return b
}

// Render implements Renderer. The state key is omitted when no property is
// set.
func (b Block) Render() ir.Value {
	obj := ir.NewObject(ir.O("block", ir.String(b.id)))
	if b.state.Len() > 0 {
		obj.Set("state", b.state.Render())
	}
	return obj
}
