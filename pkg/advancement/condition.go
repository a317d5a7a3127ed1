package advancement

import (
	"github.com/roach88/advkit/pkg/condition"
	"github.com/roach88/advkit/pkg/ir"
)

type conditionMode int

const (
	// payload rendered under the explicit key
	modePlain conditionMode = iota
	// keyed payload rendered under its own key
	modeSelf
	// keyed payload wrapped in {ownKey: value} under the explicit key
	modeWrapped
)

// Condition is one entry of a trigger's conditions object.
type Condition struct {
	mode    conditionMode
	key     string
	payload condition.Renderer
}

// NewCondition stores payload under key. A keyed payload (Location,
// StatusEffect) is wrapped one level deeper: {key: {ownKey: value}}.
func NewCondition(key string, payload condition.Renderer) Condition {
	if payload == nil {
		return ValueCondition(key, nil)
	}
	if _, ok := payload.(condition.Keyed); ok {
		return Condition{mode: modeWrapped, key: key, payload: payload}
	}
	return Condition{mode: modePlain, key: key, payload: payload}
}

// KeyedCondition stores a keyed payload under its own key. A nil payload
// renders as null under the empty key.
func KeyedCondition(payload condition.Keyed) Condition {
	if payload == nil {
		return ValueCondition("", nil)
	}
	return Condition{mode: modeSelf, payload: payload}
}

// StringCondition stores a raw string under key.
func StringCondition(key, value string) Condition {
	return Condition{mode: modePlain, key: key, payload: rawValue{ir.String(value)}}
}

// ValueCondition stores an already built JSON value under key.
func ValueCondition(key string, value ir.Value) Condition {
	return Condition{mode: modePlain, key: key, payload: rawValue{value}}
}

type rawValue struct {
	v ir.Value
}

func (r rawValue) Render() ir.Value {
	if r.v == nil {
		return ir.Null{}
	}
	return r.v
}

// Resolution is the key and value a condition contributes to its parent
// object. It is either Direct or Wrapped.
type Resolution interface {
	Pair() (string, ir.Value)
	resolution()
}

// Direct places the rendered payload under Key.
type Direct struct {
	Key   string
	Value ir.Value
}

// Wrapped places a single-entry object {payload key: payload} under Key.
type Wrapped struct {
	Key   string
	Value *ir.Object
}

func (d Direct) Pair() (string, ir.Value)  { return d.Key, d.Value }
func (w Wrapped) Pair() (string, ir.Value) { return w.Key, w.Value }

func (Direct) resolution()  {}
func (Wrapped) resolution() {}

// Resolve computes the key and value for the parent object.
func (c Condition) Resolve() Resolution {
	if c.payload == nil {
		return Direct{Key: c.key, Value: ir.Null{}}
	}
	switch c.mode {
	case modeSelf:
		k := c.payload.(condition.Keyed)
		return Direct{Key: k.Key(), Value: k.Render()}
	case modeWrapped:
		k := c.payload.(condition.Keyed)
		return Wrapped{Key: c.key, Value: ir.NewObject(ir.O(k.Key(), k.Render()))}
	}
	return Direct{Key: c.key, Value: c.payload.Render()}
}
