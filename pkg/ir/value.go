package ir

// Value is a sealed interface representing the JSON value types an
// advancement document may contain.
// Only Null, String, Int, Bool, Array, and *Object implement this.
type Value interface {
	irValue() // Sealed - only these types implement it
}

// Null represents a JSON null value.
type Null struct{}

func (Null) irValue() {}

// String represents a JSON string.
type String string

func (String) irValue() {}

// Int represents a JSON integer. Always int64, never float64.
type Int int64

func (Int) irValue() {}

// Bool represents a JSON boolean.
type Bool bool

func (Bool) irValue() {}

// Array represents a JSON array.
type Array []Value

func (Array) irValue() {}

// Object is a JSON object that preserves insertion order.
//
// Set on an existing key replaces the value but keeps the key at its
// original position.
type Object struct {
	keys   []string
	values map[string]Value
}

func (*Object) irValue() {}

// Pair is a key-value pair for Object construction.
type Pair struct {
	Key   string
	Value Value
}

// O is a shorthand for Pair.
// Example: NewObject(O("item", String("minecraft:stone")), O("count", Int(1)))
func O(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// NewObject creates an Object from pairs, in order.
func NewObject(pairs ...Pair) *Object {
	obj := &Object{values: make(map[string]Value, len(pairs))}
	for _, p := range pairs {
		obj.Set(p.Key, p.Value)
	}
	return obj
}

// Set stores value under key. A nil value is stored as Null.
func (o *Object) Set(key string, value Value) *Object {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if value == nil {
		value = Null{}
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Pairs returns the entries in insertion order.
func (o *Object) Pairs() []Pair {
	if o == nil {
		return nil
	}
	pairs := make([]Pair, len(o.keys))
	for i, k := range o.keys {
		pairs[i] = Pair{Key: k, Value: o.values[k]}
	}
	return pairs
}

// MarshalJSON implements json.Marshaler using the compact encoding.
func (o *Object) MarshalJSON() ([]byte, error) {
	return Marshal(o), nil
}

// MarshalJSON implements json.Marshaler using the compact encoding.
func (a Array) MarshalJSON() ([]byte, error) {
	return Marshal(a), nil
}

// Strings builds an Array of String values.
func Strings(ss ...string) Array {
	arr := make(Array, len(ss))
	for i, s := range ss {
		arr[i] = String(s)
	}
	return arr
}
