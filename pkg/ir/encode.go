package ir

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Marshal encodes v as compact JSON.
//
// Differences from encoding/json:
//  1. Object keys are written in insertion order
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized
//
// A nil Value encodes as null.
func Marshal(v Value) []byte {
	var buf bytes.Buffer
	encode(&buf, v, "", 0)
	return buf.Bytes()
}

// MarshalIndent is like Marshal but places each element on its own line,
// indented by indent per nesting level. Empty objects and arrays stay on one
// line ({} and []).
func MarshalIndent(v Value, indent string) []byte {
	var buf bytes.Buffer
	encode(&buf, v, indent, 0)
	return buf.Bytes()
}

func encode(buf *bytes.Buffer, v Value, indent string, depth int) {
	switch val := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case String:
		encodeString(buf, string(val))
	case Int:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(val)))
	case Array:
		encodeArray(buf, val, indent, depth)
	case *Object:
		encodeObject(buf, val, indent, depth)
	}
}

func encodeArray(buf *bytes.Buffer, arr Array, indent string, depth int) {
	if len(arr) == 0 {
		buf.WriteString("[]")
		return
	}
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		newline(buf, indent, depth+1)
		encode(buf, elem, indent, depth+1)
	}
	newline(buf, indent, depth)
	buf.WriteByte(']')
}

func encodeObject(buf *bytes.Buffer, obj *Object, indent string, depth int) {
	if obj.Len() == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteByte('{')
	for i, k := range obj.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		newline(buf, indent, depth+1)
		encodeString(buf, k)
		buf.WriteByte(':')
		if indent != "" {
			buf.WriteByte(' ')
		}
		encode(buf, obj.values[k], indent, depth+1)
	}
	newline(buf, indent, depth)
	buf.WriteByte('}')
}

func newline(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

// encodeString writes s as a JSON string after NFC normalization.
// Only control characters, backslash, and quote are escaped.
func encodeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(norm.NFC.String(s))

	// json.Encoder adds a trailing newline
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
}
