// Package jsonvalue models JSON documents as an insertion-ordered tagged union.
//
// Snippet files are passed through to the merged output unchanged, so the
// model keeps object key order and number literals exactly as they were read.
package jsonvalue

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which JSON type a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single JSON value. The zero value is JSON null.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the number literal as written
	items   []*Value
	members *orderedmap.OrderedMap[string, *Value]
}

func NewNull() *Value { return &Value{kind: Null} }

func NewBool(b bool) *Value { return &Value{kind: Bool, boolean: b} }

// NewNumber wraps a JSON number literal. The literal is emitted verbatim on encode.
func NewNumber(literal string) *Value { return &Value{kind: Number, text: literal} }

func NewString(s string) *Value { return &Value{kind: String, text: s} }

func NewArray(items ...*Value) *Value { return &Value{kind: Array, items: items} }

// NewObject returns an empty object.
func NewObject() *Value {
	return &Value{kind: Object, members: orderedmap.New[string, *Value]()}
}

func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

func (v *Value) IsObject() bool { return v.Kind() == Object }

func (v *Value) IsArray() bool { return v.Kind() == Array }

func (v *Value) IsString() bool { return v.Kind() == String }

// Text returns the string contents of a String or the literal of a Number.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	return v.text
}

func (v *Value) BoolValue() bool { return v != nil && v.boolean }

// Items returns the elements of an Array. It is nil for other kinds.
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}
	return v.items
}

// Append adds elements to an Array.
func (v *Value) Append(items ...*Value) {
	v.items = append(v.items, items...)
}

// Members returns the ordered members of an Object, or nil for other kinds.
func (v *Value) Members() *orderedmap.OrderedMap[string, *Value] {
	if v.Kind() != Object {
		return nil
	}
	return v.members
}

// Len reports the number of elements of an Array or members of an Object.
func (v *Value) Len() int {
	switch v.Kind() {
	case Array:
		return len(v.items)
	case Object:
		return v.members.Len()
	default:
		return 0
	}
}

// Has reports whether an Object contains key.
func (v *Value) Has(key string) bool {
	if v.Kind() != Object {
		return false
	}
	_, ok := v.members.Get(key)
	return ok
}

// Get returns the member stored under key.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != Object {
		return nil, false
	}
	return v.members.Get(key)
}

// Set stores a member. A new key is appended at the end. An existing key
// keeps its original position and gets the new value.
func (v *Value) Set(key string, member *Value) {
	v.members.Set(key, member)
}

// Keys returns the object keys in insertion order.
func (v *Value) Keys() []string {
	if v.Kind() != Object {
		return nil
	}
	keys := make([]string, 0, v.members.Len())
	for pair := v.members.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
