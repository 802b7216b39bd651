package cbor

import "fmt"

// Kind discriminates the decoded value union.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUint         // major type 0
	KindNegInt       // major type 1, value is -1 - Uint
	KindBytes        // major type 2
	KindText         // major type 3
	KindArray        // major type 4
	KindMap          // major type 5
	KindTagged       // major type 6
	KindBool
	KindNull
	KindUndefined
	KindFloat
	KindSimple // unassigned simple values
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindNegInt:
		return "negint"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTagged:
		return "tagged"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindFloat:
		return "float"
	case KindSimple:
		return "simple"
	default:
		return "invalid"
	}
}

// Entry is one key/value pair of a decoded map. Wire maps are kept as an
// ordered pair list: duplicate keys are legal on the wire and encounter
// order is preserved.
type Entry struct {
	Key *Value
	Val *Value
}

// Value is a decoded CBOR item.
//
// Exactly the fields implied by Kind are meaningful; the rest hold their
// zero values.
type Value struct {
	Kind Kind

	Uint  uint64 // KindUint, magnitude for KindNegInt, simple value for KindSimple
	Bool  bool
	Float float64
	Text  string
	Bytes []byte

	Array []*Value
	Map   []Entry

	Tag   uint64 // KindTagged
	Child *Value // KindTagged
}

// MapGet returns the value for the first entry whose key is the given
// text, in encounter order. Non-text keys never match.
func (v *Value) MapGet(name string) (*Value, bool) {
	if v == nil || v.Kind != KindMap {
		return nil, false
	}
	for _, e := range v.Map {
		if e.Key != nil && e.Key.Kind == KindText && e.Key.Text == name {
			return e.Val, true
		}
	}
	return nil, false
}

// Int64 reports the value as an int64 when it is an integer that fits.
func (v *Value) Int64() (int64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.Kind {
	case KindUint:
		if v.Uint > maxInt64 {
			return 0, false
		}
		return int64(v.Uint), true
	case KindNegInt:
		if v.Uint > maxInt64 {
			return 0, false
		}
		return -1 - int64(v.Uint), true
	default:
		return 0, false
	}
}

const maxInt64 = 1<<63 - 1

func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case KindText:
		return fmt.Sprintf("text(%q)", v.Text)
	case KindBytes:
		return fmt.Sprintf("bytes(%d)", len(v.Bytes))
	case KindMap:
		return fmt.Sprintf("map(%d)", len(v.Map))
	case KindArray:
		return fmt.Sprintf("array(%d)", len(v.Array))
	case KindTagged:
		return fmt.Sprintf("tag(%d)", v.Tag)
	default:
		return v.Kind.String()
	}
}
