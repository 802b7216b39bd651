package cbor

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in test: %v", err)
	}
	return b
}

func decodeHex(t *testing.T, s string) *Value {
	t.Helper()
	v, err := Decode(mustHex(t, s))
	if err != nil {
		t.Fatalf("Decode(%s): %v", s, err)
	}
	return v
}

func TestDecode_Integers(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		want int64
	}{
		{"00", KindUint, 0},
		{"17", KindUint, 23},
		{"1818", KindUint, 24},
		{"18ff", KindUint, 255},
		{"190100", KindUint, 256},
		{"1a000f4240", KindUint, 1000000},
		{"1b000000e8d4a51000", KindUint, 1000000000000},
		{"20", KindNegInt, -1},
		{"3863", KindNegInt, -100},
	}
	for _, c := range cases {
		v := decodeHex(t, c.in)
		if v.Kind != c.kind {
			t.Errorf("%s: kind %s, want %s", c.in, v.Kind, c.kind)
			continue
		}
		got, ok := v.Int64()
		if !ok || got != c.want {
			t.Errorf("%s: Int64() = %d,%v, want %d", c.in, got, ok, c.want)
		}
	}
}

func TestDecode_Strings(t *testing.T) {
	v := decodeHex(t, "6474784a42") // "txJB"
	if v.Kind != KindText || v.Text != "txJB" {
		t.Fatalf("text: got %s", v)
	}
	v = decodeHex(t, "4401020304")
	if v.Kind != KindBytes || !bytes.Equal(v.Bytes, []byte{1, 2, 3, 4}) {
		t.Fatalf("bytes: got %s", v)
	}
	// Empty forms.
	if v := decodeHex(t, "60"); v.Kind != KindText || v.Text != "" {
		t.Fatalf("empty text: got %s", v)
	}
	if v := decodeHex(t, "40"); v.Kind != KindBytes || len(v.Bytes) != 0 {
		t.Fatalf("empty bytes: got %s", v)
	}
}

func TestDecode_Containers(t *testing.T) {
	v := decodeHex(t, "83010203")
	if v.Kind != KindArray || len(v.Array) != 3 {
		t.Fatalf("array: got %s", v)
	}
	if n, _ := v.Array[2].Int64(); n != 3 {
		t.Fatalf("array[2] = %s", v.Array[2])
	}

	v = decodeHex(t, "a161616162") // {"a": "b"}
	if v.Kind != KindMap || len(v.Map) != 1 {
		t.Fatalf("map: got %s", v)
	}
	got, ok := v.MapGet("a")
	if !ok || got.Kind != KindText || got.Text != "b" {
		t.Fatalf("MapGet(a) = %s,%v", got, ok)
	}

	// Nested: {"outer": {"inner": 7}}
	v = decodeHex(t, "a1656f75746572a165696e6e657207")
	inner, ok := v.MapGet("outer")
	if !ok || inner.Kind != KindMap {
		t.Fatalf("nested outer: %s", inner)
	}
	leaf, ok := inner.MapGet("inner")
	if !ok {
		t.Fatalf("nested inner missing")
	}
	if n, _ := leaf.Int64(); n != 7 {
		t.Fatalf("nested leaf = %s", leaf)
	}
}

func TestDecode_Tagged(t *testing.T) {
	v := decodeHex(t, "c102")
	if v.Kind != KindTagged || v.Tag != 1 {
		t.Fatalf("tag: got %s", v)
	}
	if n, _ := v.Child.Int64(); n != 2 {
		t.Fatalf("tag child = %s", v.Child)
	}
}

func TestDecode_SimpleAndFloat(t *testing.T) {
	if v := decodeHex(t, "f4"); v.Kind != KindBool || v.Bool {
		t.Fatalf("false: got %s", v)
	}
	if v := decodeHex(t, "f5"); v.Kind != KindBool || !v.Bool {
		t.Fatalf("true: got %s", v)
	}
	if v := decodeHex(t, "f6"); v.Kind != KindNull {
		t.Fatalf("null: got %s", v)
	}
	if v := decodeHex(t, "f7"); v.Kind != KindUndefined {
		t.Fatalf("undefined: got %s", v)
	}
	if v := decodeHex(t, "f0"); v.Kind != KindSimple || v.Uint != 16 {
		t.Fatalf("simple(16): got %s", v)
	}
	if v := decodeHex(t, "f93c00"); v.Kind != KindFloat || v.Float != 1.0 {
		t.Fatalf("float16: got %s (%v)", v, v.Float)
	}
	if v := decodeHex(t, "fa47c35000"); v.Kind != KindFloat || v.Float != 100000.0 {
		t.Fatalf("float32: got %s (%v)", v, v.Float)
	}
	if v := decodeHex(t, "fb3ff199999999999a"); v.Kind != KindFloat || v.Float != 1.1 {
		t.Fatalf("float64: got %s (%v)", v, v.Float)
	}
}

func TestDecode_IndefiniteLengths(t *testing.T) {
	v := decodeHex(t, "5f42010243030405ff")
	if v.Kind != KindBytes || !bytes.Equal(v.Bytes, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("indefinite bytes: got %s % x", v, v.Bytes)
	}
	v = decodeHex(t, "7f61616162ff")
	if v.Kind != KindText || v.Text != "ab" {
		t.Fatalf("indefinite text: got %s", v)
	}
	v = decodeHex(t, "9f0102ff")
	if v.Kind != KindArray || len(v.Array) != 2 {
		t.Fatalf("indefinite array: got %s", v)
	}
	v = decodeHex(t, "bf616101ff")
	if v.Kind != KindMap || len(v.Map) != 1 {
		t.Fatalf("indefinite map: got %s", v)
	}
	if got, ok := v.MapGet("a"); !ok || got.Kind != KindUint || got.Uint != 1 {
		t.Fatalf("indefinite map entry: %s,%v", got, ok)
	}
}

func TestDecode_TrailingBytesTolerated(t *testing.T) {
	v, err := Decode(mustHex(t, "01deadbeef"))
	if err != nil {
		t.Fatalf("trailing bytes should be tolerated: %v", err)
	}
	if v.Kind != KindUint || v.Uint != 1 {
		t.Fatalf("got %s", v)
	}
}

func TestDecode_DuplicateMapKeysFirstWins(t *testing.T) {
	// {"a": 1, "a": 2} on the wire.
	v := decodeHex(t, "a2616101616102")
	if len(v.Map) != 2 {
		t.Fatalf("expected both entries preserved, got %d", len(v.Map))
	}
	got, ok := v.MapGet("a")
	if !ok || got.Uint != 1 {
		t.Fatalf("MapGet must return the first entry, got %s,%v", got, ok)
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := []string{
		"",                 // empty input
		"18",               // truncated extended length
		"1c",               // reserved additional info
		"61",               // truncated text
		"5a ffffffff",      // huge claimed length, no body
		"a1",               // map with missing entries
		"a16161",           // map with key but no value
		"ff",               // bare break
		"61ff",             // invalid UTF-8 text
		"5f6161ff",         // text chunk inside indefinite byte string
		"5f5f4101ffff",     // nested indefinite chunk
		"1f",               // indefinite on integer
		"3f",               // indefinite on negative integer
		"c1",               // tag without content
		"9b7fffffffffffff", // truncated 8-byte length
	}
	for _, c := range cases {
		in := mustHex(t, strings.ReplaceAll(c, " ", ""))
		if v, err := Decode(in); err == nil {
			t.Errorf("Decode(%s): expected error, got %s", c, v)
		}
	}
}

func TestDecode_DepthBound(t *testing.T) {
	deep := strings.Repeat("81", 80) + "01"
	if _, err := Decode(mustHex(t, deep)); err == nil {
		t.Fatalf("expected depth bound error")
	}
	shallow := strings.Repeat("81", 10) + "01"
	if _, err := Decode(mustHex(t, shallow)); err != nil {
		t.Fatalf("shallow nesting rejected: %v", err)
	}
	// Raising the bound admits the deep input.
	if _, err := DecodeWithLimits(mustHex(t, deep), Limits{MaxDepth: 128}); err != nil {
		t.Fatalf("custom depth bound rejected: %v", err)
	}
}

func TestDecode_ItemAndSizeBounds(t *testing.T) {
	// Array claiming 2^63-ish elements fails fast on the length bound.
	if _, err := Decode(mustHex(t, "9b7fffffffffffffff")); err == nil {
		t.Fatalf("expected array length bound error")
	}
	if _, err := DecodeWithLimits([]byte{0x01}, Limits{MaxInput: 0}); err != nil {
		t.Fatalf("zero MaxInput must mean default: %v", err)
	}
	big := make([]byte, 32)
	if _, err := DecodeWithLimits(big, Limits{MaxInput: 16}); err == nil {
		t.Fatalf("expected input size bound error")
	}
	// Item bound: 10 items max, 16 present.
	many := "90" + strings.Repeat("01", 16)
	if _, err := DecodeWithLimits(mustHex(t, many), Limits{MaxItems: 10}); err == nil {
		t.Fatalf("expected item count bound error")
	}
}
