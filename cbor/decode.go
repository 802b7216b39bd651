// Package cbor implements a small CBOR (RFC 8949) decoder producing a
// generic ordered value tree.
//
// The decoder is intentionally not a full implementation: it covers the
// tagged-item structure needed to locate string and byte-string fields
// inside (possibly nested) maps. It never allocates proportionally to a
// claimed length without the bytes actually being present, and it bounds
// recursion depth and total item count so malformed or adversarial input
// degrades into a decode error instead of resource exhaustion.
package cbor

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/x448/float16"
)

// Limits bounds a single decode pass. The zero value means "use the
// package defaults".
type Limits struct {
	MaxDepth int // nesting depth of arrays/maps/tags
	MaxItems int // total decoded items
	MaxInput int // input size in bytes
}

// DefaultLimits are generous for hand-held device payloads while keeping
// hostile input cheap to reject.
var DefaultLimits = Limits{
	MaxDepth: 64,
	MaxItems: 1 << 17,
	MaxInput: 8 << 20,
}

func (l Limits) withDefaults() Limits {
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultLimits.MaxDepth
	}
	if l.MaxItems <= 0 {
		l.MaxItems = DefaultLimits.MaxItems
	}
	if l.MaxInput <= 0 {
		l.MaxInput = DefaultLimits.MaxInput
	}
	return l
}

// DecodeError reports why a byte sequence could not be decoded.
type DecodeError struct {
	Offset  int
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cbor: %s at offset %d", e.Message, e.Offset)
}

// Decode parses the first CBOR item in data. Trailing bytes after the
// item are tolerated.
func Decode(data []byte) (*Value, error) {
	return DecodeWithLimits(data, Limits{})
}

// DecodeWithLimits is Decode with explicit resource bounds.
func DecodeWithLimits(data []byte, lim Limits) (*Value, error) {
	lim = lim.withDefaults()
	if len(data) == 0 {
		return nil, &DecodeError{Offset: 0, Message: "empty input"}
	}
	if len(data) > lim.MaxInput {
		return nil, &DecodeError{Offset: 0, Message: "input exceeds size bound"}
	}
	d := &decoder{buf: data, lim: lim}
	return d.item(0)
}

type decoder struct {
	buf   []byte
	off   int
	lim   Limits
	items int
}

func (d *decoder) fail(msg string) error {
	return &DecodeError{Offset: d.off, Message: msg}
}

func (d *decoder) need(n int) error {
	if d.off+n > len(d.buf) {
		return d.fail("truncated input")
	}
	return nil
}

// head reads an initial byte plus any extended-length argument bytes.
// ai is the raw additional-info field; ai == 31 marks an
// indefinite-length header (arg is meaningless then).
func (d *decoder) head() (major, ai byte, arg uint64, err error) {
	if err = d.need(1); err != nil {
		return
	}
	b := d.buf[d.off]
	d.off++
	major = b >> 5
	ai = b & 0x1f
	switch {
	case ai < 24:
		arg = uint64(ai)
	case ai == 24:
		if err = d.need(1); err != nil {
			return
		}
		arg = uint64(d.buf[d.off])
		d.off++
	case ai == 25:
		if err = d.need(2); err != nil {
			return
		}
		arg = uint64(d.buf[d.off])<<8 | uint64(d.buf[d.off+1])
		d.off += 2
	case ai == 26:
		if err = d.need(4); err != nil {
			return
		}
		for i := 0; i < 4; i++ {
			arg = arg<<8 | uint64(d.buf[d.off+i])
		}
		d.off += 4
	case ai == 27:
		if err = d.need(8); err != nil {
			return
		}
		for i := 0; i < 8; i++ {
			arg = arg<<8 | uint64(d.buf[d.off+i])
		}
		d.off += 8
	case ai == 31:
		// indefinite length or break; caller decides validity
	default: // 28..30 reserved
		err = d.fail("reserved additional info")
	}
	return
}

// atBreak reports whether the next byte is the 0xff break code, and
// consumes it when it is.
func (d *decoder) atBreak() (bool, error) {
	if err := d.need(1); err != nil {
		return false, err
	}
	if d.buf[d.off] == 0xff {
		d.off++
		return true, nil
	}
	return false, nil
}

func (d *decoder) item(depth int) (*Value, error) {
	if depth > d.lim.MaxDepth {
		return nil, d.fail("nesting too deep")
	}
	d.items++
	if d.items > d.lim.MaxItems {
		return nil, d.fail("item count exceeds bound")
	}

	major, ai, arg, err := d.head()
	if err != nil {
		return nil, err
	}
	indef := ai == 31

	switch major {
	case 0:
		if indef {
			return nil, d.fail("indefinite length on integer")
		}
		return &Value{Kind: KindUint, Uint: arg}, nil
	case 1:
		if indef {
			return nil, d.fail("indefinite length on integer")
		}
		return &Value{Kind: KindNegInt, Uint: arg}, nil
	case 2:
		b, err := d.stringBody(2, arg, indef)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindBytes, Bytes: b}, nil
	case 3:
		b, err := d.stringBody(3, arg, indef)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, d.fail("text string is not valid UTF-8")
		}
		return &Value{Kind: KindText, Text: string(b)}, nil
	case 4:
		return d.array(arg, indef, depth)
	case 5:
		return d.mapItem(arg, indef, depth)
	case 6:
		if indef {
			return nil, d.fail("indefinite length on tag")
		}
		child, err := d.item(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: KindTagged, Tag: arg, Child: child}, nil
	default: // 7
		return d.simple(ai, arg)
	}
}

// stringBody reads a definite byte/text payload, or concatenates
// definite chunks of the same major type up to a break.
func (d *decoder) stringBody(major byte, arg uint64, indef bool) ([]byte, error) {
	if !indef {
		if arg > uint64(len(d.buf)-d.off) {
			return nil, d.fail("string length exceeds remaining input")
		}
		b := d.buf[d.off : d.off+int(arg)]
		d.off += int(arg)
		return b, nil
	}
	var out []byte
	for {
		stop, err := d.atBreak()
		if err != nil {
			return nil, err
		}
		if stop {
			return out, nil
		}
		m, ai, a, err := d.head()
		if err != nil {
			return nil, err
		}
		if m != major || ai == 31 {
			return nil, d.fail("invalid chunk in indefinite string")
		}
		if a > uint64(len(d.buf)-d.off) {
			return nil, d.fail("string length exceeds remaining input")
		}
		out = append(out, d.buf[d.off:d.off+int(a)]...)
		d.off += int(a)
	}
}

func (d *decoder) array(arg uint64, indef bool, depth int) (*Value, error) {
	var items []*Value
	if indef {
		for {
			stop, err := d.atBreak()
			if err != nil {
				return nil, err
			}
			if stop {
				break
			}
			v, err := d.item(depth + 1)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return &Value{Kind: KindArray, Array: items}, nil
	}
	if arg > uint64(d.lim.MaxItems) {
		return nil, d.fail("array length exceeds bound")
	}
	for i := uint64(0); i < arg; i++ {
		v, err := d.item(depth + 1)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return &Value{Kind: KindArray, Array: items}, nil
}

func (d *decoder) mapItem(arg uint64, indef bool, depth int) (*Value, error) {
	var entries []Entry
	pair := func() (Entry, error) {
		k, err := d.item(depth + 1)
		if err != nil {
			return Entry{}, err
		}
		v, err := d.item(depth + 1)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Key: k, Val: v}, nil
	}
	if indef {
		for {
			stop, err := d.atBreak()
			if err != nil {
				return nil, err
			}
			if stop {
				break
			}
			e, err := pair()
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return &Value{Kind: KindMap, Map: entries}, nil
	}
	if arg > uint64(d.lim.MaxItems) {
		return nil, d.fail("map length exceeds bound")
	}
	for i := uint64(0); i < arg; i++ {
		e, err := pair()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return &Value{Kind: KindMap, Map: entries}, nil
}

func (d *decoder) simple(ai byte, arg uint64) (*Value, error) {
	switch ai {
	case 31:
		// A break outside any indefinite container.
		return nil, d.fail("unexpected break")
	case 25:
		return &Value{Kind: KindFloat, Float: float64(float16.Frombits(uint16(arg)).Float32())}, nil
	case 26:
		return &Value{Kind: KindFloat, Float: float64(math.Float32frombits(uint32(arg)))}, nil
	case 27:
		return &Value{Kind: KindFloat, Float: math.Float64frombits(arg)}, nil
	}
	switch arg {
	case 20:
		return &Value{Kind: KindBool, Bool: false}, nil
	case 21:
		return &Value{Kind: KindBool, Bool: true}, nil
	case 22:
		return &Value{Kind: KindNull}, nil
	case 23:
		return &Value{Kind: KindUndefined}, nil
	default:
		return &Value{Kind: KindSimple, Uint: arg}, nil
	}
}
