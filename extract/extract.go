// Package extract locates a hex-encoded transaction blob inside a
// decoded payload, or failing that, inside the raw container text.
package extract

import (
	"encoding/hex"
	"regexp"
	"strings"

	"xdao.co/urtx/cbor"
)

// FieldNames are the map keys known to carry a signed transaction, in
// priority order. The order is part of the decoder's observable behavior
// and must not be changed.
var FieldNames = []string{
	"signedTransaction",
	"signature",
	"txBlob",
	"blob",
	"transaction",
	"hex",
	"data",
}

var hexText = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

// TransactionHex searches a decoded value for a transaction blob.
//
// Only maps are searched. Each known field name is tried in order
// against the top-level map; a text value that is entirely hex is
// returned upper-cased, a byte-string value is returned hex-encoded.
// A present field with the wrong shape does not abort the pass: the
// remaining names are still tried. If the named pass finds nothing,
// map-valued entries are searched recursively in encounter order.
func TransactionHex(v *cbor.Value) (string, bool) {
	if v == nil || v.Kind != cbor.KindMap {
		return "", false
	}
	for _, name := range FieldNames {
		fv, ok := v.MapGet(name)
		if !ok {
			continue
		}
		switch {
		case fv != nil && fv.Kind == cbor.KindText && hexText.MatchString(fv.Text):
			return strings.ToUpper(fv.Text), true
		case fv != nil && fv.Kind == cbor.KindBytes:
			return strings.ToUpper(hex.EncodeToString(fv.Bytes)), true
		}
	}
	for _, e := range v.Map {
		if e.Val == nil || e.Val.Kind != cbor.KindMap {
			continue
		}
		if blob, ok := TransactionHex(e.Val); ok {
			return blob, true
		}
	}
	return "", false
}
