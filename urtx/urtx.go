// Package urtx extracts hex-encoded ledger transaction blobs from
// UR:BYTES containers produced by air-gapped signing devices.
//
// The pipeline is: strip the scheme prefix, convert the container text
// to raw bytes (bytewords), decode the bytes as CBOR, and search the
// decoded structure for a transaction field. When any stage comes up
// empty the raw container text is scanned directly for a long hex run
// that matches the target transaction family.
//
// Each stage signals failure by returning nothing; only this package
// turns "nothing" into a typed error, so callers see exactly one error
// for a whole decode attempt.
package urtx

import (
	"strings"

	"xdao.co/urtx/bytewords"
	"xdao.co/urtx/cbor"
	"xdao.co/urtx/extract"
)

// BytesPrefix is the scheme marker stripped from container input. Only
// this exact literal is recognized.
const BytesPrefix = "UR:BYTES/"

// Decode extracts a transaction blob from UR container text. The result
// is a string of uppercase hex digits. On failure the returned *Error
// carries the stage that gave up; wrapped causes record why the
// structured path failed before the raw-text fallback ran.
func Decode(urData string) (string, error) {
	return DecodeWithLimits(urData, cbor.Limits{})
}

// DecodeWithLimits is Decode with explicit resource bounds for the
// object decoding stage. The input text itself is bounded by the same
// MaxInput.
func DecodeWithLimits(urData string, lim cbor.Limits) (string, error) {
	maxInput := lim.MaxInput
	if maxInput <= 0 {
		maxInput = cbor.DefaultLimits.MaxInput
	}
	if len(urData) > maxInput {
		return "", newError(KindTextDecode, "URTX-TXT-002", "container text exceeds size bound")
	}

	content := strings.TrimPrefix(urData, BytesPrefix)

	// Structured path: text -> bytes -> object -> field.
	var stageErr error
	raw := bytewords.Decode(content)
	if len(raw) == 0 {
		stageErr = newError(KindTextDecode, "URTX-TXT-001", "container text produced no bytes")
	} else {
		obj, derr := cbor.DecodeWithLimits(raw, lim)
		switch {
		case derr != nil:
			stageErr = wrapError(KindObjectDecode, "URTX-OBJ-001", "payload bytes are not a decodable object", derr)
		default:
			if blob, ok := extract.TransactionHex(obj); ok {
				return blob, nil
			}
			stageErr = newError(KindExtract, "URTX-FLD-001", "no recognized transaction field in payload")
		}
	}

	// Raw-text fallback does not require the structured path to have
	// produced anything.
	if blob, ok := extract.ScanHexRun(content); ok {
		return blob, nil
	}
	return "", wrapError(KindScan, "URTX-SCAN-001", "unable to extract a transaction blob", stageErr)
}
