// Package model defines stable boundary types for the decoder's outer
// surfaces (CLI JSON output, daemon responses, conformance vectors).
//
// Decode semantics are unaffected by any projection here. These structs
// are the only types intended for direct JSON serialization by
// consumers.
package model
