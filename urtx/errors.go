package urtx

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	KindTextDecode   Kind = "TextDecode"   // container text produced no bytes
	KindObjectDecode Kind = "ObjectDecode" // bytes did not form a decodable object
	KindExtract      Kind = "Extract"      // object decoded but carried no usable field
	KindScan         Kind = "Scan"         // raw-text fallback found nothing
	KindInternal     Kind = "Internal"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., URTX-TXT-001, URTX-SCAN-001) that
// names the failed decoding stage.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}
