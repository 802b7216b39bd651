package model

// DecodeResult is the caller-visible outcome of one decode attempt.
//
// On success TxBlob holds uppercase hex and Message a human-readable
// note; on failure Error holds the collapsed failure text. BlobCID is
// the content CID of the blob's bytes; blobs with no byte
// representation (odd-length hex) leave it empty. When archival is
// enabled the blob is stored under this key.
type DecodeResult struct {
	Success bool   `json:"success"`
	TxBlob  string `json:"txBlob,omitempty"`
	BlobCID string `json:"blobCID,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ResultOK builds a successful DecodeResult.
func ResultOK(txBlob, message string) DecodeResult {
	return DecodeResult{Success: true, TxBlob: txBlob, Message: message}
}

// ResultErr builds a failed DecodeResult. A decode failure is a normal
// outcome, not a process error.
func ResultErr(message string) DecodeResult {
	return DecodeResult{Success: false, Error: message}
}
