// Package blobid derives stable content identifiers for extracted
// transaction blobs. Identity is an IPFS-compatible CIDv1 (raw codec +
// sha2-256) over the blob's raw bytes, so two decodes of the same
// transaction always archive to the same key.
package blobid

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CID returns the CIDv1 (raw + sha2-256) of data.
func CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// String returns the CIDv1 string of data, or "" when the sum fails.
// multihash.Sum with SHA2_256 and default length should not fail.
func String(data []byte) string {
	id, err := CID(data)
	if err != nil {
		return ""
	}
	return id.String()
}

// FromHexBlob returns the CID of the bytes a hex transaction blob
// denotes. The blob must be even-length hex; extracted blobs normally
// are, but the raw-text fallback can surface odd-length runs.
func FromHexBlob(blob string) (cid.Cid, error) {
	raw, err := hex.DecodeString(strings.ToLower(blob))
	if err != nil {
		return cid.Undef, fmt.Errorf("blobid: not a byte-aligned hex blob: %w", err)
	}
	return CID(raw)
}
