package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"xdao.co/urtx/blobid"
	"xdao.co/urtx/model"
)

// Word-chunk container for {"txBlob": "1234ABCD"}.
const fieldContainer = "UR:BYTES/AAERAAC4AADIAADMAAB4AADAAADDAAC0AAC6AABNAABOAABPAABQAAB3AAB4AAB5AAB6"

func runDecode(t *testing.T, arg string) (model.DecodeResult, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run([]string{"decode", arg}, &out, &errOut)
	var res model.DecodeResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("non-JSON output %q: %v", out.String(), err)
	}
	return res, code
}

func TestDecodeCmd_SuccessCarriesBlobCID(t *testing.T) {
	res, code := runDecode(t, fieldContainer)
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !res.Success || res.TxBlob != "1234ABCD" {
		t.Fatalf("unexpected result: %+v", res)
	}
	// The CID is derived from the blob bytes alone; no archive is
	// involved in the CLI path.
	id, err := blobid.FromHexBlob("1234ABCD")
	if err != nil {
		t.Fatalf("FromHexBlob: %v", err)
	}
	if res.BlobCID != id.String() {
		t.Fatalf("blobCID %q, want %q", res.BlobCID, id.String())
	}
}

func TestDecodeCmd_OddLengthBlobHasNoCID(t *testing.T) {
	// The fallback surfaces a 101-char run; odd-length hex has no byte
	// representation, so no CID is reported.
	res, code := runDecode(t, "xyz"+"12"+strings.Repeat("A", 99))
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !res.Success {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.BlobCID != "" {
		t.Fatalf("expected empty blobCID, got %q", res.BlobCID)
	}
}

func TestDecodeCmd_FailureIsExitZero(t *testing.T) {
	res, code := runDecode(t, "###")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if res.Success || res.Error != "unable to extract a transaction blob" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.BlobCID != "" {
		t.Fatalf("failure result must not carry a CID, got %q", res.BlobCID)
	}
}

func TestDecodeCmd_WrongArgCount(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"decode"}, &out, &errOut); code != 2 {
		t.Fatalf("no-arg exit code %d, want 2", code)
	}
	if code := run([]string{"decode", "a", "b"}, &out, &errOut); code != 2 {
		t.Fatalf("two-arg exit code %d, want 2", code)
	}
}
