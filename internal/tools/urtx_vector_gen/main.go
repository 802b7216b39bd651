// urtx_vector_gen regenerates the decoder conformance vectors under
// testdata/conformance/urtx. Each vector is a .ur input file plus a
// .json expected DecodeResult. Every generated vector is decoded before
// being written; a mismatch aborts generation.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xdao.co/urtx/model"
	"xdao.co/urtx/urtx"
)

// chunkEncode renders raw bytes as word-chunk text: each byte becomes a
// 4-character group "AA" + high + low, where high/low are the base-36
// digits of the byte value. The leading "AA" zeroes the two heavy
// positional weights so the group sum equals the byte exactly.
func chunkEncode(data []byte) string {
	var b strings.Builder
	for _, c := range data {
		b.WriteString("AA")
		b.WriteByte(digit(c / 36))
		b.WriteByte(digit(c % 36))
	}
	return b.String()
}

func digit(v byte) byte {
	if v < 26 {
		return 'A' + v
	}
	return '0' + (v - 26)
}

type vector struct {
	name string
	ur   string
	want model.DecodeResult
}

func vectors() []vector {
	// {"txBlob": "1234ABCD"} as a definite-length CBOR map.
	fieldPayload := []byte{
		0xa1,
		0x66, 't', 'x', 'B', 'l', 'o', 'b',
		0x68, '1', '2', '3', '4', 'A', 'B', 'C', 'D',
	}
	longRun := "12" + strings.Repeat("AB", 60)

	return []vector{
		{
			name: "field_1",
			ur:   urtx.BytesPrefix + chunkEncode(fieldPayload),
			want: model.DecodeResult{Success: true, TxBlob: "1234ABCD"},
		},
		{
			name: "fallback_1",
			ur:   "XYZ" + longRun,
			want: model.DecodeResult{Success: true, TxBlob: longRun},
		},
		{
			name: "none_1",
			ur:   "###",
			want: model.DecodeResult{Success: false, Error: "unable to extract a transaction blob"},
		},
	}
}

func verify(v vector) error {
	blob, err := urtx.Decode(v.ur)
	if v.want.Success {
		if err != nil {
			return fmt.Errorf("%s: decode failed: %v", v.name, err)
		}
		if blob != v.want.TxBlob {
			return fmt.Errorf("%s: blob mismatch: got %s want %s", v.name, blob, v.want.TxBlob)
		}
		return nil
	}
	if err == nil {
		return fmt.Errorf("%s: expected failure, decoded %s", v.name, blob)
	}
	var ue *urtx.Error
	if !errors.As(err, &ue) {
		return fmt.Errorf("%s: untyped decode error: %v", v.name, err)
	}
	return nil
}

func main() {
	out := flag.String("out", filepath.Join("testdata", "conformance", "urtx"), "output directory")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		panic(err)
	}
	for _, v := range vectors() {
		if err := verify(v); err != nil {
			panic(err)
		}
		wantJSON, err := json.Marshal(v.want)
		if err != nil {
			panic(err)
		}
		if err := os.WriteFile(filepath.Join(*out, v.name+".ur"), []byte(v.ur), 0o644); err != nil {
			panic(err)
		}
		if err := os.WriteFile(filepath.Join(*out, v.name+".json"), wantJSON, 0o644); err != nil {
			panic(err)
		}
		fmt.Printf("%s: ok (%d chars)\n", v.name, len(v.ur))
	}
}
