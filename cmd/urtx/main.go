package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"xdao.co/urtx/blobid"
	"xdao.co/urtx/extract"
	"xdao.co/urtx/model"
	"xdao.co/urtx/urtx"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "scan":
		return cmdScan(args[1:], out, errOut)
	case "blob-cid":
		return cmdBlobCID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "urtx: UR:BYTES transaction blob decoder")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  urtx decode 'UR:BYTES/...'")
	fmt.Fprintln(w, "  urtx scan <text>")
	fmt.Fprintln(w, "  urtx blob-cid <hex-blob>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - decode prints a JSON result on stdout; a failed decode is a")
	fmt.Fprintln(w, "    normal exit-0 run whose JSON carries success=false")
	fmt.Fprintln(w, "  - blob-cid prints the CIDv1 (raw+sha2-256) of the blob's bytes")
}

// cmdDecode accepts exactly one container argument and always emits a
// DecodeResult JSON document. Only a wrong argument count exits nonzero;
// unexpected faults are captured as an internal-error result.
func cmdDecode(args []string, out io.Writer, errOut io.Writer) (code int) {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: urtx decode 'UR:BYTES/...'")
		return 2
	}
	urData := fs.Arg(0)

	defer func() {
		if r := recover(); r != nil {
			writeResult(out, model.ResultErr(fmt.Sprintf("decoding failed: %v", r)))
			code = 0
		}
	}()

	blob, err := urtx.Decode(urData)
	if err != nil {
		var ue *urtx.Error
		if errors.As(err, &ue) && ue.Kind != urtx.KindInternal {
			writeResult(out, model.ResultErr("unable to extract a transaction blob"))
		} else {
			writeResult(out, model.ResultErr(fmt.Sprintf("decoding failed: %v", err)))
		}
		return 0
	}

	res := model.ResultOK(blob, "successfully decoded UR:BYTES container")
	if id, cerr := blobid.FromHexBlob(blob); cerr == nil {
		res.BlobCID = id.String()
	}
	writeResult(out, res)
	return 0
}

func cmdScan(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: urtx scan <text>")
		return 2
	}
	blob, ok := extract.ScanHexRun(fs.Arg(0))
	if !ok {
		writeResult(out, model.ResultErr("no transaction-like hex run found"))
		return 0
	}
	writeResult(out, model.ResultOK(blob, "hex run matched by prefix scan"))
	return 0
}

func cmdBlobCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("blob-cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: urtx blob-cid <hex-blob>")
		return 2
	}
	id, err := blobid.FromHexBlob(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid blob: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, id.String())
	return 0
}

func writeResult(out io.Writer, res model.DecodeResult) {
	b, err := json.Marshal(res)
	if err != nil {
		// DecodeResult marshaling cannot fail; keep the contract anyway.
		fmt.Fprintf(out, `{"success":false,"error":"encoding failed"}`+"\n")
		return
	}
	_, _ = fmt.Fprintln(out, string(b))
}
