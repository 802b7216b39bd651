package extract

import (
	"regexp"
	"strings"
)

// hexRun matches maximal runs of 100+ hex digits. 100 is below any real
// signed transaction's length, so shorter runs are noise by definition.
var hexRun = regexp.MustCompile(`[0-9A-Fa-f]{100,}`)

// blobPrefixes are the leading byte patterns of the transaction format
// family this decoder targets.
var blobPrefixes = []string{"12", "00", "01", "02", "03", "05"}

// ScanHexRun searches raw container text for something that looks like a
// transaction blob. It is the last-resort path when the payload cannot
// be decoded structurally: the first long hex run starting with a known
// prefix is returned upper-cased.
func ScanHexRun(text string) (string, bool) {
	for _, run := range hexRun.FindAllString(text, -1) {
		for _, p := range blobPrefixes {
			if strings.HasPrefix(run, p) {
				return strings.ToUpper(run), true
			}
		}
	}
	return "", false
}
