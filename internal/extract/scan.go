package extract

import (
	"bytes"
	"fmt"

	"github.com/handiism/cfkey-extractor/internal/model"
)

// scanKey extracts the credential from decompressed installer bytes.
//
// The installer embeds the key inside a JSON blob like this:
//
//	{"cfCoreApiKey":"<value>", ...}
//
// This function finds the first occurrence of the marker prefix, then
// scans forward for the terminator byte. The credential is the bytes
// strictly between the two, returned without trimming or unescaping.
//
// Returns ErrMarkerNotFound if the prefix is absent, and
// ErrUnterminatedValue if no terminator follows the prefix before the
// end of the buffer.
func scanKey(buf []byte, marker model.Marker) (string, error) {
	prefix := []byte(marker.Prefix)

	startIndex := bytes.Index(buf, prefix)
	if startIndex == -1 {
		return "", fmt.Errorf("%w: %s", ErrMarkerNotFound, marker.Prefix)
	}

	startIndex += len(prefix)
	remaining := buf[startIndex:]

	endIndex := bytes.IndexByte(remaining, marker.Terminator)
	if endIndex == -1 {
		return "", ErrUnterminatedValue
	}

	return string(remaining[:endIndex]), nil
}
