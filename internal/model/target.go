package model

import "fmt"

// Target identifies the byte region of a remote resource that holds the
// embedded credential.
//
// A Target is an immutable triple of resource URL, byte offset, and
// byte length. It is created once at startup and never mutated; the
// pipeline only reads from it.
//
// Example:
//
//	target := model.DefaultTarget()
//	req.Header.Set("Range", target.RangeHeader())
type Target struct {
	// URL is the address of the remote installer package.
	URL string

	// Offset is the position of the first byte of the compressed
	// region, counted from the start of the resource.
	Offset int64

	// Length is the size of the compressed region in bytes. The
	// requested range covers Offset through Offset+Length inclusive.
	Length int64
}

// DefaultTarget returns the compiled-in target for the CurseForge
// Linux AppImage.
//
// The offset and length were discovered out-of-band by inspecting the
// installer's squashfs payload; they point at the zlib block that
// contains the embedded API key.
func DefaultTarget() Target {
	return Target{
		URL:    "https://curseforge.overwolf.com/electron/linux/CurseForge-0.198.1-21.AppImage",
		Offset: 82926761,
		Length: 84196,
	}
}

// RangeHeader returns the HTTP Range header value for this target,
// requesting Offset through Offset+Length inclusive.
//
// Example:
//
//	target.RangeHeader() // "bytes=82926761-83010957"
func (t Target) RangeHeader() string {
	return fmt.Sprintf("bytes=%d-%d", t.Offset, t.Offset+t.Length)
}

// Marker describes how the credential is delimited inside the
// decompressed bytes.
//
// The credential is the byte run strictly between the first occurrence
// of Prefix and the next Terminator byte after it.
type Marker struct {
	// Prefix is the literal byte sequence immediately preceding the
	// credential, including any surrounding quoting.
	Prefix string

	// Terminator is the byte that ends the credential.
	Terminator byte
}

// DefaultMarker returns the marker for the cfCoreApiKey JSON field.
//
// The prefix includes the field's closing quote, colon, and the value's
// opening quote exactly as they appear in the embedded JSON:
//
//	"cfCoreApiKey":"<value>"
func DefaultMarker() Marker {
	return Marker{
		Prefix:     `"cfCoreApiKey":"`,
		Terminator: '"',
	}
}

// APIKey is the extracted credential.
//
// It holds the UTF-8 string found between the marker prefix and the
// terminator, with no trimming or unescaping applied.
type APIKey struct {
	// Key is the credential value.
	Key string
}

// String returns the raw key value.
func (k APIKey) String() string {
	return k.Key
}
