package extract

import (
	"errors"
	"fmt"
)

// ErrMarkerNotFound is returned when the decompressed bytes do not
// contain the marker prefix.
//
// This typically occurs when:
//   - The upstream installer was repackaged and the byte offset is stale
//   - The range was served from a different resource version
var ErrMarkerNotFound = errors.New("marker not found in decompressed data")

// ErrUnterminatedValue is returned when the marker prefix is found but
// no terminator byte follows before the end of the buffer.
var ErrUnterminatedValue = errors.New("no closing quote after marker")

// Kind classifies a pipeline failure.
//
// Every failure is terminal; the kind only determines the diagnostic
// message. Callers of the process observe success or failure, not the
// kind itself.
type Kind int

const (
	// KindNetwork covers transport and protocol failures during the
	// ranged fetch: DNS, connection, timeout, and non-success statuses.
	KindNetwork Kind = iota

	// KindDecompression covers fetched bytes that do not form a valid
	// compressed stream. This is the most likely failure in practice,
	// since any upstream repackaging invalidates the hardcoded offset.
	KindDecompression

	// KindMarkerNotFound covers decompressed bytes without the marker.
	KindMarkerNotFound

	// KindUnterminatedValue covers a marker with no closing delimiter.
	KindUnterminatedValue

	// KindUnclassified is the defensive catch-all for anything else.
	KindUnclassified
)

// String returns the diagnostic label for the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindDecompression:
		return "decompression error"
	case KindMarkerNotFound:
		return "marker not found"
	case KindUnterminatedValue:
		return "unterminated value"
	default:
		return "error"
	}
}

// Error is a pipeline failure tagged with its Kind.
//
// The pipeline wraps each step's error in an *Error so the top level
// can log a categorized message while callers still unwrap the
// underlying cause with errors.Is / errors.As.
type Error struct {
	// Kind is the failure classification.
	Kind Kind

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a pipeline error, or KindUnclassified for
// any error that did not come out of the pipeline tagged.
//
// Example:
//
//	_, err := extractor.Run(ctx)
//	if extract.KindOf(err) == extract.KindNetwork {
//	    // transport failure, offset still plausible
//	}
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnclassified
}
