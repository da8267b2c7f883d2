package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/klauspost/compress/zlib"

	httpclient "github.com/handiism/cfkey-extractor/internal/http"
	"github.com/handiism/cfkey-extractor/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Extractor runs the fetch-decompress-scan pipeline that pulls the
// embedded API key out of the remote installer package.
type Extractor struct {
	target model.Target
	marker model.Marker

	httpClient *httpclient.Client

	receivedBytes int64
	totalBytes    int64

	onProgress func(ProgressEvent)
}

// NewExtractor creates an Extractor for the given target and marker.
//
// The onProgress callback receives a ProgressEvent for each pipeline
// step; pass nil to disable progress reporting.
func NewExtractor(target model.Target, marker model.Marker, onProgress func(ProgressEvent)) *Extractor {
	return &Extractor{
		target:     target,
		marker:     marker,
		httpClient: httpclient.NewClient(),
		onProgress: onProgress,
	}
}

// Target returns the target descriptor this extractor reads from.
func (e *Extractor) Target() model.Target {
	return e.target
}

// GetProgress returns current fetch progress in bytes.
//
// Total is the Content-Length reported by the server, or 0 before the
// response arrives (and when the server reports none). Safe to call
// from another goroutine while Run is in flight.
func (e *Extractor) GetProgress() (received, total int64) {
	return atomic.LoadInt64(&e.receivedBytes), atomic.LoadInt64(&e.totalBytes)
}

// Run executes the pipeline: ranged fetch, decompression, marker scan.
//
// The pipeline is fail-fast: the first failing step aborts the run and
// later steps are never attempted. On failure the returned error is an
// *Error tagged with the step's Kind; no key is produced.
//
// Steps:
//  1. GET the target's byte range (Range header, 30s timeout).
//  2. Inflate the fetched bytes as a zlib stream.
//  3. Find the marker prefix and extract the value up to the
//     terminator byte.
//
// Example:
//
//	extractor := extract.NewExtractor(model.DefaultTarget(), model.DefaultMarker(),
//	    func(event extract.ProgressEvent) {
//	        fmt.Println(event.Message)
//	    })
//
//	key, err := extractor.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(key)
func (e *Extractor) Run(ctx context.Context) (model.APIKey, error) {
	e.progress(ProgressEvent{Message: fmt.Sprintf("Fetching CurseForge API key from %s", e.target.URL), Level: LevelInfo})
	e.progress(ProgressEvent{Message: fmt.Sprintf("Requesting bytes %d-%d", e.target.Offset, e.target.Offset+e.target.Length), Level: LevelVerbose})

	raw, err := e.fetch(ctx)
	if err != nil {
		e.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return model.APIKey{}, err
	}
	e.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded %d bytes (compressed)", len(raw)), Level: LevelInfo})

	data, err := e.inflate(raw)
	if err != nil {
		e.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return model.APIKey{}, err
	}
	e.progress(ProgressEvent{Message: fmt.Sprintf("Decompressed to %d bytes", len(data)), Level: LevelInfo})

	key, err := e.scan(data)
	if err != nil {
		e.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return model.APIKey{}, err
	}
	e.progress(ProgressEvent{Message: fmt.Sprintf("API key: %s", key.Key), Level: LevelSuccess})

	return key, nil
}

// fetch performs the ranged GET. Any failure is a network-kind error.
func (e *Extractor) fetch(ctx context.Context) ([]byte, error) {
	raw, err := e.httpClient.GetRange(ctx, e.target.URL, e.target.Offset, e.target.Length, func(written, total int64) {
		atomic.StoreInt64(&e.receivedBytes, written)
		atomic.StoreInt64(&e.totalBytes, total)
	})
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("ranged fetch: %w", err)}
	}
	return raw, nil
}

// inflate decompresses the fetched bytes as a zlib stream.
//
// The range points into a larger compressed container, so the stream
// may be followed by unrelated trailing bytes; reading stops at the
// stream's own end. Any failure is a decompression-kind error, the
// expected outcome when the hardcoded offset goes stale.
func (e *Extractor) inflate(raw []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &Error{Kind: KindDecompression, Err: fmt.Errorf("inflate: %w", err)}
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &Error{Kind: KindDecompression, Err: fmt.Errorf("inflate: %w", err)}
	}
	return data, nil
}

// scan locates the marker and extracts the credential.
func (e *Extractor) scan(data []byte) (model.APIKey, error) {
	value, err := scanKey(data, e.marker)
	if err != nil {
		kind := KindUnclassified
		switch {
		case errors.Is(err, ErrMarkerNotFound):
			kind = KindMarkerNotFound
		case errors.Is(err, ErrUnterminatedValue):
			kind = KindUnterminatedValue
		}
		return model.APIKey{}, &Error{Kind: kind, Err: err}
	}
	return model.APIKey{Key: value}, nil
}

func (e *Extractor) progress(event ProgressEvent) {
	if e.onProgress != nil {
		e.onProgress(event)
	}
}
