// Package http provides an HTTP client configured for ranged reads of
// the remote installer package.
//
// The Client in this package handles:
//   - Range headers for byte-subrange requests
//   - User-Agent headers
//   - Timeout handling
//   - Progress tracking while the range is read
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch a byte range with a progress callback
//	data, err := client.GetRange(ctx, url, offset, length, func(written, total int64) {
//	    fmt.Printf("%d / %d bytes\n", written, total)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for
// progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   &buf,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
