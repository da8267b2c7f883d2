package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations for fetching a byte range of the remote
// installer package.
//
// Client provides:
//   - A fixed request timeout
//   - Configured User-Agent header
//   - Ranged reads via the Range header with progress tracking
//
// Example usage:
//
//	client := NewClient()
//
//	data, err := client.GetRange(ctx, target.URL, target.Offset, target.Length,
//	    func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    })
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client for ranged installer fetches.
//
// The client is configured with:
//   - 30 second timeout
//   - "cfkey-extractor" User-Agent header
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "cfkey-extractor",
	}
}

// ProgressWriter wraps a writer to track fetch progress.
//
// Use this to monitor a download by providing an OnUpdate callback
// that receives the current bytes written and total expected bytes.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: &buf,
//	    Total:  contentLength,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    },
//	}
//	io.Copy(pw, response.Body)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	// Zero when the server did not report a length.
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	// Parameters are (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// GetRange performs a GET request for the byte range offset through
// offset+length inclusive and returns the response body.
//
// The request carries a "Range: bytes=<offset>-<offset+length>" header
// and the configured User-Agent. Servers that honor the range reply
// with 206 Partial Content; a plain 200 OK is also accepted, since some
// servers ignore Range and return the full body.
//
// Returns an error if:
//   - The request fails (DNS, connection, timeout, cancellation)
//   - The response status is not 206 or 200
//   - Reading the body fails
//
// The optional onProgress callback receives (bytesRead, totalExpected)
// after each read; total is the Content-Length, or 0 if unknown.
// Pass nil to disable progress tracking.
//
// Example:
//
//	data, err := client.GetRange(ctx, url, 82926761, 84196, nil)
func (c *Client) GetRange(ctx context.Context, url string, offset, length int64, onProgress func(written, total int64)) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", offset, offset+length))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusPartialContent && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(resp.ContentLength))
	}

	var writer io.Writer = &buf
	if onProgress != nil {
		total := resp.ContentLength
		if total < 0 {
			total = 0
		}
		writer = &ProgressWriter{
			Writer:   &buf,
			Total:    total,
			OnUpdate: onProgress,
		}
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
