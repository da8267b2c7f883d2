package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func TestClient_GetRange(t *testing.T) {
	payload := []byte("compressed-bytes-go-here")

	tests := []struct {
		name      string
		status    int
		body      []byte
		wantErr   bool
		wantRange string
	}{
		{
			name:      "partial content accepted",
			status:    http.StatusPartialContent,
			body:      payload,
			wantErr:   false,
			wantRange: "bytes=100-150",
		},
		{
			name:    "full response accepted",
			status:  http.StatusOK,
			body:    payload,
			wantErr: false,
		},
		{
			name:    "not found rejected",
			status:  http.StatusNotFound,
			wantErr: true,
		},
		{
			name:    "range not satisfiable rejected",
			status:  http.StatusRequestedRangeNotSatisfiable,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRange string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotRange = r.Header.Get("Range")
				w.WriteHeader(tt.status)
				w.Write(tt.body)
			}))
			defer server.Close()

			client := NewClient()
			data, err := client.GetRange(context.Background(), server.URL, 100, 50, nil)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if !bytes.Equal(data, tt.body) {
				t.Errorf("got %q, want %q", data, tt.body)
			}

			if tt.wantRange != "" && gotRange != tt.wantRange {
				t.Errorf("Range header = %q, want %q", gotRange, tt.wantRange)
			}
		})
	}
}

func TestClient_GetRange_Progress(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 4096)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		w.WriteHeader(http.StatusPartialContent)
		w.Write(payload)
	}))
	defer server.Close()

	var lastWritten, lastTotal int64
	client := NewClient()
	data, err := client.GetRange(context.Background(), server.URL, 0, int64(len(payload)-1), func(written, total int64) {
		lastWritten = written
		lastTotal = total
	})
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}

	if len(data) != len(payload) {
		t.Errorf("got %d bytes, want %d", len(data), len(payload))
	}
	if lastWritten != int64(len(payload)) {
		t.Errorf("final progress = %d, want %d", lastWritten, len(payload))
	}
	if lastTotal != int64(len(payload)) {
		t.Errorf("progress total = %d, want %d", lastTotal, len(payload))
	}
}

func TestClient_GetRange_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPartialContent)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient()
	if _, err := client.GetRange(ctx, server.URL, 0, 10, nil); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestProgressWriter(t *testing.T) {
	var buf bytes.Buffer
	var updates int

	pw := &ProgressWriter{
		Writer: &buf,
		Total:  10,
		OnUpdate: func(written, total int64) {
			updates++
		},
	}

	pw.Write([]byte("hello"))
	pw.Write([]byte("world"))

	if buf.String() != "helloworld" {
		t.Errorf("wrote %q, want %q", buf.String(), "helloworld")
	}
	if pw.Written != 10 {
		t.Errorf("Written = %d, want 10", pw.Written)
	}
	if updates != 2 {
		t.Errorf("OnUpdate called %d times, want 2", updates)
	}
}
