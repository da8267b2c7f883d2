package extract

import (
	"errors"
	"testing"

	"github.com/handiism/cfkey-extractor/internal/model"
)

func TestScanKey(t *testing.T) {
	marker := model.DefaultMarker()

	tests := []struct {
		name    string
		buf     string
		want    string
		wantErr error
	}{
		{
			name: "key inside json blob",
			buf:  `...{"cfCoreApiKey":"abc123XYZ"}...`,
			want: "abc123XYZ",
		},
		{
			name: "key at start of buffer",
			buf:  `"cfCoreApiKey":"first-key"`,
			want: "first-key",
		},
		{
			name: "first occurrence wins",
			buf:  `"cfCoreApiKey":"one" "cfCoreApiKey":"two"`,
			want: "one",
		},
		{
			name: "value kept verbatim",
			buf:  `{"cfCoreApiKey":"  $2a$10 spaced A "}`,
			want: `  $2a$10 spaced A `,
		},
		{
			name: "empty value",
			buf:  `{"cfCoreApiKey":""}`,
			want: "",
		},
		{
			name:    "marker absent",
			buf:     `{"someOtherKey":"value"}`,
			wantErr: ErrMarkerNotFound,
		},
		{
			name:    "empty buffer",
			buf:     "",
			wantErr: ErrMarkerNotFound,
		},
		{
			name:    "unterminated value",
			buf:     `{"cfCoreApiKey":"runs-to-end-of-buffer`,
			wantErr: ErrUnterminatedValue,
		},
		{
			name:    "marker at very end",
			buf:     `{"cfCoreApiKey":"`,
			wantErr: ErrUnterminatedValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanKey([]byte(tt.buf), marker)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if got != tt.want {
				t.Errorf("scanKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanKey_Deterministic(t *testing.T) {
	marker := model.DefaultMarker()
	buf := []byte(`header{"cfCoreApiKey":"stable-key"}trailer`)

	first, err := scanKey(buf, marker)
	if err != nil {
		t.Fatalf("scanKey failed: %v", err)
	}

	second, err := scanKey(buf, marker)
	if err != nil {
		t.Fatalf("scanKey failed on rerun: %v", err)
	}

	if first != second {
		t.Errorf("scanKey not deterministic: %q vs %q", first, second)
	}
}
