package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{
			name:   "iso tokens",
			format: "YYYY-MM-DD",
			want:   "2006-01-02",
		},
		{
			name:   "long month",
			format: "MMMM D, YYYY",
			want:   "January 2, 2006",
		},
		{
			name:   "short month and two digit year",
			format: "MMM YY",
			want:   "Jan 06",
		},
		{
			name:   "single digit tokens",
			format: "M/D",
			want:   "1/2",
		},
		{
			name:   "literal characters preserved",
			format: "run YYYY",
			want:   "run 2006",
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "format too long",
			format:  strings.Repeat("Y", MaxDateFormatLength+1),
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	// Fixed time for deterministic tests: 2026-08-31
	fixedTime := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{
			name:  "empty string passthrough",
			value: "",
			want:  "",
		},
		{
			name:  "literal date passthrough",
			value: "2026-01-01",
			want:  "2026-01-01",
		},
		{
			name:  "arbitrary text passthrough",
			value: "Q3 2026",
			want:  "Q3 2026",
		},
		{
			name:  "auto uses default ISO format",
			value: "auto",
			want:  "2026-08-31",
		},
		{
			name:  "AUTO is case insensitive",
			value: "AUTO",
			want:  "2026-08-31",
		},
		{
			name:  "auto with custom format",
			value: "auto:DD/MM/YYYY",
			want:  "31/08/2026",
		},
		{
			name:  "auto:iso preset",
			value: "auto:iso",
			want:  "2026-08-31",
		},
		{
			name:  "auto:us preset",
			value: "auto:us",
			want:  "08/31/2026",
		},
		{
			name:  "auto:long preset",
			value: "auto:long",
			want:  "August 31, 2026",
		},
		{
			name:  "autoX invalid syntax passes through",
			value: "autoX",
			want:  "autoX",
		},
		{
			name:    "auto with empty format returns error",
			value:   "auto:",
			wantErr: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixedTime)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveDate(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("ResolveDate(%q) unexpected error: %v", tt.value, err)
				return
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
