package yamlutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("name: reads\ncount: 42\n"), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.Name != "reads" || s.Count != 42 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{
			name:    "nil data",
			data:    nil,
			dest:    &sample{},
			wantErr: ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &sample{},
			wantErr: ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: x"),
			dest:    nil,
			wantErr: ErrNilDestination,
		},
		{
			name:    "oversized input",
			data:    bytes.Repeat([]byte("a"), MaxInputSize+1),
			dest:    &sample{},
			wantErr: ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Unmarshal(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	data := []byte("name: x\nunexpected: y\n")

	var s sample
	if err := Unmarshal(data, &s); err != nil {
		t.Errorf("lenient Unmarshal rejected unknown field: %v", err)
	}
	if err := UnmarshalStrict(data, &s); err == nil {
		t.Error("UnmarshalStrict accepted unknown field")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := sample{Name: "run 1", Count: 7}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "run 1") {
		t.Errorf("marshaled output = %q", data)
	}

	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}
