package seqreport

// Notes:
// - Tests CountTable's positional pairing and truncation behavior
// - Table length invariant (len(Keys) == len(Values)) must hold for every
//   CountTable output regardless of input shape

import "testing"

func TestCountTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		keys       []string
		counts     []int
		wantKeys   []string
		wantValues []string
	}{
		{
			name:       "equal lengths",
			keys:       []string{"no gene", "low poly t"},
			counts:     []int{42, 7},
			wantKeys:   []string{"no gene", "low poly t"},
			wantValues: []string{"42", "7"},
		},
		{
			name:       "extra counts dropped",
			keys:       []string{"only key"},
			counts:     []int{1, 2, 3},
			wantKeys:   []string{"only key"},
			wantValues: []string{"1"},
		},
		{
			name:       "extra keys dropped",
			keys:       []string{"a", "b", "c"},
			counts:     []int{9},
			wantKeys:   []string{"a"},
			wantValues: []string{"9"},
		},
		{
			name:   "both empty",
			keys:   nil,
			counts: nil,
		},
		{
			name:       "zero and negative counts format verbatim",
			keys:       []string{"zero", "negative"},
			counts:     []int{0, -3},
			wantKeys:   []string{"zero", "negative"},
			wantValues: []string{"0", "-3"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := CountTable(tt.keys, tt.counts)

			if len(table.Keys) != len(table.Values) {
				t.Fatalf("pairing invariant broken: %d keys, %d values",
					len(table.Keys), len(table.Values))
			}
			if table.Len() != len(tt.wantKeys) {
				t.Fatalf("Len() = %d, want %d", table.Len(), len(tt.wantKeys))
			}
			for i := range tt.wantKeys {
				if table.Keys[i] != tt.wantKeys[i] {
					t.Errorf("Keys[%d] = %q, want %q", i, table.Keys[i], tt.wantKeys[i])
				}
				if table.Values[i] != tt.wantValues[i] {
					t.Errorf("Values[%d] = %q, want %q", i, table.Values[i], tt.wantValues[i])
				}
			}
		})
	}
}

func TestCountTableDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "b"}
	table := CountTable(keys, []int{1, 2})

	keys[0] = "mutated"
	if table.Keys[0] != "a" {
		t.Errorf("table aliases caller slice: Keys[0] = %q, want %q", table.Keys[0], "a")
	}
}
