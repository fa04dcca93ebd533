package seqreport

// Notes:
// - Tests parseAlignmentSummary's positional marker split against the four
//   fixed categories, including degraded inputs (missing markers, garbage)
// - Tests splitPipeLines's pairing behavior: lines without pipes are
//   skipped, pairs with an empty side are dropped whole

import (
	"testing"
)

func TestParseAlignmentSummary(t *testing.T) {
	t.Parallel()

	input := "5\n" +
		"UNIQUE READS:\n" +
		"a | 1\n" +
		"b | 2\n" +
		"MULTI-MAPPING READS:\n" +
		"c | 3\n" +
		"UNMAPPED READS:\n" +
		"d | 4\n"

	items := parseAlignmentSummary(input)

	if len(items) != 4 {
		t.Fatalf("parseAlignmentSummary returned %d items, want 4", len(items))
	}

	wantLabels := []string{
		"Run Time",
		"Unique Reads and Splicing",
		"Multimapping Reads",
		"Unmapped Reads",
	}
	wantKeys := [][]string{nil, {"a", "b"}, {"c"}, {"d"}}
	wantValues := [][]string{nil, {"1", "2"}, {"3"}, {"4"}}

	for i, item := range items {
		if item.Label != wantLabels[i] {
			t.Errorf("items[%d].Label = %q, want %q", i, item.Label, wantLabels[i])
		}
		table, ok := item.Content.(TableContent)
		if !ok {
			t.Fatalf("items[%d].Content is %T, want TableContent", i, item.Content)
		}
		assertStringSlices(t, "keys", i, table.Keys, wantKeys[i])
		assertStringSlices(t, "values", i, table.Values, wantValues[i])
	}
}

func TestParseAlignmentSummaryMissingMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		// per-category expected row counts, in display order
		wantRows [4]int
	}{
		{
			name:     "empty input yields four empty tables",
			input:    "",
			wantRows: [4]int{0, 0, 0, 0},
		},
		{
			name:     "no markers keeps all rows in run time",
			input:    "x | 1\ny | 2\n",
			wantRows: [4]int{2, 0, 0, 0},
		},
		{
			name: "missing middle marker keeps rows with preceding block",
			input: "UNIQUE READS:\n" +
				"a | 1\n" +
				"c | 3\n" +
				"UNMAPPED READS:\n" +
				"d | 4\n",
			wantRows: [4]int{0, 2, 0, 1},
		},
		{
			name: "only last marker present",
			input: "UNMAPPED READS:\n" +
				"d | 4\n",
			wantRows: [4]int{0, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := parseAlignmentSummary(tt.input)
			if len(items) != 4 {
				t.Fatalf("got %d items, want 4", len(items))
			}
			for i, item := range items {
				table := item.Content.(TableContent)
				if table.Len() != tt.wantRows[i] {
					t.Errorf("category %q has %d rows, want %d",
						item.Label, table.Len(), tt.wantRows[i])
				}
			}
		})
	}
}

func TestSplitPipeLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		block      string
		wantKeys   []string
		wantValues []string
	}{
		{
			name:       "basic pairs",
			block:      "reads in | 100\nmapped % | 95.5%",
			wantKeys:   []string{"reads in", "mapped %"},
			wantValues: []string{"100", "95.5%"},
		},
		{
			name:       "lines without pipe skipped",
			block:      "header line\na | 1\nanother stray line",
			wantKeys:   []string{"a"},
			wantValues: []string{"1"},
		},
		{
			name:       "pair with empty value dropped whole",
			block:      "a | 1\nempty key side |\nb | 2",
			wantKeys:   []string{"a", "b"},
			wantValues: []string{"1", "2"},
		},
		{
			name:       "pair with empty key dropped whole",
			block:      " | orphan value\nc | 3",
			wantKeys:   []string{"c"},
			wantValues: []string{"3"},
		},
		{
			name:       "value is text between first and second pipe",
			block:      "rate | 12 | extra | junk",
			wantKeys:   []string{"rate"},
			wantValues: []string{"12"},
		},
		{
			name:       "whitespace trimmed from both sides",
			block:      "   spaced key   |   spaced value   ",
			wantKeys:   []string{"spaced key"},
			wantValues: []string{"spaced value"},
		},
		{
			name:  "empty block",
			block: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := splitPipeLines(tt.block)
			assertStringSlices(t, "keys", -1, table.Keys, tt.wantKeys)
			assertStringSlices(t, "values", -1, table.Values, tt.wantValues)
		})
	}
}

// assertStringSlices compares two string slices element-wise.
func assertStringSlices(t *testing.T, what string, index int, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("%s[%d]: got %d entries %v, want %d %v", what, index, len(got), got, len(want), want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d][%d] = %q, want %q", what, index, i, got[i], want[i])
		}
	}
}
