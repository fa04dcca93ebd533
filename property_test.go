package seqreport

// Notes:
// - Property tests for the parser and table invariants:
//   - splitPipeLines and CountTable always produce positionally paired
//     tables (len(Keys) == len(Values), no empty cells from the parser)
//   - parseAlignmentSummary always yields the four categories in order and
//     never drops a well-formed pair

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestSplitPipeLinesPairingInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lines := rapid.SliceOfN(
			rapid.StringMatching(`[ a-z%().:|-]{0,40}`), 0, 30,
		).Draw(rt, "lines")

		table := splitPipeLines(strings.Join(lines, "\n"))

		if len(table.Keys) != len(table.Values) {
			rt.Fatalf("pairing broken: %d keys, %d values", len(table.Keys), len(table.Values))
		}
		for i := range table.Keys {
			if table.Keys[i] == "" || table.Values[i] == "" {
				rt.Fatalf("empty cell at row %d: %q=%q", i, table.Keys[i], table.Values[i])
			}
			if table.Keys[i] != strings.TrimSpace(table.Keys[i]) {
				rt.Fatalf("untrimmed key %q", table.Keys[i])
			}
		}
	})
}

func TestSplitPipeLinesKeepsWellFormedPairs(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 15).Draw(rt, "rows")
		var b strings.Builder
		keys := make([]string, n)
		values := make([]string, n)
		for i := 0; i < n; i++ {
			keys[i] = rapid.StringMatching(`[a-z][a-z ]{0,20}[a-z]`).Draw(rt, "key")
			values[i] = rapid.StringMatching(`[0-9]{1,9}%?`).Draw(rt, "value")
			b.WriteString(keys[i] + " | " + values[i] + "\n")
		}

		table := splitPipeLines(b.String())

		if table.Len() != n {
			rt.Fatalf("kept %d rows, want %d", table.Len(), n)
		}
		for i := 0; i < n; i++ {
			if table.Keys[i] != keys[i] || table.Values[i] != values[i] {
				rt.Fatalf("row %d = %q=%q, want %q=%q",
					i, table.Keys[i], table.Values[i], keys[i], values[i])
			}
		}
	})
}

func TestParseAlignmentSummaryCategoryOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[ a-zA-Z0-9%|:.\n-]{0,200}`).Draw(rt, "text")

		items := parseAlignmentSummary(text)

		want := []string{
			"Run Time",
			"Unique Reads and Splicing",
			"Multimapping Reads",
			"Unmapped Reads",
		}
		if len(items) != len(want) {
			rt.Fatalf("got %d categories, want %d", len(items), len(want))
		}
		for i, item := range items {
			if item.Label != want[i] {
				rt.Fatalf("category[%d] = %q, want %q", i, item.Label, want[i])
			}
			table, ok := item.Content.(TableContent)
			if !ok {
				rt.Fatalf("category[%d] content is %T", i, item.Content)
			}
			if len(table.Keys) != len(table.Values) {
				rt.Fatalf("category[%d] pairing broken", i)
			}
		}
	})
}

func TestCountTableNeverExceedsShorterInput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{1,15}`), 0, 10).Draw(rt, "keys")
		counts := rapid.SliceOfN(rapid.IntRange(-1000, 1000000), 0, 10).Draw(rt, "counts")

		table := CountTable(keys, counts)

		shorter := len(keys)
		if len(counts) < shorter {
			shorter = len(counts)
		}
		if table.Len() != shorter {
			rt.Fatalf("Len() = %d, want %d", table.Len(), shorter)
		}
		if len(table.Keys) != len(table.Values) {
			rt.Fatal("pairing broken")
		}
	})
}
