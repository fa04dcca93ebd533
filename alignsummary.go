package seqreport

import "strings"

// Marker strings splitting a STAR final log into its four blocks. Order is
// fixed; parsing is positional.
const (
	markerUniqueReads = "UNIQUE READS:"
	markerMultiReads  = "MULTI-MAPPING READS:"
	markerUnmapped    = "UNMAPPED READS:"
)

// Category labels for the four alignment summary tables, in display order.
const (
	categoryRunTime      = "Run Time"
	categoryUniqueReads  = "Unique Reads and Splicing"
	categoryMultimapping = "Multimapping Reads"
	categoryUnmapped     = "Unmapped Reads"
)

// parseAlignmentSummary splits alignment summary text at the known marker
// strings and parses each block's pipe-delimited lines into a table.
//
// The split is marker-order-dependent: when a marker is absent, everything
// up to the next marker (or end of input) stays with the preceding block and
// the absent marker's category becomes an empty table. Lines without a pipe
// are skipped silently; this leniency is deliberate.
func parseAlignmentSummary(text string) []Item {
	timeBlock, rest, _ := strings.Cut(text, markerUniqueReads)
	uniqueBlock, rest, _ := strings.Cut(rest, markerMultiReads)
	multiBlock, unmappedBlock, _ := strings.Cut(rest, markerUnmapped)

	return []Item{
		{Label: categoryRunTime, Content: splitPipeLines(timeBlock)},
		{Label: categoryUniqueReads, Content: splitPipeLines(uniqueBlock)},
		{Label: categoryMultimapping, Content: splitPipeLines(multiBlock)},
		{Label: categoryUnmapped, Content: splitPipeLines(unmappedBlock)},
	}
}

// splitPipeLines parses "key | value" lines into a positionally paired
// table. The key is the text before the first pipe, the value the text
// between the first and second pipe. Pairs where either side trims to empty
// are dropped whole, keeping keys and values aligned.
func splitPipeLines(block string) TableContent {
	var t TableContent
	for _, line := range strings.Split(block, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			continue
		}
		t.Keys = append(t.Keys, key)
		t.Values = append(t.Values, value)
	}
	return t
}
