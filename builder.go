package seqreport

import (
	"fmt"
	"html"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/alnah/go-seqreport/internal/diagplot"
)

// Section titles for the builder-produced pages.
const (
	titleAlignment      = "STAR Alignment Summary"
	titleStatusFilters  = "Initial Filtering"
	titleCellBarcode    = "Cell Barcode Correction"
	titleRMT            = "RMT Barcode Correction"
	titleMultialignment = "Multialignment Resolution"
	titleCellFiltering  = "Cell Filtering"
	titleCellSummary    = "Cell Summary"
	titleRunLog         = "Pipeline Log"
	titleRunNotes       = "Run Notes"
)

// Row labels for the initial-filtering table, in display order.
var statusFilterKeys = []string{
	"length of read array",
	"no gene",
	"gene not unique",
	"primer missing",
	"low poly t",
}

// Descriptions holds the human-readable description, caption, and legend
// strings the builder attaches to sections. They are configuration-level
// defaults, overridable via WithDescriptions (or the config file in the
// CLI), so rendering logic never carries magic literals.
type Descriptions struct {
	StatusFilters        string
	CellBarcode          string
	RMT                  string
	Multialignment       string
	CellFiltering        string
	CellFilteringCaption string
	CellFilteringLegend  string
	CellSizeCaption      string
	CellSizeLegend       string
}

// DefaultDescriptions returns the built-in description set. The initial
// filtering text explains each heuristic; the remaining entries are
// placeholders pending real copy.
func DefaultDescriptions() Descriptions {
	return Descriptions{
		StatusFilters: "Initial filters are run over the sam file while the " +
			"read database is being constructed. These filters indicate heuristic " +
			"reasons why reads should be omitted from downstream operations:\n" +
			"no gene: Regardless of the read's genomic alignment status, there was " +
			"no transcriptomic alignment for this read.\n" +
			"gene not unique: more than one alignment was recovered for this read. " +
			"Multi-alignments are resolved downstream.\n" +
			"primer missing: the spacer sequence could not be identified, so " +
			"neither a cell barcode nor an rmt were recorded for this read.\n" +
			"low poly t: the primer did not display enough t-sequence in the " +
			"primer tail, where these nucleotides are expected. This indicates an " +
			"increased probability that this primer randomly primed, instead of " +
			"hybridizing with the poly-a tail of an mRNA molecule.",
		CellBarcode:          "description for cell barcode correction",
		RMT:                  "description for rmt correction",
		Multialignment:       "description for multialignment correction",
		CellFiltering:        "description for cell filtering",
		CellFilteringCaption: "cell filtering figure",
		CellFilteringLegend:  "image legend",
		CellSizeCaption:      "cell size figure",
		CellSizeLegend:       "histogram legend",
	}
}

// FilterCounts carries the four heuristic filter counters computed by the
// read-filtering stage. Each is the number of records whose status bitmask
// has the corresponding bit set; the bitmask logic itself lives with the
// caller, never here.
type FilterCounts struct {
	NoGene        int
	GeneNotUnique int
	PrimerMissing int
	LowPolyT      int
}

// Builder normalizes raw pipeline artifacts into report sections. It holds
// the configurable description strings; the construction helpers themselves
// never mutate their inputs.
type Builder struct {
	desc  Descriptions
	notes *notesConverter
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithDescriptions overrides the builder's description strings. Zero-valued
// fields fall back to the defaults.
func WithDescriptions(d Descriptions) BuilderOption {
	return func(b *Builder) {
		b.desc = mergeDescriptions(b.desc, d)
	}
}

// NewBuilder creates a Builder with the default description set.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		desc:  DefaultDescriptions(),
		notes: newNotesConverter(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// mergeDescriptions overlays non-empty fields of over onto base.
func mergeDescriptions(base, over Descriptions) Descriptions {
	if over.StatusFilters != "" {
		base.StatusFilters = over.StatusFilters
	}
	if over.CellBarcode != "" {
		base.CellBarcode = over.CellBarcode
	}
	if over.RMT != "" {
		base.RMT = over.RMT
	}
	if over.Multialignment != "" {
		base.Multialignment = over.Multialignment
	}
	if over.CellFiltering != "" {
		base.CellFiltering = over.CellFiltering
	}
	if over.CellFilteringCaption != "" {
		base.CellFilteringCaption = over.CellFilteringCaption
	}
	if over.CellFilteringLegend != "" {
		base.CellFilteringLegend = over.CellFilteringLegend
	}
	if over.CellSizeCaption != "" {
		base.CellSizeCaption = over.CellSizeCaption
	}
	if over.CellSizeLegend != "" {
		base.CellSizeLegend = over.CellSizeLegend
	}
	return base
}

// FromAlignmentSummary creates a section from an alignment summary file in
// STAR's final-log format: four pipe-delimited blocks split at known marker
// strings. Missing markers and malformed lines degrade to empty or shorter
// tables, never to an error; only a failed file read is reported.
func (b *Builder) FromAlignmentSummary(path, filename string) (*Section, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-supplied pipeline artifact
	if err != nil {
		return nil, fmt.Errorf("reading alignment summary: %w", err)
	}
	return NewSection(titleAlignment, parseAlignmentSummary(string(data)), filename)
}

// FromStatusFilters creates the initial-filtering section from the total
// record count and the four precomputed heuristic counters.
func (b *Builder) FromStatusFilters(total int, c FilterCounts, filename string) (*Section, error) {
	table := CountTable(statusFilterKeys, []int{
		total,
		c.NoGene,
		c.GeneNotUnique,
		c.PrimerMissing,
		c.LowPolyT,
	})
	return NewSection(titleStatusFilters, []Item{
		{Label: "Description", Content: textFromPlain(b.desc.StatusFilters)},
		{Label: "Results", Content: table},
	}, filename)
}

// FromCellBarcodeCorrection creates the cell barcode correction status page
// from the precomputed error count.
func (b *Builder) FromCellBarcodeCorrection(cellErrors int, filename string) (*Section, error) {
	return NewSection(titleCellBarcode, []Item{
		{Label: "Description", Content: textFromPlain(b.desc.CellBarcode)},
		{Label: "Results", Content: CountTable([]string{"cell error"}, []int{cellErrors})},
	}, filename)
}

// FromRMTCorrection creates the RMT correction status page from the
// precomputed error count.
func (b *Builder) FromRMTCorrection(rmtErrors int, filename string) (*Section, error) {
	return NewSection(titleRMT, []Item{
		{Label: "Description", Content: textFromPlain(b.desc.RMT)},
		{Label: "Results", Content: CountTable([]string{"rmt error"}, []int{rmtErrors})},
	}, filename)
}

// FromResolveMultipleAlignments creates a section reporting resolved
// multi-alignments. results is an ordered label/count mapping; its order is
// preserved in the rendered table.
func (b *Builder) FromResolveMultipleAlignments(results []CountEntry, filename string) (*Section, error) {
	keys := make([]string, len(results))
	counts := make([]int, len(results))
	for i, e := range results {
		keys[i] = e.Label
		counts[i] = e.Count
	}
	return NewSection(titleMultialignment, []Item{
		{Label: "Description", Content: textFromPlain(b.desc.Multialignment)},
		{Label: "Results", Content: CountTable(keys, counts)},
	}, filename)
}

// FromCellFiltering creates a section around a pre-rendered cell filtering
// figure. The figure must be imported into the archive before rendering.
func (b *Builder) FromCellFiltering(figurePath, filename string) (*Section, error) {
	return NewSection(titleCellFiltering, []Item{
		{Label: "Description", Content: textFromPlain(b.desc.CellFiltering)},
		{Label: "Results", Content: ImageContent{
			Path:    figurePath,
			Caption: b.desc.CellFilteringCaption,
			Legend:  b.desc.CellFilteringLegend,
		}},
	}, filename)
}

// FromFinalMatrix creates the cell summary section from the final
// cell-by-gene counts matrix. As a side effect it renders the library-size
// histogram to figurePath; the caller still imports that figure into the
// archive before rendering.
func (b *Builder) FromFinalMatrix(counts *mat.Dense, figurePath, filename string) (*Section, error) {
	rows, cols := counts.Dims()
	sizes := make([]float64, rows)
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			sum += counts.At(i, j)
		}
		sizes[i] = sum
	}

	if err := diagplot.CellSizeHistogram(sizes, figurePath); err != nil {
		return nil, fmt.Errorf("rendering cell size histogram: %w", err)
	}

	return NewSection(titleCellSummary, []Item{
		{Label: "Library Size Distribution", Content: ImageContent{
			Path:    figurePath,
			Caption: b.desc.CellSizeCaption,
			Legend:  b.desc.CellSizeLegend,
		}},
	}, filename)
}

// FromRunLog creates a section wrapping the full pipeline log as one text
// block, newlines converted to line-break markup.
func (b *Builder) FromRunLog(path, filename string) (*Section, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-supplied pipeline artifact
	if err != nil {
		return nil, fmt.Errorf("reading run log: %w", err)
	}
	return NewSection(titleRunLog, []Item{
		{Label: "Log Content", Content: textFromPlain(string(data))},
	}, filename)
}

// FromRunNotes creates a section from a Markdown run-notes file, converted
// to HTML (GFM, fenced code highlighting).
func (b *Builder) FromRunNotes(path, filename string) (*Section, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-supplied notes file
	if err != nil {
		return nil, fmt.Errorf("reading run notes: %w", err)
	}
	htmlContent, err := b.notes.toHTML(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotesConvert, err)
	}
	return NewSection(titleRunNotes, []Item{
		{Label: "Notes", Content: TextContent{HTML: htmlContent}},
	}, filename)
}

// FromBasicClusteringAndProjection is reserved for a clustering/projection
// summary page. It is not implemented; calling it fails loudly rather than
// producing an empty section.
func (b *Builder) FromBasicClusteringAndProjection() (*Section, error) {
	return nil, fmt.Errorf("%w: basic clustering and projection", ErrNotImplemented)
}

// FromOverallYield is reserved for an overall yield-loss summary page. It is
// not implemented; calling it fails loudly rather than producing an empty
// section.
func (b *Builder) FromOverallYield() (*Section, error) {
	return nil, fmt.Errorf("%w: overall yield", ErrNotImplemented)
}

// textFromPlain escapes plain text and converts newlines to <br> tags.
func textFromPlain(s string) TextContent {
	escaped := html.EscapeString(s)
	return TextContent{HTML: strings.ReplaceAll(escaped, "\n", "<br>\n")}
}
