package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-seqreport/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrManifestInvalid  = errors.New("invalid manifest")
)

// Manifest names one pipeline run's artifacts and precomputed counters.
// Every input is optional; the report contains a section per input present.
type Manifest struct {
	Archive string `yaml:"archive"` // Output archive path (required)

	Inputs   ManifestInputs   `yaml:"inputs"`
	Counters ManifestCounters `yaml:"counters"`

	// Multialignment resolution results, order-preserving.
	Multialignment []LabeledCount `yaml:"multialignment"`
}

// ManifestInputs lists artifact file paths produced by the pipeline.
type ManifestInputs struct {
	AlignmentSummary    string `yaml:"alignmentSummary"`    // STAR final log
	RunLog              string `yaml:"runLog"`              // pipeline log file
	RunNotes            string `yaml:"runNotes"`            // Markdown notes
	CellFilteringFigure string `yaml:"cellFilteringFigure"` // pre-rendered figure
	FinalMatrix         string `yaml:"finalMatrix"`         // counts matrix CSV
	CellSizeFigure      string `yaml:"cellSizeFigure"`      // histogram output path
}

// ManifestCounters carries the precomputed counts from the filtering and
// correction stages. Pointer fields distinguish "absent" from zero: a nil
// group omits its section entirely.
type ManifestCounters struct {
	TotalReads    *int `yaml:"totalReads"`
	NoGene        int  `yaml:"noGene"`
	GeneNotUnique int  `yaml:"geneNotUnique"`
	PrimerMissing int  `yaml:"primerMissing"`
	LowPolyT      int  `yaml:"lowPolyT"`
	CellErrors    *int `yaml:"cellErrors"`
	RMTErrors     *int `yaml:"rmtErrors"`
}

// LabeledCount is one ordered label/count pair.
type LabeledCount struct {
	Label string `yaml:"label"`
	Count int    `yaml:"count"`
}

// Validate checks structural requirements: the archive path is present, and
// the final matrix input names a histogram output path to render to.
func (m *Manifest) Validate() error {
	if m.Archive == "" {
		return fmt.Errorf("%w: archive path is required", ErrManifestInvalid)
	}
	if m.Inputs.FinalMatrix != "" && m.Inputs.CellSizeFigure == "" {
		return fmt.Errorf("%w: finalMatrix requires cellSizeFigure output path", ErrManifestInvalid)
	}
	for i, e := range m.Multialignment {
		if e.Label == "" {
			return fmt.Errorf("%w: multialignment[%d] has empty label", ErrManifestInvalid, i)
		}
	}
	return nil
}

// LoadManifest loads and validates a run manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}
