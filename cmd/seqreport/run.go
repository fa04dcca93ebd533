package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	seqreport "github.com/alnah/go-seqreport"
	"github.com/alnah/go-seqreport/internal/config"
	"github.com/alnah/go-seqreport/internal/dateutil"
	"github.com/alnah/go-seqreport/internal/hints"
)

// Section page filenames within the archive. Fixed so archives from
// different runs are directly comparable.
const (
	fileIndex          = "index.html"
	fileAlignment      = "alignment.html"
	fileStatusFilters  = "filtering.html"
	fileCellBarcode    = "cell_barcodes.html"
	fileRMT            = "rmt_barcodes.html"
	fileMultialignment = "multialignment.html"
	fileCellFiltering  = "cell_filtering.html"
	fileCellSummary    = "cell_summary.html"
	fileRunLog         = "log.html"
	fileRunNotes       = "notes.html"
)

// defaultPDFTimeout bounds PDF export when --timeout is not given.
const defaultPDFTimeout = 30 * time.Second

// run builds the report archive described by the manifest.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintf(stdout, "seqreport %s\n", Version)
		return nil
	}
	if flags.manifest == "" {
		return errors.New("--manifest is required" + hints.ForManifestNotFound())
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				var searched []string
				if dir, derr := os.UserConfigDir(); derr == nil {
					searched = append(searched, filepath.Join(dir, "go-seqreport", flags.config+".yaml"))
				}
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(searched))
			}
			return err
		}
		cfg = loaded
	}

	m, err := config.LoadManifest(flags.manifest)
	if err != nil {
		if errors.Is(err, config.ErrManifestNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForManifestNotFound())
		}
		return err
	}

	archivePath := m.Archive
	if flags.out != "" {
		archivePath = flags.out
	}
	scaffoldDir := cfg.Scaffold.Dir
	if flags.scaffold != "" {
		scaffoldDir = flags.scaffold
	}

	progress := func(format string, args ...any) {
		if flags.verbose && !flags.quiet {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	b := seqreport.NewBuilder(seqreport.WithDescriptions(descriptionsFromConfig(cfg)))

	sections, images, err := buildSections(b, m, progress)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		return errors.New("manifest names no inputs; nothing to report")
	}

	index := seqreport.IndexSection(cfg.Report.Title, indexIntro(cfg), fileIndex, sections)

	var opts []seqreport.ArchiveOption
	if scaffoldDir != "" {
		opts = append(opts, seqreport.WithScaffoldDir(scaffoldDir))
	}
	archive, err := seqreport.NewReportArchive(archivePath, sections, index, opts...)
	if err != nil {
		return err
	}

	progress("Preparing archive at %s", archivePath)
	if err := archive.Prepare(); err != nil {
		if errors.Is(err, seqreport.ErrScaffoldMissing) && scaffoldDir != "" {
			return fmt.Errorf("%w%s", err, hints.ForScaffoldMissing(scaffoldDir))
		}
		return err
	}

	for _, img := range images {
		progress("Importing image %s", img)
		if err := archive.ImportImage(img); err != nil {
			return err
		}
	}

	progress("Rendering %d sections", len(sections))
	if err := archive.Render(); err != nil {
		// Partial archives are worth keeping for diagnosis; report the
		// failures but leave the directory in place.
		return fmt.Errorf("report rendered with failures (partial archive kept at %s): %w", archivePath, err)
	}

	outPath, err := archive.Compress()
	if err != nil {
		return err
	}

	if flags.pdf || cfg.PDF.Enabled {
		if err := exportPDF(flags, cfg, archive); err != nil {
			return err
		}
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", outPath)
	}
	return nil
}

// buildSections constructs one section per manifest input, in the report's
// fixed display order, and collects the figure paths to import.
func buildSections(b *seqreport.Builder, m *config.Manifest, progress func(string, ...any)) ([]*seqreport.Section, []string, error) {
	var sections []*seqreport.Section
	var images []string

	add := func(s *seqreport.Section, err error, what string) error {
		if err != nil {
			return fmt.Errorf("building %s section: %w", what, err)
		}
		progress("Built %s section", what)
		sections = append(sections, s)
		return nil
	}

	if m.Inputs.AlignmentSummary != "" {
		s, err := b.FromAlignmentSummary(m.Inputs.AlignmentSummary, fileAlignment)
		if err := add(s, err, "alignment"); err != nil {
			return nil, nil, err
		}
	}

	if m.Counters.TotalReads != nil {
		s, err := b.FromStatusFilters(*m.Counters.TotalReads, seqreport.FilterCounts{
			NoGene:        m.Counters.NoGene,
			GeneNotUnique: m.Counters.GeneNotUnique,
			PrimerMissing: m.Counters.PrimerMissing,
			LowPolyT:      m.Counters.LowPolyT,
		}, fileStatusFilters)
		if err := add(s, err, "filtering"); err != nil {
			return nil, nil, err
		}
	}

	if m.Counters.CellErrors != nil {
		s, err := b.FromCellBarcodeCorrection(*m.Counters.CellErrors, fileCellBarcode)
		if err := add(s, err, "cell barcode"); err != nil {
			return nil, nil, err
		}
	}

	if m.Counters.RMTErrors != nil {
		s, err := b.FromRMTCorrection(*m.Counters.RMTErrors, fileRMT)
		if err := add(s, err, "rmt"); err != nil {
			return nil, nil, err
		}
	}

	if len(m.Multialignment) > 0 {
		entries := make([]seqreport.CountEntry, len(m.Multialignment))
		for i, e := range m.Multialignment {
			entries[i] = seqreport.CountEntry{Label: e.Label, Count: e.Count}
		}
		s, err := b.FromResolveMultipleAlignments(entries, fileMultialignment)
		if err := add(s, err, "multialignment"); err != nil {
			return nil, nil, err
		}
	}

	if m.Inputs.CellFilteringFigure != "" {
		s, err := b.FromCellFiltering(m.Inputs.CellFilteringFigure, fileCellFiltering)
		if err := add(s, err, "cell filtering"); err != nil {
			return nil, nil, err
		}
		images = append(images, m.Inputs.CellFilteringFigure)
	}

	if m.Inputs.FinalMatrix != "" {
		counts, err := loadMatrixCSV(m.Inputs.FinalMatrix)
		if err != nil {
			return nil, nil, fmt.Errorf("loading final matrix: %w", err)
		}
		s, err := b.FromFinalMatrix(counts, m.Inputs.CellSizeFigure, fileCellSummary)
		if err := add(s, err, "cell summary"); err != nil {
			return nil, nil, err
		}
		images = append(images, m.Inputs.CellSizeFigure)
	}

	if m.Inputs.RunLog != "" {
		s, err := b.FromRunLog(m.Inputs.RunLog, fileRunLog)
		if err := add(s, err, "log"); err != nil {
			return nil, nil, err
		}
	}

	if m.Inputs.RunNotes != "" {
		s, err := b.FromRunNotes(m.Inputs.RunNotes, fileRunNotes)
		if err := add(s, err, "notes"); err != nil {
			return nil, nil, err
		}
	}

	return sections, images, nil
}

// descriptionsFromConfig maps config overrides onto the builder's
// description set. Empty config fields keep the built-in strings.
func descriptionsFromConfig(cfg *config.Config) seqreport.Descriptions {
	d := cfg.Descriptions
	return seqreport.Descriptions{
		StatusFilters:        d.StatusFilters,
		CellBarcode:          d.CellBarcode,
		RMT:                  d.RMT,
		Multialignment:       d.Multialignment,
		CellFiltering:        d.CellFiltering,
		CellFilteringCaption: d.CellFilteringCaption,
		CellFilteringLegend:  d.CellFilteringLegend,
		CellSizeCaption:      d.CellSizeCaption,
		CellSizeLegend:       d.CellSizeLegend,
	}
}

// indexIntro combines the configured intro with the resolved date stamp.
func indexIntro(cfg *config.Config) string {
	intro := cfg.Report.Intro
	if cfg.Report.Date == "" {
		return intro
	}
	date, err := dateutil.ResolveDate(cfg.Report.Date, time.Now())
	if err != nil || date == "" {
		return intro
	}
	stamp := "Report generated " + date + "."
	if intro == "" {
		return stamp
	}
	return intro + " " + stamp
}

// exportPDF renders the archive's index page to PDF.
func exportPDF(flags *cliFlags, cfg *config.Config, archive *seqreport.ReportArchive) error {
	timeout := defaultPDFTimeout
	spec := flags.timeout
	if spec == "" {
		spec = cfg.PDF.Timeout
	}
	if spec != "" {
		d, err := time.ParseDuration(spec)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", spec, err)
		}
		timeout = d
	}

	outPath := flags.pdfOut
	if outPath == "" {
		outPath = filepath.Join(archive.Name(), "summary.pdf")
	}

	exp := seqreport.NewPDFExporter()
	defer exp.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := exp.ExportIndex(ctx, archive, outPath); err != nil {
		if errors.Is(err, seqreport.ErrBrowserConnect) {
			return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
		}
		return err
	}
	return nil
}
