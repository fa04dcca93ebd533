// Package seqreport assembles the outputs of a single-cell sequencing
// pipeline into a browsable, archivable HTML report.
//
// # Quick Start
//
// Normalize pipeline artifacts into sections, collect them into an archive,
// then prepare, render, and compress:
//
//	b := seqreport.NewBuilder()
//
//	align, err := b.FromAlignmentSummary("Log.final.out", "alignment.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runLog, err := b.FromRunLog("pipeline.log", "log.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sections := []*seqreport.Section{align, runLog}
//	index := seqreport.IndexSection("Run Summary", "", "index.html", sections)
//
//	archive, err := seqreport.NewReportArchive("run42_report", sections, index)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := archive.Prepare(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := archive.Render(); err != nil {
//	    log.Fatal(err)
//	}
//	path, err := archive.Compress()
//
// # Content Model
//
// Every section is an ordered list of labeled content items. Three kinds
// exist: TextContent (free text, pre-rendered markup allowed), ImageContent
// (figure with caption and legend), and TableContent (positionally paired
// key/value rows). The Content interface is sealed so renderers can switch
// exhaustively over the three kinds.
//
// # Archive Lifecycle
//
// A ReportArchive moves through Prepare (destructive scaffold copy),
// ImportImage (populate img/), Render (one HTML page per section plus the
// index), and Compress (single .tar.gz next to the archive directory).
// Prepare replaces any existing directory at the archive path, so callers
// must not point it at a path holding unrelated data.
//
// # Custom Scaffolds
//
// The static scaffold (section template, stylesheet) is embedded in the
// binary. Override it with a scaffold directory:
//
//	archive, err := seqreport.NewReportArchive(name, sections, index,
//	    seqreport.WithScaffoldDir("/path/to/scaffold"))
//
// Scaffold directory structure:
//
//	scaffold/
//	├── styles/
//	│   └── report.css
//	└── templates/
//	    └── section.html
//
// # PDF Export
//
// A rendered archive's index page can be exported to PDF via headless
// Chrome (go-rod downloads a managed Chromium on first run):
//
//	exp := seqreport.NewPDFExporter()
//	defer exp.Close()
//	err := exp.ExportIndex(ctx, archive, "run42_report/summary.pdf")
//
// For containers and CI environments, set ROD_BROWSER_BIN to a
// pre-installed Chrome binary.
package seqreport
