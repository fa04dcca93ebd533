package seqreport_test

import (
	"fmt"
	"os"
	"path/filepath"

	seqreport "github.com/alnah/go-seqreport"
)

// Example demonstrates building and packaging a minimal report archive.
// PDF export of the finished archive requires Chrome; see PDFExporter.
func Example() {
	dir, err := os.MkdirTemp("", "seqreport-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	b := seqreport.NewBuilder()
	filtering, err := b.FromStatusFilters(1000, seqreport.FilterCounts{
		NoGene:        100,
		GeneNotUnique: 50,
		PrimerMissing: 25,
		LowPolyT:      10,
	}, "filtering.html")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sections := []*seqreport.Section{filtering}
	index := seqreport.IndexSection("Run Summary", "A short demo run.", "index.html", sections)

	archive, err := seqreport.NewReportArchive(filepath.Join(dir, "run_summary"), sections, index)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if err := archive.Prepare(); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := archive.Render(); err != nil {
		fmt.Println("error:", err)
		return
	}
	outPath, err := archive.Compress()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("artifact:", filepath.Base(outPath))
	// Output: artifact: run_summary.tar.gz
}

// Example_customDescriptions demonstrates overriding the built-in
// description strings attached to builder-produced sections.
func Example_customDescriptions() {
	b := seqreport.NewBuilder(seqreport.WithDescriptions(seqreport.Descriptions{
		RMT: "RMT barcodes were corrected against the expected whitelist.",
	}))

	section, err := b.FromRMTCorrection(12, "rmt_barcodes.html")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(section.Name)
	// Output: RMT Barcode Correction
}
