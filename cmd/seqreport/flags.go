package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the report command.
type cliFlags struct {
	manifest string
	config   string
	out      string
	scaffold string
	pdf      bool
	pdfOut   string
	timeout  string
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses command-line flags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("seqreport", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.manifest, "manifest", "m", "", "run manifest YAML (required)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.out, "out", "o", "", "archive path (overrides manifest)")
	fs.StringVar(&f.scaffold, "scaffold", "", "custom scaffold directory")
	fs.BoolVar(&f.pdf, "pdf", false, "export the index page to PDF")
	fs.StringVar(&f.pdfOut, "pdf-out", "", "PDF output path (default: <archive>/summary.pdf)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF export timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-step progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// printUsage writes the command usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `seqreport - assemble a pipeline run report archive

Usage:
  seqreport --manifest run.yaml [flags]

Flags:
  -m, --manifest string   run manifest YAML (required)
  -c, --config string     config file name or path
  -o, --out string        archive path (overrides manifest)
      --scaffold string   custom scaffold directory
      --pdf               export the index page to PDF
      --pdf-out string    PDF output path (default: <archive>/summary.pdf)
  -t, --timeout string    PDF export timeout (e.g., 30s, 2m)
  -q, --quiet             only show errors
  -v, --verbose           show per-step progress
      --version           print version and exit
`)
}
