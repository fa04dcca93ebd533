// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-seqreport/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors during PDF
// export. Detects CI/Docker environments and suggests the relevant
// environment variables.
func ForBrowserConnect() string {
	var hs []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hs = append(hs, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hs = append(hs, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hs)
}

// ForScaffoldMissing returns hints for missing scaffold directories.
func ForScaffoldMissing(dir string) string {
	return format("check that " + dir + " contains templates/section.html and styles/report.css")
}

// ForManifestNotFound returns a hint for manifest file not found errors.
func ForManifestNotFound() string {
	return format("use --manifest /path/to/run.yaml")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-seqreport") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// format renders a single hint line.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints renders multiple hint lines.
func formatHints(hs []string) string {
	var b strings.Builder
	for _, h := range hs {
		b.WriteString(format(h))
	}
	return b.String()
}
