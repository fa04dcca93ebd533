package seqreport

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"html"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-seqreport/internal/assets"
	"github.com/alnah/go-seqreport/internal/fileutil"
)

// Archive layout: subdirectories created by Prepare and the compressed
// artifact's extension.
const (
	htmlSubdir       = "html"
	imageSubdir      = "img"
	stylesSubdir     = "styles"
	archiveExtension = ".tar.gz"
)

// ReportArchive owns the report's filesystem lifecycle: directory scaffold
// creation, image import, rendering every section to a page, and compressing
// the finished tree into one distributable file.
//
// The lifecycle is Prepare, zero or more ImportImage calls, Render, then
// Compress. Compressing without rendering yields a degenerate scaffold-only
// archive; rendering without preparing fails on the first page write.
type ReportArchive struct {
	archiveName string
	sections    []*Section
	index       *Section
	scaffoldDir string

	renderer *sectionRenderer
}

// ArchiveOption configures a ReportArchive.
type ArchiveOption func(*ReportArchive)

// WithScaffoldDir points the archive at a custom reference scaffold
// directory instead of the embedded one. Prepare copies it recursively;
// Render loads templates/section.html from it with no fallback, so an
// incomplete scaffold fails loudly at render time.
func WithScaffoldDir(dir string) ArchiveOption {
	return func(a *ReportArchive) {
		a.scaffoldDir = dir
	}
}

// NewReportArchive creates an archive over the given sections and index
// section. archiveName is the root directory of the report and the base
// name of the compressed artifact. The index may, but need not, also appear
// in sections.
//
// Filenames must be distinct across all participating sections; violations
// are rejected here rather than surfacing as silently overwritten pages.
func NewReportArchive(archiveName string, sections []*Section, index *Section, opts ...ArchiveOption) (*ReportArchive, error) {
	if archiveName == "" {
		return nil, errors.New("archive name cannot be empty")
	}
	if index == nil {
		return nil, ErrNoIndexSection
	}

	seen := make(map[string]bool, len(sections)+1)
	indexListed := false
	for _, s := range sections {
		if seen[s.Filename] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFilename, s.Filename)
		}
		seen[s.Filename] = true
		if s == index {
			indexListed = true
		}
	}
	if !indexListed && seen[index.Filename] {
		return nil, fmt.Errorf("%w: index %q", ErrDuplicateFilename, index.Filename)
	}

	a := &ReportArchive{
		archiveName: archiveName,
		sections:    sections,
		index:       index,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Name returns the archive's root directory path.
func (a *ReportArchive) Name() string { return a.archiveName }

// IndexPagePath returns the path of the rendered index page.
func (a *ReportArchive) IndexPagePath() string {
	return filepath.Join(a.archiveName, htmlSubdir, a.index.Filename)
}

// Prepare materializes the archive directory from the reference scaffold.
//
// Destructive: any existing directory at the archive path is removed first,
// so callers must never point an archive at a path holding unrelated data.
// Fails with a filesystem error if a custom scaffold is missing or the
// target is unwritable.
func (a *ReportArchive) Prepare() error {
	if a.scaffoldDir != "" {
		info, err := os.Stat(a.scaffoldDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrScaffoldMissing, a.scaffoldDir)
		}
	}

	if err := os.RemoveAll(a.archiveName); err != nil {
		return fmt.Errorf("removing existing archive: %w", err)
	}

	if a.scaffoldDir != "" {
		if err := fileutil.CopyTree(a.scaffoldDir, a.archiveName); err != nil {
			return fmt.Errorf("copying scaffold: %w", err)
		}
	}
	if err := a.writeStylesheet(); err != nil {
		return err
	}

	// Page and image directories exist regardless of scaffold contents.
	for _, sub := range []string{htmlSubdir, imageSubdir} {
		if err := os.MkdirAll(filepath.Join(a.archiveName, sub), 0o755); err != nil {
			return fmt.Errorf("creating %s directory: %w", sub, err)
		}
	}
	return nil
}

// writeStylesheet materializes styles/report.css into the archive tree.
// Resolution is custom-first with an embedded fallback, so a custom
// scaffold without a stylesheet still yields styled pages. Templates stay
// strict; only the stylesheet falls back.
func (a *ReportArchive) writeStylesheet() error {
	resolver, err := assets.NewResolver(a.scaffoldDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScaffoldMissing, err)
	}
	css, err := resolver.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScaffoldMissing, err)
	}
	stylesDir := filepath.Join(a.archiveName, stylesSubdir)
	if err := os.MkdirAll(stylesDir, 0o755); err != nil {
		return fmt.Errorf("creating styles directory: %w", err)
	}
	cssPath := filepath.Join(stylesDir, assets.DefaultStyleName+".css")
	if err := os.WriteFile(cssPath, []byte(css), 0o644); err != nil { // #nosec G306 -- stylesheet is meant to be readable
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	return nil
}

// ImportImage copies the file at imagePath into the archive's image
// directory, preserving the base filename. Any image referenced by an
// ImageContent must be imported before Render, or the rendered page will
// carry a broken reference; this is not checked automatically.
func (a *ReportArchive) ImportImage(imagePath string) error {
	dst := filepath.Join(a.archiveName, imageSubdir, filepath.Base(imagePath))
	if err := fileutil.CopyFile(imagePath, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrImageImport, err)
	}
	return nil
}

// Render writes one page per section into the archive's html directory: the
// index first, then every listed section, each receiving the full sibling
// list for navigation and the index for the home link.
//
// Renders are independent; a failing section does not stop the others, so a
// failed build still leaves a partial, inspectable archive. All failures are
// joined into the returned error.
func (a *ReportArchive) Render() error {
	r, err := a.sectionRenderer()
	if err != nil {
		return err
	}

	prefix := filepath.Join(a.archiveName, htmlSubdir) + string(filepath.Separator)

	var errs []error
	if err := a.index.renderWith(r, prefix, a.sections, a.index); err != nil {
		errs = append(errs, err)
	}
	for _, s := range a.sections {
		if s == a.index {
			continue
		}
		if err := s.renderWith(r, prefix, a.sections, a.index); err != nil {
			errs = append(errs, err)
		}
	}

	if err := a.writeRootRedirect(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// writeRootRedirect places a small index.html at the archive root that
// forwards to the rendered index page, so an unpacked archive opens from its
// top directory. (A symlink would not survive the compressed artifact.)
func (a *ReportArchive) writeRootRedirect() error {
	target := htmlSubdir + "/" + a.index.Filename
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="0; url=%s">
<title>%s</title>
</head>
<body>
<a href=%q>%s</a>
</body>
</html>
`, target, html.EscapeString(a.index.Name), target, html.EscapeString(a.index.Name))

	path := filepath.Join(a.archiveName, "index.html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil { // #nosec G306 -- report pages are meant to be readable
		return fmt.Errorf("writing root redirect: %w", err)
	}
	return nil
}

// sectionRenderer returns the archive's renderer, building it on first use.
// A custom scaffold is loaded strictly (no embedded fallback) so missing
// template assets surface as errors instead of silently diverging styles.
func (a *ReportArchive) sectionRenderer() (*sectionRenderer, error) {
	if a.renderer != nil {
		return a.renderer, nil
	}

	var (
		r   *sectionRenderer
		err error
	)
	if a.scaffoldDir != "" {
		loader, lerr := assets.NewFilesystemLoader(a.scaffoldDir)
		if lerr != nil {
			return nil, fmt.Errorf("%w: %v", ErrScaffoldMissing, lerr)
		}
		r, err = newSectionRenderer(loader)
	} else {
		r, err = defaultSectionRenderer()
	}
	if err != nil {
		return nil, err
	}
	a.renderer = r
	return r, nil
}

// Compress packages the whole archive directory into a gzip'd tar named
// after the archive, placed alongside it, and returns the artifact path.
// Fails with a filesystem error if the archive directory does not exist.
// After a successful Compress the archive is logically terminal; the source
// directory remains on disk but should be treated as frozen.
func (a *ReportArchive) Compress() (string, error) {
	info, err := os.Stat(a.archiveName)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrArchiveMissing, a.archiveName)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrArchiveMissing, a.archiveName)
	}

	outPath := a.archiveName + archiveExtension
	out, err := os.Create(outPath) // #nosec G304 -- artifact path derives from the archive name
	if err != nil {
		return "", fmt.Errorf("creating archive file: %w", err)
	}

	if err := writeTarGz(out, a.archiveName); err != nil {
		_ = out.Close()
		_ = os.Remove(outPath)
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing archive file: %w", err)
	}
	return outPath, nil
}

// writeTarGz streams the directory tree rooted at dir into w as a gzip'd
// tar. Member names are prefixed with the directory's base name, matching
// how the archive unpacks next to its source tree.
func writeTarGz(w io.Writer, dir string) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	base := filepath.Base(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := base
		if rel != "." {
			name = base + "/" + filepath.ToSlash(rel)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = name
		if d.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(path) // #nosec G304 -- path comes from walking the archive tree
		if err != nil {
			return err
		}
		_, err = io.Copy(tw, f)
		_ = f.Close()
		return err
	})
	if err != nil {
		return fmt.Errorf("archiving %s: %w", dir, err)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("finalizing tar stream: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("finalizing gzip stream: %w", err)
	}
	return nil
}
