package seqreport

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNotImplemented is returned by construction helpers that are
	// declared but intentionally unimplemented. Callers must treat it as
	// fatal rather than substituting an empty section.
	ErrNotImplemented = errors.New("section builder not implemented")

	// Section construction and validation errors.
	ErrNoIndexSection    = errors.New("archive requires an index section")
	ErrDuplicateFilename = errors.New("duplicate section filename")
	ErrEmptyFilename     = errors.New("section filename cannot be empty")

	// Archive lifecycle errors.
	ErrScaffoldMissing = errors.New("reference scaffold not found")
	ErrArchiveMissing  = errors.New("archive directory does not exist")
	ErrImageImport     = errors.New("image import failed")

	// Rendering errors.
	ErrSectionRender = errors.New("section rendering failed")
	ErrNotesConvert  = errors.New("run notes conversion failed")

	// PDF export errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
