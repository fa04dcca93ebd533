// Package assets provides the report scaffold: the section HTML template
// and the stylesheet. Assets can be loaded from embedded files or a custom
// scaffold directory on disk.
package assets

// Well-known asset names.
const (
	// DefaultTemplateName is the section page template (templates/section.html).
	DefaultTemplateName = "section"

	// DefaultStyleName is the report stylesheet (styles/report.css).
	DefaultStyleName = "report"
)

// AssetLoader defines the contract for loading scaffold assets.
// Implementations may load from embedded assets or the filesystem.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
