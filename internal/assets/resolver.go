package assets

import "errors"

// Resolver combines a custom scaffold with the embedded one. Assets resolve
// custom-first with fallback to embedded when not found, so a partial
// custom scaffold (say, only a stylesheet) still yields a working report.
//
// The archive's render path deliberately does not use a Resolver: there a
// missing custom template must fail, not fall back.
type Resolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewResolver creates a Resolver. If customBasePath is empty, only embedded
// assets are used. Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadStyle loads a CSS style, trying the custom loader first if available.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return r.loadWithFallback(name, AssetLoader.LoadStyle)
}

// LoadTemplate loads a template, trying the custom loader first if available.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	return r.loadWithFallback(name, AssetLoader.LoadTemplate)
}

// loadWithFallback implements the custom-first, fallback-to-embedded logic.
// Only not-found errors fall back; validation and I/O errors propagate.
func (r *Resolver) loadWithFallback(name string, load func(AssetLoader, string) (string, error)) (string, error) {
	if r.custom == nil {
		return load(r.embedded, name)
	}

	content, err := load(r.custom, name)
	if err == nil {
		return content, nil
	}
	if !isNotFoundError(err) {
		return "", err
	}

	return load(r.embedded, name)
}

// HasCustomLoader returns true if a custom scaffold is configured.
func (r *Resolver) HasCustomLoader() bool { return r.custom != nil }

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*Resolver)(nil)
