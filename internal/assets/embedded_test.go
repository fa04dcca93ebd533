package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoaderLoadsDefaults(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tmpl, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) failed: %v", DefaultTemplateName, err)
	}
	for _, want := range []string{"{{.Title}}", "{{.IndexLink}}", "report.css"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("section template missing %q", want)
		}
	}

	css, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) failed: %v", DefaultStyleName, err)
	}
	if !strings.Contains(css, ".sidebar") {
		t.Error("stylesheet missing sidebar rules")
	}
}

func TestEmbeddedLoaderNotFound(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	if _, err := loader.LoadStyle("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle error = %v, want %v", err, ErrStyleNotFound)
	}
	if _, err := loader.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate error = %v, want %v", err, ErrTemplateNotFound)
	}
}

func TestEmbeddedLoaderRejectsInvalidNames(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	if _, err := loader.LoadStyle("../report"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle error = %v, want %v", err, ErrInvalidAssetName)
	}
}
