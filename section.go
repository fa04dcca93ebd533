package seqreport

import (
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alnah/go-seqreport/internal/assets"
)

// Section is one navigable page of the report: a human-readable title, an
// ordered list of labeled content items, and the relative filename the page
// renders to. Sections are constructed once (usually via Builder) and are
// immutable thereafter; rendering is idempotent.
type Section struct {
	Name     string
	Content  []Item
	Filename string
}

// NewSection creates a section. Filename is the page's output name relative
// to the archive's html directory (e.g. "alignment.html") and must be unique
// among all sections of one archive.
func NewSection(name string, content []Item, filename string) (*Section, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: section %q", ErrEmptyFilename, name)
	}
	return &Section{Name: name, Content: content, Filename: filename}, nil
}

// IndexSection builds a landing page for the given sections: an optional
// intro paragraph followed by a linked table of contents. The returned
// section is a plain Section; pass it as the archive's index.
func IndexSection(title, intro, filename string, sections []*Section) *Section {
	var items []Item
	if intro != "" {
		items = append(items, Item{Label: "Overview", Content: TextContent{HTML: html.EscapeString(intro)}})
	}

	var b strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&b, "<a href=%q>%s</a><br>\n", s.Filename, html.EscapeString(s.Name))
	}
	items = append(items, Item{Label: "Contents", Content: TextContent{HTML: b.String()}})

	return &Section{Name: title, Content: items, Filename: filename}
}

// Render writes this section's page to prefix + Filename using the embedded
// scaffold template. links are the sibling sections shown in the navigation
// sidebar; if nil, only this section is linked. index supplies the "back to
// index" target; if nil, this section links to itself.
//
// Exactly one file is written per call; an existing file at the target path
// is overwritten. Fails with a template/asset error if the scaffold template
// cannot be loaded, or a filesystem error if the target is unwritable.
func (s *Section) Render(prefix string, links []*Section, index *Section) error {
	r, err := defaultSectionRenderer()
	if err != nil {
		return err
	}
	return s.renderWith(r, prefix, links, index)
}

// renderWith renders using an explicit renderer (the archive's, which may be
// backed by a custom scaffold).
func (s *Section) renderWith(r *sectionRenderer, prefix string, links []*Section, index *Section) error {
	if links == nil {
		links = []*Section{s}
	}
	if index == nil {
		index = s
	}

	page := buildSectionPage(s, links, index)

	var b strings.Builder
	if err := r.tmpl.Execute(&b, page); err != nil {
		return fmt.Errorf("%w: section %q: %v", ErrSectionRender, s.Name, err)
	}

	target := prefix + s.Filename
	if err := os.WriteFile(target, []byte(b.String()), 0o644); err != nil { // #nosec G306 -- report pages are meant to be readable
		return fmt.Errorf("%w: writing %s: %v", ErrSectionRender, target, err)
	}
	return nil
}

// sectionRenderer executes the scaffold's section template.
type sectionRenderer struct {
	tmpl *template.Template
}

// newSectionRenderer parses the section template supplied by the loader.
func newSectionRenderer(loader assets.AssetLoader) (*sectionRenderer, error) {
	src, err := loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(assets.DefaultTemplateName).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing section template: %w", err)
	}
	return &sectionRenderer{tmpl: tmpl}, nil
}

// Default renderer over the embedded scaffold, parsed once.
var (
	defaultRendererOnce sync.Once
	defaultRenderer     *sectionRenderer
	defaultRendererErr  error
)

func defaultSectionRenderer() (*sectionRenderer, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = newSectionRenderer(assets.NewEmbeddedLoader())
	})
	return defaultRenderer, defaultRendererErr
}

// sectionPage is the template view model for one rendered page.
type sectionPage struct {
	Title     string
	IndexLink string
	Nav       []navLink
	Items     []itemView
}

type navLink struct {
	Name     string
	Filename string
	Active   bool
}

// itemView carries one content item with its variant resolved for the
// template. Exactly one of HTML, Image, Table is populated, per Kind.
type itemView struct {
	Label string
	Kind  string // "text", "image", "table"
	HTML  template.HTML
	Image *imageView
	Table *tableView
}

type imageView struct {
	Src     string
	Caption string
	Legend  string
}

type tableView struct {
	Rows []tableRow
}

type tableRow struct {
	Key   string
	Value string
}

// buildSectionPage resolves the sealed content union into the view model.
// The switch is exhaustive over the three content kinds.
func buildSectionPage(s *Section, links []*Section, index *Section) sectionPage {
	page := sectionPage{
		Title:     s.Name,
		IndexLink: index.Filename,
		Nav:       make([]navLink, 0, len(links)),
		Items:     make([]itemView, 0, len(s.Content)),
	}

	for _, l := range links {
		page.Nav = append(page.Nav, navLink{
			Name:     l.Name,
			Filename: l.Filename,
			Active:   l.Filename == s.Filename,
		})
	}

	for _, item := range s.Content {
		v := itemView{Label: item.Label}
		switch c := item.Content.(type) {
		case TextContent:
			v.Kind = "text"
			v.HTML = template.HTML(c.HTML) // #nosec G203 -- builders own the markup
		case ImageContent:
			v.Kind = "image"
			v.Image = &imageView{
				// Pages live in html/, images in img/.
				Src:     "../img/" + filepath.Base(c.Path),
				Caption: c.Caption,
				Legend:  c.Legend,
			}
		case TableContent:
			v.Kind = "table"
			rows := make([]tableRow, 0, len(c.Keys))
			for i, k := range c.Keys {
				if i >= len(c.Values) {
					break
				}
				rows = append(rows, tableRow{Key: k, Value: c.Values[i]})
			}
			v.Table = &tableView{Rows: rows}
		}
		page.Items = append(page.Items, v)
	}

	return page
}
