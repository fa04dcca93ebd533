package seqreport

import "strconv"

// Content is one displayable unit within a section. The interface is sealed:
// exactly three kinds exist (TextContent, ImageContent, TableContent), so
// renderers may switch exhaustively over them.
type Content interface {
	// kind seals the interface against outside implementations.
	kind() contentKind
}

// contentKind discriminates the three content variants.
type contentKind int

const (
	kindText contentKind = iota
	kindImage
	kindTable
)

// TextContent is a free-text block. HTML may contain pre-rendered markup
// (line-break tags, converted Markdown); it is emitted into the page as-is.
type TextContent struct {
	HTML string
}

// ImageContent references a figure file with its caption and legend.
// Path must point at a file imported into the archive's image directory
// before rendering, or the rendered page will carry a broken reference.
type ImageContent struct {
	Path    string
	Caption string
	Legend  string
}

// TableContent is an ordered two-column table. Keys and Values are
// positionally paired: Values[i] belongs to Keys[i], and both retain their
// insertion order. Len mismatch is a construction bug, never introduced by
// this package.
type TableContent struct {
	Keys   []string
	Values []string
}

func (TextContent) kind() contentKind  { return kindText }
func (ImageContent) kind() contentKind { return kindImage }
func (TableContent) kind() contentKind { return kindTable }

// Compile-time seal checks.
var (
	_ Content = TextContent{}
	_ Content = ImageContent{}
	_ Content = TableContent{}
)

// Len returns the number of key/value rows.
func (t TableContent) Len() int { return len(t.Keys) }

// CountTable builds a TableContent from positionally paired labels and
// integer counts. Extra labels or counts beyond the shorter slice are
// dropped so the pairing invariant always holds.
func CountTable(keys []string, counts []int) TableContent {
	n := len(keys)
	if len(counts) < n {
		n = len(counts)
	}
	t := TableContent{
		Keys:   make([]string, n),
		Values: make([]string, n),
	}
	for i := 0; i < n; i++ {
		t.Keys[i] = keys[i]
		t.Values[i] = strconv.Itoa(counts[i])
	}
	return t
}

// CountEntry is one labeled count in an ordered result mapping. Sections
// built from label/count mappings take a slice of entries rather than a map
// so the caller's iteration order is preserved.
type CountEntry struct {
	Label string
	Count int
}

// Item is one labeled content entry within a section. A section's items are
// an ordered list; labels are unique within one section and insertion order
// is display order.
type Item struct {
	Label   string
	Content Content
}
