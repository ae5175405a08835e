package render

import (
	"github.com/vk/tfsheet/internal/attrtree"
	"github.com/vk/tfsheet/internal/flatten"
	"github.com/vk/tfsheet/internal/layout"
)

// Format selects the output markup.
type Format int

const (
	// FormatHTML renders tables with rowspan/colspan cell merging.
	FormatHTML Format = iota
	// FormatMarkdown renders flat pipe tables.
	FormatMarkdown
)

// ParseFormat maps a user-supplied name onto the closed Format enum.
// Unknown names map to HTML.
func ParseFormat(name string) Format {
	switch name {
	case "markdown", "md":
		return FormatMarkdown
	default:
		return FormatHTML
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return ".md"
	}
	return ".html"
}

// String returns the canonical format name.
func (f Format) String() string {
	if f == FormatMarkdown {
		return "markdown"
	}
	return "html"
}

// View identifies the output page a documented resource belongs to.
type View int

const (
	// ViewDefault collects resources no other view claims.
	ViewDefault View = iota
	// ViewIAM collects identity and access resources.
	ViewIAM
	// ViewS3 collects object-storage resources.
	ViewS3
	// ViewNetwork collects VPC and networking resources.
	ViewNetwork
)

// AllViews lists every view in page order.
var AllViews = []View{ViewIAM, ViewS3, ViewNetwork, ViewDefault}

// Title returns the page heading of the view.
func (v View) Title() string {
	switch v {
	case ViewIAM:
		return "AWS IAM Resources"
	case ViewS3:
		return "AWS S3 Resources"
	case ViewNetwork:
		return "AWS Network Resources"
	default:
		return "Other AWS Resources"
	}
}

// BaseName returns the output file name of the view, without extension.
func (v View) BaseName() string {
	switch v {
	case ViewIAM:
		return "IAM"
	case ViewS3:
		return "S3"
	case ViewNetwork:
		return "Network"
	default:
		return "Other"
	}
}

// Input is the render contract for one documented resource: its identity,
// the ordered leaf records and the merge layout computed for them.
type Input struct {
	EntityType    string
	EntityName    string
	EntityAddress string
	Records       []flatten.LeafRecord
	Layout        layout.Layout
}

// Renderer produces one complete output page from the documents of a view.
type Renderer interface {
	Page(title string, docs []Input) string
}

// New returns the renderer for a format. The switch is exhaustive over the
// enum; anything else falls back to HTML.
func New(f Format) Renderer {
	switch f {
	case FormatMarkdown:
		return &MarkdownRenderer{}
	default:
		return &HTMLRenderer{}
	}
}

// requiredText maps requiredness onto the table's Required column.
func requiredText(r flatten.LeafRecord) string {
	switch r.Meta.Requiredness {
	case attrtree.Required:
		return "Yes"
	case attrtree.Optional:
		return "No"
	default:
		return "-"
	}
}

// defaultText maps metadata onto the table's Default column.
func defaultText(r flatten.LeafRecord) string {
	if r.Meta.DefaultHint != "" {
		return r.Meta.DefaultHint
	}
	return "-"
}
