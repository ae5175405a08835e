package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/vk/tfsheet/internal/flatten"
	"github.com/vk/tfsheet/internal/layout"
)

// HTMLRenderer emits one self-contained HTML page per view, merging cells
// vertically (rowspan per merge group) and horizontally (colspan for leaves
// that terminate above the deepest nesting level).
type HTMLRenderer struct{}

// Page renders a complete HTML document.
func (r *HTMLRenderer) Page(title string, docs []Input) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", html.EscapeString(title))
	sb.WriteString("</head>\n")
	sb.WriteString(pageStyles)
	sb.WriteString("<body>\n")
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(title))

	for _, doc := range docs {
		r.renderDocument(&sb, doc)
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// renderDocument emits the heading and table of one resource.
func (r *HTMLRenderer) renderDocument(sb *strings.Builder, doc Input) {
	fmt.Fprintf(sb, "<h2>%s</h2>\n", html.EscapeString(doc.EntityAddress))
	sb.WriteString("<table>\n")
	r.renderHeader(sb, doc.Layout.MaxDepth)
	sb.WriteString("<tbody>\n")
	for i := range doc.Records {
		r.renderRow(sb, doc, i)
	}
	sb.WriteString("</tbody>\n")
	sb.WriteString("</table>\n")
}

// renderHeader emits one merged header cell over the whole name grid plus
// the fixed data columns.
func (r *HTMLRenderer) renderHeader(sb *strings.Builder, maxDepth int) {
	sb.WriteString("<thead>\n  <tr>\n")
	if maxDepth > 0 {
		fmt.Fprintf(sb, "    <th colspan=\"%d\">Parameter</th>\n", maxDepth*2)
	}
	sb.WriteString("    <th>Value</th>\n")
	sb.WriteString("    <th>Required</th>\n")
	sb.WriteString("    <th>Default</th>\n")
	sb.WriteString("    <th>Description</th>\n")
	sb.WriteString("  </tr>\n</thead>\n")
}

// renderRow emits one <tr>. Name and index cells appear only on the first
// row of their merge group; later rows are covered by the rowspan.
func (r *HTMLRenderer) renderRow(sb *strings.Builder, doc Input, row int) {
	rec := doc.Records[row]
	depth := rec.Depth()
	sb.WriteString("  <tr>\n")

	for level := 0; level < depth; level++ {
		last := level == depth-1
		seg := rec.Path[level]

		if g, ok := groupStartingAt(doc.Layout.Levels[level].Name, row); ok {
			colspan := 1
			if last && !seg.HasIndex {
				// The leaf has no index cell; its name cell absorbs that
				// sub-column and any unused deeper columns.
				colspan += doc.Layout.ColSpans[row]
			}
			writeCell(sb, "param-name", g.Length, colspan, html.EscapeString(seg.Key))
		}
		if last && !seg.HasIndex {
			continue
		}

		if g, ok := groupStartingAt(doc.Layout.Levels[level].Index, row); ok {
			if seg.HasIndex {
				// Index cells are one-based in the rendered sheet even
				// though display paths are zero-based.
				writeCell(sb, "index-cell", g.Length, 1, fmt.Sprintf("%d", seg.Index+1))
			} else {
				writeCell(sb, "", g.Length, 1, "-")
			}
		}
	}

	// A leaf that ends on an indexed segment above max depth leaves the
	// deeper columns empty; pad them out on every row.
	if depth > 0 && rec.Path[depth-1].HasIndex && doc.Layout.ColSpans[row] > 0 {
		fmt.Fprintf(sb, "    <td colspan=\"%d\"></td>\n", doc.Layout.ColSpans[row])
	}

	valueClass := "param-value"
	if rec.Kind == flatten.Pending {
		valueClass += " pending"
	}
	fmt.Fprintf(sb, "    <td class=\"%s\">%s</td>\n", valueClass, html.EscapeString(flatten.FormatValue(rec)))

	required := requiredText(rec)
	switch required {
	case "Yes":
		fmt.Fprintf(sb, "    <td class=\"required-yes\">%s</td>\n", required)
	case "No":
		fmt.Fprintf(sb, "    <td class=\"required-no\">%s</td>\n", required)
	default:
		fmt.Fprintf(sb, "    <td>%s</td>\n", required)
	}

	def := defaultText(rec)
	if def == "(computed)" {
		fmt.Fprintf(sb, "    <td class=\"computed\">%s</td>\n", def)
	} else {
		fmt.Fprintf(sb, "    <td>%s</td>\n", html.EscapeString(def))
	}

	fmt.Fprintf(sb, "    <td>%s</td>\n", html.EscapeString(rec.Meta.Description))
	sb.WriteString("  </tr>\n")
}

// groupStartingAt finds the merge group whose run begins at the given row.
func groupStartingAt(groups []layout.Group, row int) (layout.Group, bool) {
	for _, g := range groups {
		if g.Start == row {
			return g, true
		}
		if g.Start > row {
			break
		}
	}
	return layout.Group{}, false
}

// writeCell emits a td with optional class, rowspan and colspan.
func writeCell(sb *strings.Builder, class string, rowspan, colspan int, content string) {
	sb.WriteString("    <td")
	if class != "" {
		fmt.Fprintf(sb, " class=%q", class)
	}
	if rowspan > 1 {
		fmt.Fprintf(sb, " rowspan=\"%d\"", rowspan)
	}
	if colspan > 1 {
		fmt.Fprintf(sb, " colspan=\"%d\"", colspan)
	}
	fmt.Fprintf(sb, ">%s</td>\n", content)
}

// pageStyles is the shared stylesheet of every generated page.
const pageStyles = `<style>
    body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
        margin: 20px;
        background-color: #f6f8fa;
    }
    h1 {
        color: #24292e;
        border-bottom: 3px solid #0366d6;
        padding-bottom: 10px;
    }
    h2 {
        color: #24292e;
        background-color: #e1e4e8;
        padding: 8px 12px;
        border-left: 4px solid #0366d6;
        margin-top: 30px;
    }
    table {
        border-collapse: collapse;
        width: 100%;
        margin-bottom: 30px;
        background-color: white;
        box-shadow: 0 1px 3px rgba(0,0,0,0.12);
    }
    thead {
        background-color: #0366d6;
        color: white;
    }
    th, td {
        border: 1px solid #d1d5da;
        padding: 8px 12px;
        text-align: left;
        vertical-align: top;
    }
    th {
        font-weight: 600;
    }
    tbody tr:hover {
        background-color: #f6f8fa;
    }
    .index-cell {
        background-color: #f1f8ff;
        font-weight: 600;
        text-align: center;
        color: #0366d6;
        min-width: 50px;
    }
    .param-name {
        font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
        font-size: 0.9em;
        color: #032f62;
    }
    .param-value {
        font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
        font-size: 0.9em;
        word-break: break-all;
    }
    .required-yes {
        color: #d73a49;
        font-weight: 600;
    }
    .required-no {
        color: #6a737d;
    }
    .computed {
        color: #6f42c1;
        font-style: italic;
    }
    .pending {
        color: #e36209;
        font-style: italic;
    }
</style>
`
