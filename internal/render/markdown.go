package render

import (
	"fmt"
	"strings"

	"github.com/vk/tfsheet/internal/flatten"
)

// MarkdownRenderer emits flat pipe tables. Markdown has no cell merging, so
// every record renders its full display name and the layout is unused.
type MarkdownRenderer struct{}

// Page renders one Markdown document for a view.
func (r *MarkdownRenderer) Page(title string, docs []Input) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", title)

	for _, doc := range docs {
		fmt.Fprintf(&sb, "\n## %s\n\n", doc.EntityAddress)
		if len(doc.Records) == 0 {
			sb.WriteString("(no parameters)\n")
			continue
		}

		sb.WriteString("| Parameter | Value | Required | Default | Description |\n")
		sb.WriteString("|-----------|-------|----------|---------|-------------|\n")
		for _, rec := range doc.Records {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
				escapePipes(rec.DisplayName),
				escapePipes(flatten.FormatValue(rec)),
				requiredText(rec),
				escapePipes(defaultText(rec)),
				escapePipes(rec.Meta.Description),
			)
		}
	}
	return sb.String()
}

// escapePipes protects cell content from breaking the table syntax.
func escapePipes(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
