package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/tfsheet/internal/attrtree"
	"github.com/vk/tfsheet/internal/flatten"
	"github.com/vk/tfsheet/internal/layout"
	"github.com/vk/tfsheet/internal/planjson"
)

func inputFromJSON(t *testing.T, address, src string) Input {
	t.Helper()
	raw, err := planjson.DecodeBytes([]byte(src))
	require.NoError(t, err)
	tree, diags, err := attrtree.Build(context.Background(), raw, attrtree.Options{})
	require.NoError(t, err)
	require.Empty(t, diags)

	records := flatten.Flatten(tree)
	return Input{
		EntityAddress: address,
		Records:       records,
		Layout:        layout.Compute(records),
	}
}

func TestHTMLRenderer_PageChrome(t *testing.T) {
	t.Parallel()

	page := (&HTMLRenderer{}).Page("AWS S3 Resources", []Input{
		inputFromJSON(t, "aws_s3_bucket.main", `{"bucket": "my-bucket"}`),
	})

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>AWS S3 Resources</title>")
	assert.Contains(t, page, "<h1>AWS S3 Resources</h1>")
	assert.Contains(t, page, "<h2>aws_s3_bucket.main</h2>")
	assert.Contains(t, page, "<style>")
	assert.True(t, strings.HasSuffix(page, "</html>\n"))
}

func TestHTMLRenderer_HeaderSpansNameGrid(t *testing.T) {
	t.Parallel()

	in := inputFromJSON(t, "aws_s3_bucket.main", `{
	  "bucket": "b",
	  "cors_rule": [{"allowed_methods": ["GET"]}]
	}`)
	require.Equal(t, 2, in.Layout.MaxDepth)

	page := (&HTMLRenderer{}).Page("t", []Input{in})
	assert.Contains(t, page, `<th colspan="4">Parameter</th>`)
}

func TestHTMLRenderer_CellMerging(t *testing.T) {
	t.Parallel()

	in := inputFromJSON(t, "aws_s3_bucket_cors_configuration.main", `{
	  "cors_rule": [
	    {"allowed_methods": ["GET", "PUT"], "max_age_seconds": 300},
	    {"allowed_methods": ["POST"]}
	  ]
	}`)
	page := (&HTMLRenderer{}).Page("t", []Input{in})

	// The cors_rule name cell spans all four rows.
	assert.Contains(t, page, `<td class="param-name" rowspan="4">cors_rule</td>`)
	// Rule indices render one-based and span their rule's rows.
	assert.Contains(t, page, `<td class="index-cell" rowspan="3">1</td>`)
	assert.Contains(t, page, `<td class="index-cell">2</td>`)
	// allowed_methods of the first rule merges its two rows.
	assert.Contains(t, page, `<td class="param-name" rowspan="2">allowed_methods</td>`)
	assert.Contains(t, page, `<td class="param-value">300</td>`)
}

func TestHTMLRenderer_ShortLeafColspan(t *testing.T) {
	t.Parallel()

	in := inputFromJSON(t, "aws_s3_bucket.main", `{
	  "bucket": "b",
	  "cors_rule": [{"allowed_methods": ["GET"]}]
	}`)
	page := (&HTMLRenderer{}).Page("t", []Input{in})

	// bucket sits at depth 1 in a depth-2 grid: its name cell absorbs its
	// own index sub-column plus the two unused deeper ones.
	assert.Contains(t, page, `<td class="param-name" colspan="4">bucket</td>`)
}

func TestHTMLRenderer_IndexedLeafPadding(t *testing.T) {
	t.Parallel()

	in := inputFromJSON(t, "aws_vpc.main", `{
	  "subnet_ids": ["a"],
	  "rule": [{"ports": [80]}]
	}`)
	page := (&HTMLRenderer{}).Page("t", []Input{in})

	// subnet_ids[0] ends on an indexed segment one level above max depth;
	// the two unused sub-columns pad out as an empty cell.
	assert.Contains(t, page, `<td colspan="2"></td>`)
}

func TestHTMLRenderer_NonIndexedIntermediateDash(t *testing.T) {
	t.Parallel()

	in := inputFromJSON(t, "aws_s3_bucket.main", `{"tags": {"Name": "web", "Env": "prod"}}`)
	page := (&HTMLRenderer{}).Page("t", []Input{in})

	// tags has no sequence position; its merged index cell renders a dash.
	assert.Contains(t, page, `<td rowspan="2">-</td>`)
	assert.Contains(t, page, `<td class="param-name" rowspan="2">tags</td>`)
}

func TestHTMLRenderer_ValueClassesAndEscaping(t *testing.T) {
	t.Parallel()

	records := []flatten.LeafRecord{
		{
			Path:        []flatten.PathSegment{{Key: "name"}},
			DisplayName: "name",
			Value:       cty.StringVal(`<script>"x"</script>`),
			Meta:        attrtree.AttributeMeta{Requiredness: attrtree.Required, Description: "a < b"},
		},
		{
			Path:        []flatten.PathSegment{{Key: "policy_arn"}},
			DisplayName: "policy_arn",
			Kind:        flatten.Pending,
			Ref:         "aws_iam_policy.app",
			Meta:        attrtree.AttributeMeta{Requiredness: attrtree.Optional},
		},
		{
			Path:        []flatten.PathSegment{{Key: "unique_id"}},
			DisplayName: "unique_id",
			Kind:        flatten.Computed,
			Value:       cty.NullVal(cty.String),
			Meta:        attrtree.AttributeMeta{Computed: true, DefaultHint: "(computed)"},
		},
	}
	in := Input{EntityAddress: "aws_iam_role.lambda", Records: records, Layout: layout.Compute(records)}
	page := (&HTMLRenderer{}).Page("t", []Input{in})

	assert.Contains(t, page, "&lt;script&gt;&#34;x&#34;&lt;/script&gt;")
	assert.NotContains(t, page, "<script>")
	assert.Contains(t, page, "a &lt; b")

	assert.Contains(t, page, `<td class="param-value pending">(pending) aws_iam_policy.app</td>`)
	assert.Contains(t, page, `<td class="required-yes">Yes</td>`)
	assert.Contains(t, page, `<td class="required-no">No</td>`)
	assert.Contains(t, page, `<td class="computed">(computed)</td>`)
}

func TestHTMLRenderer_EmptyView(t *testing.T) {
	t.Parallel()

	page := (&HTMLRenderer{}).Page("AWS Network Resources", nil)
	assert.Contains(t, page, "<h1>AWS Network Resources</h1>")
	assert.NotContains(t, page, "<table>")
}
