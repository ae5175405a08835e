package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tfsheet/internal/planjson"
	"github.com/vk/tfsheet/internal/render"
)

func doc(t *testing.T, resType, name, values string) *planjson.Document {
	t.Helper()
	v, err := planjson.DecodeBytes([]byte(values))
	require.NoError(t, err)
	return &planjson.Document{
		Type:    resType,
		Name:    name,
		Address: resType + "." + name,
		Values:  v,
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	r := New()

	spec, ok := r.Lookup("aws_iam_role")
	require.True(t, ok)
	assert.Equal(t, render.ViewIAM, spec.View)
	assert.True(t, spec.EmitsTable)
	assert.NotEmpty(t, spec.Descriptions["name"])

	_, ok = r.Lookup("aws_lambda_function")
	assert.False(t, ok)
}

func TestTypes_Sorted(t *testing.T) {
	t.Parallel()

	types := New().Types()
	require.NotEmpty(t, types)
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1], types[i])
	}
	assert.Contains(t, types, "aws_s3_bucket")
}

func TestClassify(t *testing.T) {
	t.Parallel()
	r := New()
	ctx := context.Background()

	docs := []*planjson.Document{
		doc(t, "aws_s3_bucket", "b", `{"bucket": "b"}`),
		doc(t, "aws_iam_policy", "p", `{"name": "p"}`),
		doc(t, "aws_iam_role", "zeta", `{"name": "zeta"}`),
		doc(t, "aws_iam_role", "alpha", `{"name": "alpha"}`),
		doc(t, "aws_lambda_function", "fn", `{}`),
		doc(t, "aws_iam_role_policy_attachment", "attach", `{}`),
	}

	groups := r.Classify(ctx, docs)

	t.Run("views", func(t *testing.T) {
		require.Len(t, groups[render.ViewS3], 1)
		require.Len(t, groups[render.ViewIAM], 3)
		assert.Empty(t, groups[render.ViewNetwork])
		// Unsupported and non-emitting types are dropped.
		assert.Empty(t, groups[render.ViewDefault])
	})

	t.Run("ordering", func(t *testing.T) {
		iam := groups[render.ViewIAM]
		// Roles (priority 100) precede policies (90); same type sorts by
		// name.
		assert.Equal(t, "aws_iam_role.alpha", iam[0].Address)
		assert.Equal(t, "aws_iam_role.zeta", iam[1].Address)
		assert.Equal(t, "aws_iam_policy.p", iam[2].Address)
	})
}

func TestFoldAttachments_ResolvedARN(t *testing.T) {
	t.Parallel()
	r := New()

	role := doc(t, "aws_iam_role", "lambda", `{"name": "lambda-role"}`)
	attach := doc(t, "aws_iam_role_policy_attachment", "attach",
		`{"role": "lambda-role", "policy_arn": "arn:aws:iam::aws:policy/ReadOnlyAccess"}`)

	r.FoldAttachments(context.Background(), []*planjson.Document{role, attach})

	list := role.Values.Get("attached_policies")
	require.NotNil(t, list)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, "arn:aws:iam::aws:policy/ReadOnlyAccess", list.Index(0).AsString())
	assert.Empty(t, role.RefHints)
}

func TestFoldAttachments_PendingReference(t *testing.T) {
	t.Parallel()
	r := New()

	role := doc(t, "aws_iam_role", "lambda", `{"name": "lambda-role"}`)
	attach := doc(t, "aws_iam_role_policy_attachment", "attach",
		`{"role": "lambda-role", "policy_arn": null}`)
	attach.RefHints = map[string]string{"policy_arn": "aws_iam_policy.app"}

	r.FoldAttachments(context.Background(), []*planjson.Document{role, attach})

	list := role.Values.Get("attached_policies")
	require.NotNil(t, list)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, planjson.Null, list.Index(0).Kind)
	assert.Equal(t, "aws_iam_policy.app", role.RefHints["attached_policies[0]"])
}

func TestFoldAttachments_MultipleAttachments(t *testing.T) {
	t.Parallel()
	r := New()

	role := doc(t, "aws_iam_role", "lambda", `{"name": "lambda-role"}`)
	a1 := doc(t, "aws_iam_role_policy_attachment", "a1",
		`{"role": "lambda-role", "policy_arn": "arn:first"}`)
	a2 := doc(t, "aws_iam_role_policy_attachment", "a2",
		`{"role": "lambda-role", "policy_arn": null}`)
	a2.RefHints = map[string]string{"policy_arn": "aws_iam_policy.second"}

	r.FoldAttachments(context.Background(), []*planjson.Document{role, a1, a2})

	list := role.Values.Get("attached_policies")
	require.Equal(t, 2, list.Len())
	assert.Equal(t, "arn:first", list.Index(0).AsString())
	assert.Equal(t, "aws_iam_policy.second", role.RefHints["attached_policies[1]"])
}

func TestFoldAttachments_IgnoresBroken(t *testing.T) {
	t.Parallel()
	r := New()

	role := doc(t, "aws_iam_role", "lambda", `{"name": "lambda-role"}`)
	unknownRole := doc(t, "aws_iam_role_policy_attachment", "a1",
		`{"role": "nonexistent", "policy_arn": "arn:x"}`)
	noARN := doc(t, "aws_iam_role_policy_attachment", "a2",
		`{"role": "lambda-role", "policy_arn": null}`)

	r.FoldAttachments(context.Background(), []*planjson.Document{role, unknownRole, noARN})
	assert.Nil(t, role.Values.Get("attached_policies"))
}
