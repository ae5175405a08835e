package registry

import (
	"context"
	"fmt"

	"github.com/vk/tfsheet/internal/ctxlog"
	"github.com/vk/tfsheet/internal/planjson"
)

// FoldAttachments merges junction resources into the documents that own
// them. aws_iam_role_policy_attachment instances inject one
// attached_policies element into their role's value tree: a concrete ARN
// when the plan resolved it, or a null with a reference hint when the policy
// is created in the same plan.
//
// The documents slice is modified in place; attachment documents themselves
// stay in the slice but emit no table (see builtinSpecs).
func (r *Registry) FoldAttachments(ctx context.Context, docs []*planjson.Document) {
	logger := ctxlog.FromContext(ctx)

	rolesByName := make(map[string]*planjson.Document)
	for _, doc := range docs {
		if doc.Type == "aws_iam_role" {
			if name := doc.Values.Get("name").AsString(); name != "" {
				rolesByName[name] = doc
			}
		}
	}

	for _, doc := range docs {
		if doc.Type != "aws_iam_role_policy_attachment" {
			continue
		}

		roleName := doc.Values.Get("role").AsString()
		role, ok := rolesByName[roleName]
		if !ok {
			logger.Warn("Policy attachment references an unknown role.", "address", doc.Address, "role", roleName)
			continue
		}

		arn := doc.Values.Get("policy_arn")
		ref := ""
		if arn == nil || arn.Kind == planjson.Null {
			ref = doc.RefHints["policy_arn"]
			if ref == "" {
				logger.Warn("Policy attachment has neither an ARN nor a reference.", "address", doc.Address)
				continue
			}
		}
		appendAttachedPolicy(role, arn, ref)
		logger.Debug("Folded policy attachment into role.", "attachment", doc.Address, "role", role.Address)
	}
}

// appendAttachedPolicy adds one element to the role's attached_policies
// list, creating the list on first use. Unresolved ARNs are recorded as a
// null element plus a reference hint at the element's path.
func appendAttachedPolicy(role *planjson.Document, arn *planjson.Value, ref string) {
	list := role.Values.Get("attached_policies")
	if list == nil {
		list = &planjson.Value{Kind: planjson.Array}
		role.Values.Entries = append(role.Values.Entries, planjson.Entry{Key: "attached_policies", Value: list})
	}

	index := len(list.Items)
	if ref != "" {
		list.Items = append(list.Items, &planjson.Value{Kind: planjson.Null})
		if role.RefHints == nil {
			role.RefHints = make(map[string]string)
		}
		role.RefHints[fmt.Sprintf("attached_policies[%d]", index)] = ref
		return
	}
	list.Items = append(list.Items, arn)
}
