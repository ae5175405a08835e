package registry

import "github.com/vk/tfsheet/internal/render"

// builtinSpecs is the closed table of supported resource types. Adding
// support for a type means adding an entry here, nothing else.
var builtinSpecs = []*Spec{
	{
		Type:       "aws_iam_role",
		View:       render.ViewIAM,
		Priority:   100,
		EmitsTable: true,
		Descriptions: map[string]string{
			"name":                  "Name of the IAM role",
			"assume_role_policy":    "Policy document (JSON) defining which entities may assume this role",
			"description":           "Description of the IAM role",
			"max_session_duration":  "Maximum session duration in seconds, default 3600 (one hour)",
			"force_detach_policies": "Whether attached policies are force-detached when the role is destroyed",
			"path":                  "Path of the IAM role, default /",
			"permissions_boundary":  "ARN of the permissions boundary applied to this role",
			"tags.Name":             "Tag holding the resource name",
			"attached_policies":     "ARNs of the IAM policies attached to this role",
		},
	},
	{
		Type:       "aws_iam_policy",
		View:       render.ViewIAM,
		Priority:   90,
		EmitsTable: true,
		Descriptions: map[string]string{
			"name":        "Name of the IAM policy",
			"policy":      "Policy document (JSON) defining access permissions",
			"description": "Description of the IAM policy",
			"path":        "Path of the IAM policy, default /",
			"tags.Name":   "Tag holding the resource name",
		},
	},
	{
		// Folded into the owning role's attached_policies rows.
		Type:       "aws_iam_role_policy_attachment",
		View:       render.ViewIAM,
		Priority:   0,
		EmitsTable: false,
	},
	{
		Type:       "aws_s3_bucket",
		View:       render.ViewS3,
		Priority:   50,
		EmitsTable: true,
		Descriptions: map[string]string{
			"bucket":        "Name of the S3 bucket, globally unique",
			"force_destroy": "Whether the bucket is destroyed even when it still holds objects",
			"tags.Name":     "Tag holding the resource name",
			"timeouts":      "Create/update/delete timeout settings",
		},
	},
	{
		Type:       "aws_s3_bucket_cors_configuration",
		View:       render.ViewS3,
		Priority:   45,
		EmitsTable: true,
		Descriptions: map[string]string{
			"bucket":                    "ID of the S3 bucket the CORS configuration applies to",
			"cors_rule":                 "CORS rules; each rule defines the allowed origins, methods and headers",
			"cors_rule.allowed_headers": "Allowed HTTP headers; * allows every header",
			"cors_rule.allowed_methods": "Allowed HTTP methods (GET, POST, PUT, DELETE, ...)",
			"cors_rule.allowed_origins": "Allowed origins; * allows every origin",
			"cors_rule.expose_headers":  "Response headers exposed to the client",
			"cors_rule.max_age_seconds": "Seconds a browser may cache the preflight response",
		},
	},
	{
		Type:       "aws_s3_bucket_versioning",
		View:       render.ViewS3,
		Priority:   45,
		EmitsTable: true,
		Descriptions: map[string]string{
			"bucket":                              "ID of the S3 bucket the versioning configuration applies to",
			"versioning_configuration":            "Versioning settings",
			"versioning_configuration.status":     "Versioning status (Enabled/Suspended/Disabled)",
			"versioning_configuration.mfa_delete": "MFA delete status",
		},
	},
	{
		Type:       "aws_vpc",
		View:       render.ViewNetwork,
		Priority:   70,
		EmitsTable: true,
		Descriptions: map[string]string{
			"cidr_block":           "IPv4 CIDR block of the VPC",
			"enable_dns_support":   "Whether DNS resolution is enabled in the VPC",
			"enable_dns_hostnames": "Whether instances receive public DNS hostnames",
			"tags.Name":            "Tag holding the resource name",
		},
	},
	{
		Type:       "aws_subnet",
		View:       render.ViewNetwork,
		Priority:   65,
		EmitsTable: true,
		Descriptions: map[string]string{
			"vpc_id":                  "ID of the VPC the subnet belongs to",
			"cidr_block":              "IPv4 CIDR block of the subnet",
			"availability_zone":       "Availability zone of the subnet",
			"map_public_ip_on_launch": "Whether instances launched here receive a public IP",
			"tags.Name":               "Tag holding the resource name",
		},
	},
	{
		Type:       "aws_security_group",
		View:       render.ViewNetwork,
		Priority:   60,
		EmitsTable: true,
		Descriptions: map[string]string{
			"name":        "Name of the security group",
			"description": "Description of the security group",
			"vpc_id":      "ID of the VPC the security group belongs to",
			"ingress":     "Inbound rules",
			"egress":      "Outbound rules",
			"tags.Name":   "Tag holding the resource name",
		},
	},
}
