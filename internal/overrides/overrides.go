package overrides

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/vk/tfsheet/internal/ctxlog"
)

// Config is the decoded overrides file.
type Config struct {
	Resources []*ResourceOverride `hcl:"resource,block" yaml:"resources"`
}

// ResourceOverride adjusts the documentation of one resource type.
type ResourceOverride struct {
	Type string `hcl:"type,label" yaml:"type"`

	// Descriptions maps attribute paths (without sequence positions) to
	// replacement description text.
	Descriptions map[string]string `hcl:"descriptions,optional" yaml:"descriptions"`

	// Exclude lists additional attribute paths to drop from the output.
	Exclude []string `hcl:"exclude,optional" yaml:"exclude"`
}

// Load reads an overrides file. The format follows the file extension:
// .hcl decodes as HCL, .yaml/.yml as YAML. An empty path yields an empty
// configuration.
func Load(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading overrides file.", "path", path)

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".hcl":
		if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode overrides file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode overrides file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported overrides format %q (want .hcl, .yaml or .yml)", ext)
	}

	logger.Debug("Overrides loaded.", "path", path, "resourceTypes", len(cfg.Resources))
	return &cfg, nil
}

// forType returns the override block for a resource type, or nil.
func (c *Config) forType(resourceType string) *ResourceOverride {
	if c == nil {
		return nil
	}
	for _, res := range c.Resources {
		if res.Type == resourceType {
			return res
		}
	}
	return nil
}

// DescriptionsFor returns the user description overrides for a resource
// type. The result may be nil.
func (c *Config) DescriptionsFor(resourceType string) map[string]string {
	if res := c.forType(resourceType); res != nil {
		return res.Descriptions
	}
	return nil
}

// ExcludeFor returns the extra excluded paths for a resource type as a set.
func (c *Config) ExcludeFor(resourceType string) map[string]bool {
	res := c.forType(resourceType)
	if res == nil || len(res.Exclude) == 0 {
		return nil
	}
	set := make(map[string]bool, len(res.Exclude))
	for _, path := range res.Exclude {
		set[path] = true
	}
	return set
}
