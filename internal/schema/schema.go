package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/tfsheet/internal/ctxlog"
)

// File mirrors the top level of a provider schema document.
type File struct {
	FormatVersion   string                     `json:"format_version"`
	ProviderSchemas map[string]*ProviderSchema `json:"provider_schemas"`
}

// ProviderSchema is the schema set of one provider.
type ProviderSchema struct {
	ResourceSchemas map[string]*ResourceSchema `json:"resource_schemas"`
}

// ResourceSchema is the schema of one resource type.
type ResourceSchema struct {
	Version int    `json:"version"`
	Block   *Block `json:"block"`
}

// Block is one nesting level of a resource schema: its plain attributes and
// its nested block types.
type Block struct {
	Attributes map[string]*Attribute `json:"attributes"`
	BlockTypes map[string]*BlockType `json:"block_types"`
}

// Attribute is one plain attribute definition.
type Attribute struct {
	Required    bool   `json:"required"`
	Optional    bool   `json:"optional"`
	Computed    bool   `json:"computed"`
	Description string `json:"description"`
	Deprecated  bool   `json:"deprecated"`
}

// BlockType is one nested block definition.
type BlockType struct {
	NestingMode string `json:"nesting_mode"`
	MinItems    int    `json:"min_items"`
	MaxItems    int    `json:"max_items"`
	Block       *Block `json:"block"`
}

// Store holds the resource schemas of every provider in one flat index,
// keyed by resource type.
type Store struct {
	resources map[string]*ResourceSchema
}

// NewStore builds a store from an already-decoded schema file.
func NewStore(file *File) *Store {
	s := &Store{resources: make(map[string]*ResourceSchema)}
	if file == nil {
		return s
	}
	for _, provider := range file.ProviderSchemas {
		for typ, rs := range provider.ResourceSchemas {
			s.resources[typ] = rs
		}
	}
	return s
}

// LoadFile reads and decodes a provider schema document. Key order carries
// no meaning here, so the plain JSON decoder is sufficient.
func LoadFile(ctx context.Context, path string) (*Store, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading provider schema file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode schema file %s: %w", path, err)
	}

	store := NewStore(&file)
	logger.Debug("Provider schema loaded.", "path", path, "resourceTypes", len(store.resources))
	return store, nil
}

// ForResource returns the lookup view for one resource type, or nil when
// the store has no schema for it. A nil *Resource is still usable and
// resolves every path as absent.
func (s *Store) ForResource(resourceType string) *Resource {
	if s == nil {
		return nil
	}
	rs, ok := s.resources[resourceType]
	if !ok {
		return nil
	}
	return &Resource{schema: rs}
}
