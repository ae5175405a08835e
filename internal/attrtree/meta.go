package attrtree

// Requiredness classifies how an attribute relates to user input according
// to the provider schema.
type Requiredness int

const (
	// Unknown means the schema has no entry for the path.
	Unknown Requiredness = iota
	// Required means the schema marks the attribute as required.
	Required
	// Optional means the schema marks the attribute as optional.
	Optional
	// ComputedOnly means the attribute is computed and neither required nor
	// optional, i.e. never user-configurable.
	ComputedOnly
)

// String returns the requiredness name for logging.
func (r Requiredness) String() string {
	switch r {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case ComputedOnly:
		return "computed-only"
	default:
		return "unknown"
	}
}

// AttributeMeta carries the schema-derived facts about one attribute path.
// It is resolved once during tree building and cached on the node.
type AttributeMeta struct {
	Requiredness Requiredness
	Computed     bool
	Description  string
	DefaultHint  string
}

// SchemaLookup resolves attribute paths against a provider schema. A path
// the schema cannot resolve returns ok=false, never an error.
type SchemaLookup interface {
	Lookup(path string) (AttributeMeta, bool)
}

// SchemaLookupFunc adapts a plain function to the SchemaLookup interface.
type SchemaLookupFunc func(path string) (AttributeMeta, bool)

// Lookup implements SchemaLookup.
func (f SchemaLookupFunc) Lookup(path string) (AttributeMeta, bool) {
	return f(path)
}

// ResolveRequiredness maps the three schema booleans onto the closed
// Requiredness enum. known=false yields Unknown regardless of the flags.
func ResolveRequiredness(known, required, optional, computed bool) Requiredness {
	switch {
	case !known:
		return Unknown
	case required:
		return Required
	case optional:
		return Optional
	case computed:
		return ComputedOnly
	default:
		return Optional
	}
}
