package planjson

import "encoding/json"

// Kind discriminates the shape of a Value.
type Kind int

const (
	// Invalid is the zero Kind. A Value of this kind carries no data and
	// signals a decoding defect to downstream consumers.
	Invalid Kind = iota
	// Null is a JSON null.
	Null
	// Bool is a JSON boolean.
	Bool
	// Number is a JSON number, kept as json.Number to avoid float rounding.
	Number
	// String is a JSON string.
	String
	// Object is a JSON object with insertion-ordered entries.
	Object
	// Array is a JSON array.
	Array
)

// String returns the kind name for logging and diagnostics.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "invalid"
	}
}

// Entry is one key/value pair of an Object, in document order.
type Entry struct {
	Key   string
	Value *Value
}

// Value is one node of a decoded JSON document. Exactly one of the payload
// fields is meaningful, selected by Kind.
type Value struct {
	Kind    Kind
	Bool    bool
	Num     json.Number
	Str     string
	Entries []Entry  // Object only, insertion order
	Items   []*Value // Array only
}

// Get returns the value of the named object entry, or nil when the receiver
// is not an object or has no such key.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Kind != Object {
		return nil
	}
	for _, e := range v.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th array item, or nil when out of range or the
// receiver is not an array.
func (v *Value) Index(i int) *Value {
	if v == nil || v.Kind != Array || i < 0 || i >= len(v.Items) {
		return nil
	}
	return v.Items[i]
}

// AsString returns the string payload, or "" for any other kind.
func (v *Value) AsString() string {
	if v == nil || v.Kind != String {
		return ""
	}
	return v.Str
}

// Len returns the number of array items or object entries.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case Array:
		return len(v.Items)
	case Object:
		return len(v.Entries)
	default:
		return 0
	}
}

// IsScalar reports whether the value is a terminal (non-container) node.
func (v *Value) IsScalar() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case Null, Bool, Number, String:
		return true
	default:
		return false
	}
}
