package planjson

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas
var schemaFS embed.FS

// planSchema is compiled once; plan validation runs per input file.
var planSchema = sync.OnceValues(compilePlanSchema)

// ValidationError is a single structural problem found in a plan document.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) String() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// compilePlanSchema loads the embedded plan schema into a compiler.
func compilePlanSchema() (*jsonschema.Schema, error) {
	data, err := schemaFS.ReadFile("schemas/plan.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded plan schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse embedded plan schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("plan.schema.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add plan schema resource: %w", err)
	}

	schema, err := c.Compile("plan.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile plan schema: %w", err)
	}
	return schema, nil
}

// ValidatePlan checks the structural shape of a raw plan document before any
// extraction runs. A nil result means the document is acceptable.
func ValidatePlan(data []byte) []ValidationError {
	schema, err := planSchema()
	if err != nil {
		return []ValidationError{{Message: err.Error()}}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("failed to parse JSON: %v", err)}}
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []ValidationError{{Message: err.Error()}}
	}
	return collectValidationErrors(validationErr)
}

// collectValidationErrors flattens the cause tree into leaf errors.
func collectValidationErrors(ve *jsonschema.ValidationError) []ValidationError {
	var errs []ValidationError

	if len(ve.Causes) == 0 {
		path := ""
		for _, seg := range ve.InstanceLocation {
			path += "/" + seg
		}
		errs = append(errs, ValidationError{Path: path, Message: ve.Error()})
		return errs
	}
	for _, cause := range ve.Causes {
		errs = append(errs, collectValidationErrors(cause)...)
	}
	return errs
}
