// Package overrides loads the optional user configuration that adjusts
// generated sheets: replacement description text per attribute path and
// extra excluded paths, both scoped per resource type.
//
// The file may be HCL or YAML, selected by extension; both decode into the
// same model. Overrides are passed into the pipeline as immutable values,
// never held as process-wide state.
package overrides
