// Package schema models the provider schema document produced by
// `terraform providers schema -json` and resolves attribute paths against
// it.
//
// A resolved path yields the metadata the attribute tree attaches to its
// nodes: requiredness, computed flag and description. Nested paths walk the
// block_types hierarchy; paths under a plain attribute (for example map
// attributes like tags) resolve to the attribute itself, matching how the
// provider documents them. A path the schema cannot resolve is reported as
// absent, never as an error.
package schema
