// Package attrtree builds the typed attribute tree for one resource
// document.
//
// The builder wraps a raw decoded value tree into Node values (scalar,
// mapping, sequence), resolves schema metadata and description overrides for
// every path, marks unresolved values that carry a reference hint as pending,
// and prunes paths the exclusion policy rejects. The result is the only
// input the flattening and layout stages consume.
//
// Building is a pure transformation: a malformed subtree degrades to a
// stringified scalar and is reported as a diagnostic, and only an
// over-deep tree aborts the document.
package attrtree
