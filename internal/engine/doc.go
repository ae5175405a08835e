// Package engine runs the per-document pipeline: build the attribute tree,
// flatten it into leaf records, compute the merge layout, and hand the
// result to a renderer.
//
// Each Process call is a pure, synchronous transformation of one document.
// Calls are independent, so callers are free to process documents
// concurrently; the engine itself holds no state between calls.
package engine
