// Package layout computes the row/column merge plan for one flattened
// record sequence.
//
// The table convention gives every nesting level a pair of sub-columns (a
// parameter-name cell and an index cell). For each level the engine finds
// maximal runs of consecutive records that share their ancestry, in two
// families: name groups ignore the sequence index at the level itself, so
// all elements of one list merge into a single name cell, while index groups
// compare the full prefix including the index, so each element gets its own
// index cell. Records whose path ends above the deepest level receive a
// column-span override covering the sub-columns they leave unused.
//
// The engine only annotates the record order the flattener produced; it
// never reorders.
package layout
