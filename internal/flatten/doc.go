// Package flatten turns a built attribute tree into the flat, ordered
// sequence of leaf records that one table renders, one record per scalar.
//
// Traversal is depth-first and pre-order: mapping children in insertion
// order, sequence children in index order. Record order is therefore fully
// determined by the tree, and the layout stage never reorders it.
package flatten
