// Package flatten converts a typed node tree into ordered relational rows.
//
// Every node becomes exactly one row in the table named by its variant,
// annotated with its ordinal within its immediate container and the table
// name and ordinal of its parent. Ordinals are assigned in source
// collection order during a depth-first walk, so re-flattening the same
// tree reproduces identical rows; re-ingestion replaces a record's rows
// rather than appending to them. The package also reassembles a row set
// back into a tree, which is how the round-trip is verified.
package flatten
