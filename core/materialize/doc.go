// Package materialize converts generic tagged records into typed nodes.
//
// The materializer is the single recursion point of the pipeline: it
// resolves the embedded type tag through the registry, fills the variant's
// declared fields from the record, and recurses into tagged sub-records
// and sequences to unbounded depth. Fields absent from the record keep
// their declared defaults; a record carrying nothing but its tag still
// materializes. A tagged value whose tag is not registered fails the whole
// enclosing record rather than being passed through as opaque data.
package materialize
