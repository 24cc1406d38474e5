// Package store persists flattened spell rows through GORM. Tables are
// created from the compiled variant schemas, one table per variant, each
// carrying the shared linkage columns alongside the variant's declared
// fields. The store also keeps a log of ingestion passes.
package store
