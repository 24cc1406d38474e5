// Package record defines the generic key/value form of one archive object.
//
// Upstream tooling unpacks the game archive and dumps each addressable
// object as a JSON document whose mappings carry an embedded integer type
// tag under the "$__type" key. This package only models that shape; it
// knows nothing about the archive container, compression, or the concrete
// variants behind the tags.
package record
