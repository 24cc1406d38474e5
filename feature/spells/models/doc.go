// Package models declares the spell variant catalog of the game archive.
//
// Every struct mirrors one serialized class: its fields carry `record`
// tags naming the archive field they are filled from, and Table names the
// relational table its rows land in. Effects and requirements form two
// interface families so child fields can declare which family they hold;
// several effect variants nest further effect or requirement trees, which
// the materializer resolves recursively.
//
// The type tags are the archive's stable class hashes for the supported
// revision; DefaultRegistry binds the full catalog.
package models
