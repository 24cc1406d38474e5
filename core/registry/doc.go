// Package registry maps archive type tags to their concrete variants.
//
// Each variant is a plain Go struct whose fields carry `record` tags naming
// the archive field they are populated from. Registration compiles the
// struct once into a Schema: scalar columns, scalar list columns, and the
// child node fields the flattening engine recurses into. The registry is
// built once at startup and injected wherever tag resolution is needed;
// there is no process-wide instance.
package registry
