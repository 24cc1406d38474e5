// Package source provides record sources for spell archive dumps. A dump
// is a set of JSON documents, one tagged record each, addressed either on
// the local filesystem or in object storage.
package source
