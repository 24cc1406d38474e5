package materialize

import "fmt"

// UnresolvedTagError reports a type tag present in the data that has no
// registered variant. It fails the enclosing record; ingestion of other
// records continues.
type UnresolvedTagError struct {
	// Tag is the unregistered type tag.
	Tag uint32
	// Path is the dotted field path from the record root, empty at the root.
	Path string
}

func (e *UnresolvedTagError) Error() string {
	return fmt.Sprintf("unresolved type tag %d at %s", e.Tag, pathOrRoot(e.Path))
}

// MaterializationError reports a field value that could not be resolved
// into a valid typed node despite its tag being known, or a malformed
// nested structure. It always carries the dotted field path from the
// record root.
type MaterializationError struct {
	// Tag is the tag of the variant being materialized when the failure
	// occurred, zero if none was resolved yet.
	Tag uint32
	// Path is the dotted field path from the record root.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *MaterializationError) Error() string {
	return fmt.Sprintf("materialization failed at %s (tag %d): %v", pathOrRoot(e.Path), e.Tag, e.Err)
}

func (e *MaterializationError) Unwrap() error {
	return e.Err
}

func pathOrRoot(path string) string {
	if path == "" {
		return "record root"
	}
	return path
}
