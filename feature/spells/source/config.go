package source

// Source kinds selectable through configuration.
const (
	KindDir     = "dir"
	KindStorage = "storage"
)
