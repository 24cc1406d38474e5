package ingest

import "errors"

// transientError marks a store fault as temporary and worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string {
	return "transient store error: " + e.err.Error()
}

func (e *transientError) Unwrap() error {
	return e.err
}

// Transient wraps a store error to mark it as retryable. Stores wrap
// connection-class failures this way; everything else aborts the batch
// permanently.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether any error in the chain was marked transient.
func IsTransient(err error) bool {
	var t *transientError
	return errors.As(err, &t)
}
