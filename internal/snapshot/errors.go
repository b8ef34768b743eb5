package snapshot

import "fmt"

// StorageError reports that fetching one part of the record failed. The
// whole aggregation aborts rather than returning a partial snapshot: a
// silently incomplete record is worse than no record for any consumer that
// renders an emergency or safety view.
type StorageError struct {
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
