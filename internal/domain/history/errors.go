package history

import "errors"

var (
	ErrEntryNotFound = errors.New("history entry not found")
)
