package visit

import "errors"

var (
	ErrVisitNotFound = errors.New("visit not found")
	ErrInvalidSort   = errors.New("invalid sort order")
)
