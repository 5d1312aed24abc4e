package platform

import (
	"errors"
)

// ErrMissingCursor is an error returned when an incremental sync is requested
// without the timestamp cursor of the last successful run.
var ErrMissingCursor = errors.New("incremental sync requires an updated-after cursor")
