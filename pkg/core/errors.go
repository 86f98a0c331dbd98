package core

import "errors"

// ErrNotFound is returned when a component or build ID has no matching
// record.
var ErrNotFound = errors.New("not found")
