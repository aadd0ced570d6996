package linear

import "errors"

// ErrEmptySource is returned when a LinkedList is reset from an empty
// sequence of values.
var ErrEmptySource = errors.New("linear: non-empty source required")
