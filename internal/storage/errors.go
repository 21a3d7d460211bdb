package storage

import "errors"

// ErrNotFound is shared by all Store implementations. Handlers map it
// to an empty 404 state; anything else is a fetch failure and renders
// as a degraded/empty view while still being logged.
var ErrNotFound = errors.New("not found")
