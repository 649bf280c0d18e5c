package storage

import "errors"

// ErrNotAuthorized is the single guard-rejection error. A mutation against
// a missing record id reports the same error: callers must not be able to
// tell a record they cannot touch from a record that does not exist.
var ErrNotAuthorized = errors.New("not authorized")
