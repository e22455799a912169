package repository

import "errors"

// ErrDuplicateEmail is returned when an insert violates the case-insensitive
// unique index on users.email.
var ErrDuplicateEmail = errors.New("email already registered")
