package repository

import "errors"

// ErrNoTarget is returned when a user has no active target configuration.
var ErrNoTarget = errors.New("no target configured")
