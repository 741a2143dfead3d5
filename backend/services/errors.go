package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed caller input. Not retryable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfOrderActivity is returned when an activity date precedes the
	// last recorded one (clock skew or a backfill attempt). The streak
	// record is left untouched.
	ErrOutOfOrderActivity = errors.New("activity date precedes last recorded activity")

	// ErrUserNotFound is returned by streak repair when the user has no
	// activity history to rebuild from.
	ErrUserNotFound = errors.New("user has no activity history")
)

// StoreError wraps a persistence failure. Every engine operation re-reads
// state before mutating, so callers may retry the whole call.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
