package repository

import "errors"

var (
	// ErrNotFound reports that the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateAnswer reports a second answer for the same
	// (session, question) pair, rejected by the unique index.
	ErrDuplicateAnswer = errors.New("answer already recorded for question")

	// ErrVersionConflict reports a compare-and-swap progress update
	// that lost the race; the caller re-reads and retries.
	ErrVersionConflict = errors.New("session progress changed concurrently")
)
