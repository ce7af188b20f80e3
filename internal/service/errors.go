package service

import "errors"

// Failure taxonomy of the engine. Every operation reports failures as
// one of these (or a wrapped persistence error); nothing is swallowed.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrOptionNotFound   = errors.New("option not found for question")

	// ErrSessionCompleted rejects operations that are only legal on an
	// active session; completion is a one-way transition.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrAlreadyAnswered rejects a second answer for the same question
	// within a session.
	ErrAlreadyAnswered = errors.New("question already answered in this session")
)
