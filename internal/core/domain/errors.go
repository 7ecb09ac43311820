package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDatasetEmpty indicates no countries are available to play with.
	// Run a dataset sync before starting a session.
	ErrDatasetEmpty = errors.New("dataset is empty")

	// ErrDatasetUnavailable indicates the dataset source could not be reached.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrSessionFinished indicates a guess was submitted after the last round.
	ErrSessionFinished = errors.New("session already finished")

	// ErrNoSession indicates no session is in progress.
	ErrNoSession = errors.New("no session in progress")
)
