package store

import "errors"

var (
	// ErrEmailAlreadyExists maps the users.email unique violation.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a credential lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNotFound covers both a truly absent row and a row owned by someone
	// else. Repositories never distinguish the two, so existence is not
	// leaked to unauthorized callers.
	ErrNotFound = errors.New("record not found")

	ErrBuildingQuery  = errors.New("error building query")
	ErrExecutingQuery = errors.New("error executing query")
	ErrScanningRow    = errors.New("error scanning row")
	ErrScanningRows   = errors.New("error scanning rows")
)
