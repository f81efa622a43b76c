package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when creating or renaming a user
	// collides with an existing username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrTagAlreadyExists is returned when a tag with the same name exists.
	ErrTagAlreadyExists = errors.New("tag already exists")

	ErrUserNotFound = errors.New("user not found")
	ErrNoteNotFound = errors.New("note not found")
	ErrTagNotFound  = errors.New("tag not found")

	// ErrInvalidFileName is returned for upload names that reduce to nothing
	// usable once directory components are stripped.
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrFileNotFound is returned when a requested upload does not exist.
	ErrFileNotFound = errors.New("file not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// NotFoundError reports a missing row identified by one of its columns.
// It unwraps to the entity's sentinel (ErrNoteNotFound etc.), and its
// message is safe to show to API clients, e.g. "note with id=3 not found".
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
	Err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s=%v not found", e.Entity, e.Field, e.Value)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func userNotFound(id int64) error {
	return &NotFoundError{Entity: "user", Field: "id", Value: id, Err: ErrUserNotFound}
}

func noteNotFound(id int64) error {
	return &NotFoundError{Entity: "note", Field: "id", Value: id, Err: ErrNoteNotFound}
}

func tagNotFound(id int64) error {
	return &NotFoundError{Entity: "tag", Field: "id", Value: id, Err: ErrTagNotFound}
}
