package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username must be at most 32 characters")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
	ErrRoleTooLong      = errors.New("role must be at most 32 characters")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrEmptyText        = errors.New("text is required")
	ErrTextTooLong      = errors.New("text must be at most 255 characters")
	ErrEmptyTagName     = errors.New("name is required")
	ErrTagNameTooLong   = errors.New("name must be at most 64 characters")
	ErrEmptyTagIDs      = errors.New("tags list cannot be empty")
	ErrInvalidTagID     = errors.New("invalid tag id")
	ErrEmptyFileName    = errors.New("file name is required")
)
