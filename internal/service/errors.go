package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthorized is returned when a request carries no usable
	// credentials at all.
	ErrUnauthorized = errors.New("authentication required")

	// ErrWrongCredentials is returned for an unknown username or a password
	// that does not match. The two cases are deliberately indistinguishable.
	ErrWrongCredentials = errors.New("wrong username or password")

	// ErrTokenIsExpiredOrInvalid covers every token verification failure:
	// bad signature, wrong issuer, expiry, malformed input, or a subject
	// that no longer exists.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrForbidden is returned when an authenticated caller is not allowed
	// to perform the operation.
	ErrForbidden = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
