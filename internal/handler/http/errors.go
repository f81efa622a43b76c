// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrNoCaller is returned when a protected handler runs without the auth
	// middleware having stored a caller.
	ErrNoCaller = errors.New("no authenticated caller in request context")

	// ErrMissingUploadFile is returned when the multipart form has no
	// "image" part.
	ErrMissingUploadFile = errors.New("no file in `image` form field")

	// ErrRequestTooLarge is returned when a body exceeds its size limit.
	ErrRequestTooLarge = errors.New("request body too large")
)
