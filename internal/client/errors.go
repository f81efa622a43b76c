package client

import "errors"

var (
	// ErrUsage wraps every error caused by a malformed command line.
	ErrUsage = errors.New("usage error")

	ErrNoServerAdapter = errors.New("no server adapter provided")
	ErrNoOutput        = errors.New("no output writer provided")
)
