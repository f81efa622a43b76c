// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-notes REST API.
//
// The primary abstraction is [ServerAdapter], which hides request building,
// credential headers and response decoding behind typed methods. The
// package ships an HTTP implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401). The server's {"error": ...} message is
// kept in the error text.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-notes/models"
)

// ServerAdapter defines communication with the go-notes server.
// Requests are authenticated with the stored bearer token when one is set,
// otherwise with the stored basic credentials, if any.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SetBasicAuth stores credentials used when no token is set.
	SetBasicAuth(username, password string)

	// Register creates a new user via POST /users.
	Register(ctx context.Context, user models.UserCreate) (models.User, error)

	// RequestToken calls GET /auth/token with the current credentials and
	// stores the returned token via SetToken.
	RequestToken(ctx context.Context) (models.TokenResponse, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, username string) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (models.User, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error)
	GetNote(ctx context.Context, id int64) (models.Note, error)
	UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) (models.Note, error)
	SetNoteTags(ctx context.Context, id int64, tags models.NoteTags) (models.Note, error)

	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, tag models.TagCreate) (models.Tag, error)
	GetTag(ctx context.Context, id int64) (models.Tag, error)

	// Upload sends content as the multipart "image" field of PUT /upload.
	Upload(ctx context.Context, name string, content io.Reader) (models.UploadResponse, error)

	// Download fetches a stored upload by name.
	Download(ctx context.Context, name string) ([]byte, error)

	Version(ctx context.Context) (models.AppBuildInfo, error)
}
