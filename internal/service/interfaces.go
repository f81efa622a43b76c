package service

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-notes/models"
)

// AuthService hashes passwords, issues and verifies bearer tokens and
// resolves request credentials to a user.
type AuthService interface {
	HashPassword(ctx context.Context, password string) (string, error)
	IssueToken(ctx context.Context, user models.User) (models.Token, error)
	// VerifyToken returns the user id carried by token. Every failure is
	// reported as ErrTokenIsExpiredOrInvalid.
	VerifyToken(ctx context.Context, token string) (int64, error)
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// UserService manages user accounts. Methods that need an authenticated
// actor take it as the explicit caller argument.
type UserService interface {
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, substring string) ([]models.User, error)
	UpdateUser(ctx context.Context, caller models.User, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, caller models.User, id int64) (models.User, error)
}

// NoteService manages notes on behalf of a caller.
type NoteService interface {
	ListNotes(ctx context.Context, caller models.User) ([]models.Note, error)
	CreateNote(ctx context.Context, caller models.User, note models.NoteCreate) (models.Note, error)
	GetNote(ctx context.Context, caller models.User, id int64) (models.Note, error)
	UpdateNote(ctx context.Context, caller models.User, id int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, caller models.User, id int64) (models.Note, error)
	SetNoteTags(ctx context.Context, noteID int64, tags models.NoteTags) (models.Note, error)
}

type TagService interface {
	CreateTag(ctx context.Context, tag models.TagCreate) (models.Tag, error)
	GetTag(ctx context.Context, id int64) (models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// UploadService stores uploaded files and opens them for download.
type UploadService interface {
	Upload(ctx context.Context, name string, content io.Reader) (models.Upload, error)
	Open(ctx context.Context, name string) (*os.File, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// UserServiceWrapper, NoteServiceWrapper and TagServiceWrapper decorate a
// service with additional behavior such as request validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

type TagServiceWrapper interface {
	Wrap(TagService) TagService
}
