package store

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, substring string) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUser removes the user together with their notes and the notes'
	// tag links, returning the removed user.
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// NoteRepository persists notes and their tag links. Returned notes carry
// the nested author and tags.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNoteByID(ctx context.Context, id int64) (models.Note, error)
	// ListNotesVisibleTo returns notes authored by userID plus every public
	// note, ordered by id.
	ListNotesVisibleTo(ctx context.Context, userID int64) ([]models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	// SetNoteTags links tagIDs to the note. Existing links are kept.
	SetNoteTags(ctx context.Context, noteID int64, tagIDs []int64) (models.Note, error)
}

// TagRepository persists tags.
type TagRepository interface {
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	GetTagByID(ctx context.Context, id int64) (models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// FileStorage stores uploaded files by name.
type FileStorage interface {
	Save(ctx context.Context, name string, content io.Reader) (models.Upload, error)
	Open(ctx context.Context, name string) (*os.File, error)
}
