package store

import (
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

// Repositories groups every storage dependency of the service layer.
type Repositories struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	TagRepository  TagRepository
	FileStorage    FileStorage
}

// NewRepositories builds the SQL repositories on top of db and the upload
// storage rooted at cfg.Files.UploadDir.
func NewRepositories(db *DB, cfg config.Storage, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
		TagRepository:  NewTagRepository(db, logger),
		FileStorage:    NewUploadFileStorage(cfg.Files.UploadDir, logger),
	}
}
