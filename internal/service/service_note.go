package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/access"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// ListNotes returns the caller's own notes and every public note.
func (n *noteService) ListNotes(ctx context.Context, caller models.User) ([]models.Note, error) {
	return n.noteRepository.ListNotesVisibleTo(ctx, caller.ID)
}

// CreateNote stores a note authored by caller. A note is private unless the
// request says otherwise.
func (n *noteService) CreateNote(ctx context.Context, caller models.User, note models.NoteCreate) (models.Note, error) {
	private := true
	if note.Private != nil {
		private = *note.Private
	}

	return n.noteRepository.CreateNote(ctx, models.Note{
		AuthorID: caller.ID,
		Text:     note.Text,
		Private:  private,
	})
}

func (n *noteService) GetNote(ctx context.Context, caller models.User, id int64) (models.Note, error) {
	note, err := n.noteRepository.GetNoteByID(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	if !access.CanViewNote(caller, note) {
		return models.Note{}, ErrForbidden
	}

	return note, nil
}

// UpdateNote applies the set fields of update. Only the author may edit.
func (n *noteService) UpdateNote(ctx context.Context, caller models.User, id int64, update models.NoteUpdate) (models.Note, error) {
	note, err := n.noteRepository.GetNoteByID(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	if !access.CanEditNote(caller, note) {
		return models.Note{}, ErrForbidden
	}

	if update.Text != nil {
		note.Text = *update.Text
	}
	if update.Private != nil {
		note.Private = *update.Private
	}

	return n.noteRepository.UpdateNote(ctx, note)
}

// DeleteNote removes a note owned by caller and returns it as it was
// before deletion.
func (n *noteService) DeleteNote(ctx context.Context, caller models.User, id int64) (models.Note, error) {
	note, err := n.noteRepository.GetNoteByID(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	if !access.CanDeleteNote(caller, note) {
		return models.Note{}, ErrForbidden
	}

	if err := n.noteRepository.DeleteNote(ctx, id); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (n *noteService) SetNoteTags(ctx context.Context, noteID int64, tags models.NoteTags) (models.Note, error) {
	return n.noteRepository.SetNoteTags(ctx, noteID, tags.Tags)
}
