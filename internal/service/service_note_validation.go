package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, caller models.User) ([]models.Note, error) {
	return v.inner.ListNotes(ctx, caller)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, caller models.User, note models.NoteCreate) (models.Note, error) {
	// only text is required; private falls back to true downstream
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, caller, note)
}

func (v *NoteValidationService) GetNote(ctx context.Context, caller models.User, id int64) (models.Note, error) {
	return v.inner.GetNote(ctx, caller, id)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, caller models.User, id int64, update models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, caller, id, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, caller models.User, id int64) (models.Note, error) {
	return v.inner.DeleteNote(ctx, caller, id)
}

func (v *NoteValidationService) SetNoteTags(ctx context.Context, noteID int64, tags models.NoteTags) (models.Note, error) {
	if err := v.validator.Validate(ctx, tags); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SetNoteTags(ctx, noteID, tags)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
