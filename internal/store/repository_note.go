// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. Notes are
// read joined with their author; tags are loaded with one extra query per
// call regardless of how many notes were selected.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.builder, note)
	if err != nil {
		return models.Note{}, err
	}

	var id int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.classify(err) == ForeignKeyViolation {
			return models.Note{}, userNotFound(note.AuthorID)
		}
		log.Err(err).Str("func", "*noteRepository.CreateNote").Int64("author_id", note.AuthorID).Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.getNote(ctx, r.DB, id)
}

func (r *noteRepository) GetNoteByID(ctx context.Context, id int64) (models.Note, error) {
	return r.getNote(ctx, r.DB, id)
}

func (r *noteRepository) ListNotesVisibleTo(ctx context.Context, userID int64) ([]models.Note, error) {
	return r.selectNotes(ctx, r.DB, visibleTo(userID))
}

// UpdateNote writes text and private of note.ID and returns the stored note.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.builder, note)
	if err != nil {
		return models.Note{}, err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("note_id", note.ID).Msg("error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Note{}, noteNotFound(note.ID)
	}

	return r.getNote(ctx, r.DB, note.ID)
}

// DeleteNote removes the note and its tag links.
func (r *noteRepository) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteNoteTagsQuery(r.builder, id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildDeleteNoteQuery(r.builder, id)
		if err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return noteNotFound(id)
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrNoteNotFound) {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("note_id", id).Msg("error deleting note")
	}

	return err
}

// SetNoteTags links every id in tagIDs to the note inside one transaction.
// The first unknown tag id aborts the whole operation with ErrTagNotFound;
// pairs that are already linked are skipped.
func (r *noteRepository) SetNoteTags(ctx context.Context, noteID int64, tagIDs []int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.checkExists(ctx, tx, noteID, buildNoteExistsQuery, noteNotFound); err != nil {
			return err
		}

		for _, tagID := range tagIDs {
			if err := r.checkExists(ctx, tx, tagID, buildTagExistsQuery, tagNotFound); err != nil {
				return err
			}

			query, args, err := buildInsertNoteTagQuery(r.builder, noteID, tagID)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		var err error
		note, err = r.getNote(ctx, tx, noteID)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNoteNotFound) && !errors.Is(err, ErrTagNotFound) {
			log.Err(err).Str("func", "*noteRepository.SetNoteTags").Int64("note_id", noteID).Msg("error linking tags")
		}
		return models.Note{}, err
	}

	return note, nil
}

func (r *noteRepository) checkExists(
	ctx context.Context,
	q queryer,
	id int64,
	build func(sq.StatementBuilderType, int64) (string, []any, error),
	notFound func(int64) error,
) error {
	query, args, err := build(r.builder, id)
	if err != nil {
		return err
	}

	var found int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(id)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *noteRepository) getNote(ctx context.Context, q queryer, id int64) (models.Note, error) {
	notes, err := r.selectNotes(ctx, q, sq.Eq{"n.id": id})
	if err != nil {
		return models.Note{}, err
	}
	if len(notes) == 0 {
		return models.Note{}, noteNotFound(id)
	}

	return notes[0], nil
}

func (r *noteRepository) selectNotes(ctx context.Context, q queryer, where sq.Sqlizer) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(r.builder, where)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.selectNotes").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(
			&n.ID, &n.AuthorID, &n.Text, &n.Private,
			&n.Author.ID, &n.Author.Username, &n.Author.PasswordHash, &n.Author.IsStaff, &n.Author.Role,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		n.Tags = []models.Tag{}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := r.attachTags(ctx, q, notes); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) attachTags(ctx context.Context, q queryer, notes []models.Note) error {
	if len(notes) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(notes))
	byID := make(map[int64]int, len(notes))
	for i, n := range notes {
		ids = append(ids, n.ID)
		byID[n.ID] = i
	}

	query, args, err := buildSelectNoteTagsQuery(r.builder, ids)
	if err != nil {
		return err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var noteID int64
		var tag models.Tag
		if err := rows.Scan(&noteID, &tag.ID, &tag.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := byID[noteID]; ok {
			notes[i].Tags = append(notes[i].Tags, tag)
		}
	}

	return rows.Err()
}
