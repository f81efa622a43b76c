package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/models"
)

var (
	userColumns = []string{"id", "username", "password_hash", "is_staff", "role"}
	tagColumns  = []string{"id", "name"}

	// noteColumns select a note joined with its author (alias u).
	noteColumns = []string{
		"n.id", "n.author_id", "n.text", "n.private",
		"u.id", "u.username", "u.password_hash", "u.is_staff", "u.role",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// users

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert("users").
		Columns("username", "password_hash", "is_staff", "role").
		Values(user.Username, user.PasswordHash, user.IsStaff, user.Role).
		Suffix(returning(userColumns)))
}

func buildSelectUsersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(userColumns...).From("users")
	if where != nil {
		query = query.Where(where)
	}
	return toSQL(query.OrderBy("id"))
}

// likeEscaper escapes the LIKE wildcards so that a search term matches
// literally. The escape character is declared with ESCAPE in usernameContains.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// usernameContains matches usernames containing substring, ignoring case in
// both dialects.
func usernameContains(substring string) sq.Sqlizer {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(substring)) + "%"
	return sq.Expr(`LOWER(username) LIKE ? ESCAPE '\'`, pattern)
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Update("users").
		Set("username", user.Username).
		Set("role", user.Role).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returning(userColumns)))
}

func buildDeleteUserNoteTagsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Delete("note_tags").
		Where(sq.Expr("note_id IN (SELECT id FROM notes WHERE author_id = ?)", userID)))
}

func buildDeleteUserNotesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Delete("notes").Where(sq.Eq{"author_id": userID}))
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Delete("users").Where(sq.Eq{"id": userID}))
}

// notes

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return toSQL(b.Insert("notes").
		Columns("author_id", "text", "private").
		Values(note.AuthorID, note.Text, note.Private).
		Suffix("RETURNING id"))
}

func buildSelectNotesQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(noteColumns...).
		From("notes n").
		Join("users u ON u.id = n.author_id")
	if where != nil {
		query = query.Where(where)
	}
	return toSQL(query.OrderBy("n.id"))
}

func visibleTo(userID int64) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"n.author_id": userID},
		sq.Eq{"n.private": false},
	}
}

func buildSelectNoteTagsQuery(b sq.StatementBuilderType, noteIDs []int64) (string, []any, error) {
	return toSQL(b.Select("nt.note_id", "t.id", "t.name").
		From("note_tags nt").
		Join("tags t ON t.id = nt.tag_id").
		Where(sq.Eq{"nt.note_id": noteIDs}).
		OrderBy("nt.note_id", "t.id"))
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return toSQL(b.Update("notes").
		Set("text", note.Text).
		Set("private", note.Private).
		Where(sq.Eq{"id": note.ID}))
}

func buildDeleteNoteTagsQuery(b sq.StatementBuilderType, noteID int64) (string, []any, error) {
	return toSQL(b.Delete("note_tags").Where(sq.Eq{"note_id": noteID}))
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, noteID int64) (string, []any, error) {
	return toSQL(b.Delete("notes").Where(sq.Eq{"id": noteID}))
}

func buildNoteExistsQuery(b sq.StatementBuilderType, noteID int64) (string, []any, error) {
	return toSQL(b.Select("id").From("notes").Where(sq.Eq{"id": noteID}))
}

func buildInsertNoteTagQuery(b sq.StatementBuilderType, noteID, tagID int64) (string, []any, error) {
	return toSQL(b.Insert("note_tags").
		Columns("note_id", "tag_id").
		Values(noteID, tagID).
		Suffix("ON CONFLICT DO NOTHING"))
}

// tags

func buildInsertTagQuery(b sq.StatementBuilderType, tag models.Tag) (string, []any, error) {
	return toSQL(b.Insert("tags").
		Columns("name").
		Values(tag.Name).
		Suffix(returning(tagColumns)))
}

func buildSelectTagsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(tagColumns...).From("tags")
	if where != nil {
		query = query.Where(where)
	}
	return toSQL(query.OrderBy("id"))
}
