package adapter

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

// startStack runs the full server (SQLite store, services, router) behind an
// httptest server and returns its URL.
func startStack(t *testing.T, tokenDuration time.Duration) string {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "e2e-secret",
			TokenIssuer:   "go-notes-e2e",
			TokenDuration: tokenDuration,
		},
		Storage: config.Storage{
			DB:    config.DB{DSN: "sqlite://" + filepath.Join(dir, "notes.db")},
			Files: config.Files{UploadDir: filepath.Join(dir, "uploads")},
		},
		Server: config.Server{HTTPAddress: ":0"},
	}

	db, err := store.NewDB(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	services, err := service.NewServices(store.NewRepositories(db, cfg.Storage, logger.Nop()), cfg, models.NewAppBuildInfo("e2e", "", ""), logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg.Server, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)
	return srv.URL
}

func newClient(t *testing.T, url, username, password string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		ServerURL:      url,
		RequestTimeout: 10 * time.Second,
		Username:       username,
		Password:       password,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestE2E_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	anon := newClient(t, startStack(t, time.Minute), "", "")

	_, err := anon.Register(ctx, models.UserCreate{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = anon.Register(ctx, models.UserCreate{Username: "alice", Password: "other"})
	require.ErrorIs(t, err, ErrBadRequest)

	users, err := anon.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestE2E_PasswordLengthLimit(t *testing.T) {
	ctx := context.Background()
	anon := newClient(t, startStack(t, time.Minute), "", "")

	_, err := anon.Register(ctx, models.UserCreate{Username: "bob", Password: strings.Repeat("p", 80)})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "password must be at most 72 bytes")

	users, err := anon.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = anon.Register(ctx, models.UserCreate{Username: "bob", Password: strings.Repeat("p", 72)})
	require.NoError(t, err)
}

func TestE2E_AdminNotesScenario(t *testing.T) {
	ctx := context.Background()
	url := startStack(t, time.Minute)
	anon := newClient(t, url, "", "")

	admin, err := anon.Register(ctx, models.UserCreate{Username: "root", Password: "toor", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	alice, err := anon.Register(ctx, models.UserCreate{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleSimpleUser, alice.Role)

	rootClient := newClient(t, url, "root", "toor")
	aliceClient := newClient(t, url, "alice", "secret")

	// private by default
	secret, err := rootClient.CreateNote(ctx, models.NoteCreate{Text: "admin only"})
	require.NoError(t, err)
	assert.True(t, secret.Private)
	assert.Equal(t, admin.ID, secret.Author.ID)

	public := false
	shared, err := rootClient.CreateNote(ctx, models.NoteCreate{Text: "for everyone", Private: &public})
	require.NoError(t, err)

	// author sees both, another user sees only the public one
	got, err := rootClient.GetNote(ctx, secret.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin only", got.Text)

	_, err = aliceClient.GetNote(ctx, secret.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err = aliceClient.GetNote(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, "for everyone", got.Text)

	visible, err := aliceClient.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, shared.ID, visible[0].ID)

	// only the author may edit or delete
	_, err = aliceClient.UpdateNote(ctx, shared.ID, models.NoteUpdate{Private: &public})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = aliceClient.DeleteNote(ctx, shared.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// deleting a missing note names the id
	_, err = rootClient.DeleteNote(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "note with id=999 not found")

	// admin-only user routes
	_, err = aliceClient.DeleteUser(ctx, admin.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	renamed, err := rootClient.UpdateUser(ctx, alice.ID, models.UserUpdate{Username: "alicia"})
	require.NoError(t, err)
	assert.Equal(t, "alicia", renamed.Username)

	// deleting a user removes their notes
	aliceNote, err := newClient(t, url, "alicia", "secret").CreateNote(ctx, models.NoteCreate{Text: "mine", Private: &public})
	require.NoError(t, err)

	deleted, err := rootClient.DeleteUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alicia", deleted.Username)

	_, err = rootClient.GetNote(ctx, aliceNote.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestE2E_TokenFlow(t *testing.T) {
	ctx := context.Background()
	url := startStack(t, time.Minute)

	_, err := newClient(t, url, "", "").Register(ctx, models.UserCreate{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = newClient(t, url, "alice", "wrong").RequestToken(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	client := newClient(t, url, "alice", "secret")
	token, err := client.RequestToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(60), token.Duration)

	// bearer token
	byToken := newClient(t, url, "", "")
	byToken.SetToken(token.Token)
	_, err = byToken.CreateNote(ctx, models.NoteCreate{Text: "via bearer"})
	require.NoError(t, err)

	// token in the username slot of basic auth
	bySlot := newClient(t, url, token.Token, "ignored")
	notes, err := bySlot.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	_, err = newClient(t, url, "", "").ListNotes(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestE2E_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	url := startStack(t, -time.Second)

	_, err := newClient(t, url, "", "").Register(ctx, models.UserCreate{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	token, err := newClient(t, url, "alice", "secret").RequestToken(ctx)
	require.NoError(t, err)

	expired := newClient(t, url, "", "")
	expired.SetToken(token.Token)
	_, err = expired.ListNotes(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestE2E_TagsAndUploads(t *testing.T) {
	ctx := context.Background()
	url := startStack(t, time.Minute)
	anon := newClient(t, url, "", "")

	_, err := anon.Register(ctx, models.UserCreate{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	alice := newClient(t, url, "alice", "secret")

	note, err := alice.CreateNote(ctx, models.NoteCreate{Text: "tagged"})
	require.NoError(t, err)

	goTag, err := anon.CreateTag(ctx, models.TagCreate{Name: "go"})
	require.NoError(t, err)
	sqlTag, err := anon.CreateTag(ctx, models.TagCreate{Name: "sql"})
	require.NoError(t, err)

	_, err = anon.CreateTag(ctx, models.TagCreate{Name: "go"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = anon.SetNoteTags(ctx, note.ID, models.NoteTags{Tags: []int64{goTag.ID, 999}})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "tag with id=999 not found")

	linked, err := anon.SetNoteTags(ctx, note.ID, models.NoteTags{Tags: []int64{goTag.ID}})
	require.NoError(t, err)
	require.Len(t, linked.Tags, 1)

	linked, err = anon.SetNoteTags(ctx, note.ID, models.NoteTags{Tags: []int64{sqlTag.ID, goTag.ID}})
	require.NoError(t, err)
	assert.Equal(t, []models.Tag{goTag, sqlTag}, linked.Tags)

	tags, err := anon.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	uploaded, err := anon.Upload(ctx, "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/notes.txt", uploaded.URL)

	data, err := anon.Download(ctx, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = anon.Download(ctx, "missing.txt")
	assert.ErrorIs(t, err, ErrNotFound)

	info, err := anon.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", info.Version)
}
