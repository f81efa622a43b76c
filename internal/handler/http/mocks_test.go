package http

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-notes/models"
)

type mockAuthService struct {
	hashPasswordFn func(ctx context.Context, password string) (string, error)
	issueTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	verifyTokenFn  func(ctx context.Context, token string) (int64, error)
	authenticateFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
}

func (m *mockAuthService) HashPassword(ctx context.Context, password string) (string, error) {
	if m.hashPasswordFn != nil {
		return m.hashPasswordFn(ctx, password)
	}
	return "", nil
}

func (m *mockAuthService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.issueTokenFn != nil {
		return m.issueTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) VerifyToken(ctx context.Context, token string) (int64, error) {
	if m.verifyTokenFn != nil {
		return m.verifyTokenFn(ctx, token)
	}
	return 0, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, credentials)
	}
	return models.User{}, nil
}

type mockUserService struct {
	createFn func(ctx context.Context, user models.UserCreate) (models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	listFn   func(ctx context.Context) ([]models.User, error)
	searchFn func(ctx context.Context, substring string) ([]models.User, error)
	updateFn func(ctx context.Context, caller models.User, id int64, update models.UserUpdate) (models.User, error)
	deleteFn func(ctx context.Context, caller models.User, id int64) (models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) SearchUsers(ctx context.Context, substring string) ([]models.User, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, substring)
	}
	return nil, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, caller models.User, id int64, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, caller, id, update)
	}
	return models.User{}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, caller models.User, id int64) (models.User, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, caller, id)
	}
	return models.User{}, nil
}

type mockNoteService struct {
	listFn    func(ctx context.Context, caller models.User) ([]models.Note, error)
	createFn  func(ctx context.Context, caller models.User, note models.NoteCreate) (models.Note, error)
	getFn     func(ctx context.Context, caller models.User, id int64) (models.Note, error)
	updateFn  func(ctx context.Context, caller models.User, id int64, update models.NoteUpdate) (models.Note, error)
	deleteFn  func(ctx context.Context, caller models.User, id int64) (models.Note, error)
	setTagsFn func(ctx context.Context, noteID int64, tags models.NoteTags) (models.Note, error)
}

func (m *mockNoteService) ListNotes(ctx context.Context, caller models.User) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, caller)
	}
	return nil, nil
}

func (m *mockNoteService) CreateNote(ctx context.Context, caller models.User, note models.NoteCreate) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, caller, note)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) GetNote(ctx context.Context, caller models.User, id int64) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, caller, id)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) UpdateNote(ctx context.Context, caller models.User, id int64, update models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, caller, id, update)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) DeleteNote(ctx context.Context, caller models.User, id int64) (models.Note, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, caller, id)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) SetNoteTags(ctx context.Context, noteID int64, tags models.NoteTags) (models.Note, error) {
	if m.setTagsFn != nil {
		return m.setTagsFn(ctx, noteID, tags)
	}
	return models.Note{}, nil
}

type mockTagService struct {
	createFn func(ctx context.Context, tag models.TagCreate) (models.Tag, error)
	getFn    func(ctx context.Context, id int64) (models.Tag, error)
	listFn   func(ctx context.Context) ([]models.Tag, error)
}

func (m *mockTagService) CreateTag(ctx context.Context, tag models.TagCreate) (models.Tag, error) {
	if m.createFn != nil {
		return m.createFn(ctx, tag)
	}
	return models.Tag{}, nil
}

func (m *mockTagService) GetTag(ctx context.Context, id int64) (models.Tag, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Tag{}, nil
}

func (m *mockTagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockUploadService struct {
	uploadFn func(ctx context.Context, name string, content io.Reader) (models.Upload, error)
	openFn   func(ctx context.Context, name string) (*os.File, error)
}

func (m *mockUploadService) Upload(ctx context.Context, name string, content io.Reader) (models.Upload, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, name, content)
	}
	return models.Upload{Name: name}, nil
}

func (m *mockUploadService) Open(ctx context.Context, name string) (*os.File, error) {
	if m.openFn != nil {
		return m.openFn(ctx, name)
	}
	return nil, os.ErrNotExist
}

type mockAppInfoService struct {
	info models.AppBuildInfo
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.info
}
