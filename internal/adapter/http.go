package adapter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	token    string
	username string
	password string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter] from cfg. Credentials present in cfg are stored right away.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client, err := utils.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	adapter := &httpServerAdapter{client: client, logger: logger}
	adapter.SetToken(cfg.Token)
	adapter.SetBasicAuth(cfg.Username, cfg.Password)

	return adapter, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SetBasicAuth(username, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.username = username
	h.password = password
}

// request returns a request carrying the current credentials.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	defer h.mu.RUnlock()
	switch {
	case h.token != "":
		req.SetAuthToken(h.token)
	case h.username != "":
		req.SetBasicAuth(h.username, h.password)
	}
	return req
}

// do sends req and decodes a 2xx JSON body into result.
func do[T any](req *resty.Request, method, path string) (T, error) {
	var result T

	resp, err := req.SetResult(&result).Execute(method, path)
	if err != nil {
		return result, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

func withID(req *resty.Request, id int64) *resty.Request {
	return req.SetPathParam("id", strconv.FormatInt(id, 10))
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.UserCreate) (models.User, error) {
	return do[models.User](h.client.R().SetContext(ctx).SetBody(user), resty.MethodPost, "/users")
}

func (h *httpServerAdapter) RequestToken(ctx context.Context) (models.TokenResponse, error) {
	token, err := do[models.TokenResponse](h.request(ctx), resty.MethodGet, "/auth/token")
	if err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.Token)
	return token, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return do[[]models.User](h.request(ctx), resty.MethodGet, "/users")
}

func (h *httpServerAdapter) SearchUsers(ctx context.Context, username string) ([]models.User, error) {
	return do[[]models.User](h.request(ctx).SetQueryParam("username", username), resty.MethodGet, "/users/search")
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	return do[models.User](withID(h.request(ctx), id), resty.MethodGet, "/users/{id}")
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	return do[models.User](withID(h.request(ctx), id).SetBody(update), resty.MethodPut, "/users/{id}")
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	return do[models.User](withID(h.request(ctx), id), resty.MethodDelete, "/users/{id}")
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	return do[[]models.Note](h.request(ctx), resty.MethodGet, "/notes")
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.NoteCreate) (models.Note, error) {
	return do[models.Note](h.request(ctx).SetBody(note), resty.MethodPost, "/notes")
}

func (h *httpServerAdapter) GetNote(ctx context.Context, id int64) (models.Note, error) {
	return do[models.Note](withID(h.request(ctx), id), resty.MethodGet, "/notes/{id}")
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	return do[models.Note](withID(h.request(ctx), id).SetBody(update), resty.MethodPut, "/notes/{id}")
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) (models.Note, error) {
	return do[models.Note](withID(h.request(ctx), id), resty.MethodDelete, "/notes/{id}")
}

func (h *httpServerAdapter) SetNoteTags(ctx context.Context, id int64, tags models.NoteTags) (models.Note, error) {
	return do[models.Note](withID(h.request(ctx), id).SetBody(tags), resty.MethodPut, "/notes/{id}/tags")
}

func (h *httpServerAdapter) ListTags(ctx context.Context) ([]models.Tag, error) {
	return do[[]models.Tag](h.request(ctx), resty.MethodGet, "/tags")
}

func (h *httpServerAdapter) CreateTag(ctx context.Context, tag models.TagCreate) (models.Tag, error) {
	return do[models.Tag](h.request(ctx).SetBody(tag), resty.MethodPost, "/tags")
}

func (h *httpServerAdapter) GetTag(ctx context.Context, id int64) (models.Tag, error) {
	return do[models.Tag](withID(h.request(ctx), id), resty.MethodGet, "/tags/{id}")
}

func (h *httpServerAdapter) Upload(ctx context.Context, name string, content io.Reader) (models.UploadResponse, error) {
	req := h.request(ctx).SetFileReader("image", name, content)
	return do[models.UploadResponse](req, resty.MethodPut, "/upload")
}

func (h *httpServerAdapter) Download(ctx context.Context, name string) ([]byte, error) {
	resp, err := h.request(ctx).
		SetPathParam("name", name).
		Get("/uploads/{name}")
	if err != nil {
		return nil, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	return do[models.AppBuildInfo](h.request(ctx), resty.MethodGet, "/version")
}
