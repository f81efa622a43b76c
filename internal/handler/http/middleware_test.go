package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "incoming id is reused", incoming: "my-trace-id"},
		{name: "id is generated", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			require.True(t, nextCalled)
			got := rr.Header().Get(traceIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
				return
			}
			id, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestWithTraceID_AttachesLoggerWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, config.Server{}, &logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

// ---- withLogging and responseWriter ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantFields []string
	}{
		{
			name: "status and size",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("hello"))
			},
			wantFields: []string{`"status":201`, `"size":5`, `"method":"POST"`, `"uri":"/notes"`},
		},
		{
			name:       "nothing written counts as 200",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantFields: []string{`"status":200`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			req := httptest.NewRequest(http.MethodPost, "/notes", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), req)

			for _, field := range tt.wantFields {
				assert.Contains(t, buf.String(), field)
			}
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("ab"))
	require.NoError(t, err)
	_, err = w.Write([]byte("cde"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rr.Body.String())
	assert.Same(t, rr, w.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("x"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
}

// ---- withGZip ----

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "13")
		w.Write([]byte("Hello, World!"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Equal(t, "Hello, World!", gunzip(t, rr.Body.Bytes()))
}

func TestWithGZip_PlainWhenNotAccepted(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain"))
	})

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"name":"go"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/tags", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"name":"go"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- auth and requireRole ----

func TestAuth(t *testing.T) {
	alice := models.User{ID: 2, Username: "alice", Role: models.RoleSimpleUser}

	tests := []struct {
		name         string
		header       string
		authenticate func(ctx context.Context, c models.Credentials) (models.User, error)
		wantStatus   int
		wantError    string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantError:  ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "unknown scheme",
			header:     "Digest abc",
			wantStatus: http.StatusUnauthorized,
			wantError:  utils.ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:   "bearer token",
			header: "Bearer tok",
			authenticate: func(_ context.Context, c models.Credentials) (models.User, error) {
				assert.Equal(t, models.Credentials{Token: "tok"}, c)
				return alice, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "basic credentials",
			header: "Basic YWxpY2U6c2VjcmV0", // alice:secret
			authenticate: func(_ context.Context, c models.Credentials) (models.User, error) {
				assert.Equal(t, models.Credentials{Username: "alice", Password: "secret"}, c)
				return alice, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "wrong password",
			header: "Basic YWxpY2U6c2VjcmV0",
			authenticate: func(context.Context, models.Credentials) (models.User, error) {
				return models.User{}, service.ErrWrongCredentials
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  service.ErrWrongCredentials.Error(),
		},
		{
			name:   "expired token",
			header: "Bearer old",
			authenticate: func(context.Context, models.Credentials) (models.User, error) {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  service.ErrTokenIsExpiredOrInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{
				logger:   logger.Nop(),
				services: &service.Services{AuthService: &mockAuthService{authenticateFn: tt.authenticate}},
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				caller, ok := utils.CallerFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, alice, caller)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, authenticateChallenge, rr.Header().Get("WWW-Authenticate"))
				assert.Equal(t, tt.wantError, decodeError(t, rr.Body))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		caller     *models.User
		wantStatus int
	}{
		{name: "admin passes", caller: &models.User{ID: 1, Role: models.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "simple user is forbidden", caller: &models.User{ID: 2, Role: models.RoleSimpleUser}, wantStatus: http.StatusForbidden},
		{name: "no caller", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodDelete, "/users/3", nil)
			if tt.caller != nil {
				req = req.WithContext(utils.WithCaller(req.Context(), *tt.caller))
			}
			rr := httptest.NewRecorder()
			requireRole(models.RoleAdmin)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
