// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and compression
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/access"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// authenticateChallenge is sent in WWW-Authenticate with every 401.
const authenticateChallenge = `Basic realm="Authentication Required"`

// auth is an HTTP middleware that resolves the caller from the
// "Authorization" header.
//
// Both "Bearer <token>" and "Basic <base64(user:password)>" are accepted;
// see [service.AuthService.Authenticate] for how basic credentials are
// interpreted. On success the caller is stored in the request context
// under [utils.CallerCtxKey] and the request continues.
//
// The middleware rejects requests with HTTP 401 Unauthorized and a
// WWW-Authenticate challenge when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header uses an unknown scheme or is malformed.
//   - The credentials do not resolve to a stored user.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeServiceError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		credentials, err := utils.ParseAuthorizationHeader(authHeader)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		ctx := r.Context()
		caller, err := h.services.AuthService.Authenticate(ctx, credentials)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.Debug().Int64("caller_id", caller.ID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithCaller(ctx, caller)))
	})
}

// requireRole lets a request through only if the caller stored by auth has
// exactly the given role. It must run after auth.
func requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := utils.CallerFromContext(r.Context())
			if !ok {
				writeServiceError(w, r, ErrNoCaller)
				return
			}

			if !access.HasRole(caller, role) {
				writeServiceError(w, r, service.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// callerFromRequest returns the caller stored by auth.
func callerFromRequest(r *http.Request) (models.User, error) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoCaller
	}
	return caller, nil
}
