package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,

	validators.ErrUnsupportedType:  http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrTagAlreadyExists:      http.StatusBadRequest,
	store.ErrInvalidFileName:       http.StatusBadRequest,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrNoteNotFound:          http.StatusNotFound,
	store.ErrTagNotFound:           http.StatusNotFound,
	store.ErrFileNotFound:          http.StatusNotFound,

	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrNoCaller:                         http.StatusUnauthorized,
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrMissingUploadFile:                http.StatusBadRequest,
	ErrInvalidID:                        http.StatusNotFound,
	ErrRequestTooLarge:                  http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps err to a status and writes it as {"error": ...}.
// Internal errors are logged and replaced by a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), status)
		return
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", authenticateChallenge)
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
