package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// getToken issues a bearer token for the authenticated caller.
func (h *Handler) getToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caller, err := callerFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", caller.ID).Msg("token issued")

	utils.WriteJSON(w, models.TokenResponse{
		Token:    token.SignedString,
		Duration: int64(token.Duration.Seconds()),
	}, http.StatusOK)
}
