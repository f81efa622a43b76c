package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.UserCreate
	if err := decodeJSON(w, r, &user); err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("user_id", created.ID).Msg("user created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

// searchUsers answers GET /users/search?username=<substring>. An empty
// query yields an empty list.
func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.SearchUsers(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, paramUserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	id, err := idParam(r, paramUserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), caller, id, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	id, err := idParam(r, paramUserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	deleted, err := h.services.UserService.DeleteUser(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}
