package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.services.TagService.ListTags(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if tags == nil {
		tags = []models.Tag{}
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	var tag models.TagCreate
	if err := decodeJSON(w, r, &tag); err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := h.services.TagService.CreateTag(r.Context(), tag)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, paramTagID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	tag, err := h.services.TagService.GetTag(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}
