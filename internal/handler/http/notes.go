package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// listNotes returns the caller's notes plus every public note.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var note models.NoteCreate
	if err := decodeJSON(w, r, &note); err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := h.services.NoteService.CreateNote(r.Context(), caller, note)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	id, err := idParam(r, paramNoteID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	id, err := idParam(r, paramNoteID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var update models.NoteUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, err)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), caller, id, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	id, err := idParam(r, paramNoteID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	deleted, err := h.services.NoteService.DeleteNote(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

// setNoteTags links the tag ids of {"tags": [...]} to the note.
func (h *Handler) setNoteTags(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, paramNoteID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var tags models.NoteTags
	if err := decodeJSON(w, r, &tags); err != nil {
		writeServiceError(w, r, err)
		return
	}

	note, err := h.services.NoteService.SetNoteTags(r.Context(), id, tags)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}
