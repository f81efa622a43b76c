package http

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

const (
	uploadFormField = "image"

	// maxUploadMemory is the part of a multipart body kept in memory;
	// the rest, up to the handler's upload limit, is spooled to temporary
	// files.
	maxUploadMemory = 8 << 20

	uploadsURLPrefix = "/uploads/"
)

// upload stores the multipart "image" part in the upload directory.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeServiceError(w, r, bodyError(ErrMissingUploadFile, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrMissingUploadFile, err))
		return
	}
	defer file.Close()

	upload, err := h.services.UploadService.Upload(r.Context(), header.Filename, file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("file", upload.Name).Int64("size", upload.Size).Msg("file uploaded")

	utils.WriteJSON(w, models.UploadResponse{
		Msg: "uploaded image successfully",
		URL: uploadsURLPrefix + url.PathEscape(upload.Name),
	}, http.StatusOK)
}

// serveUpload sends a stored file as an attachment.
func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, paramFileName)

	file, err := h.services.UploadService.Open(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": info.Name()}))
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
