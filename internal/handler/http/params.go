package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Path parameter names used in route patterns.
const (
	paramUserID   = "user_id"
	paramNoteID   = "note_id"
	paramTagID    = "tag_id"
	paramFileName = "filename"
)

// idParam parses a positive integer path parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return id, nil
}

// maxJSONBodySize caps JSON request bodies.
const maxJSONBodySize = 1 << 20

// decodeJSON decodes the request body into dst. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return bodyError(ErrInvalidJSON, err)
	}
	return nil
}

// bodyError wraps err with ErrRequestTooLarge when a MaxBytesReader limit
// was hit and with fallback otherwise.
func bodyError(fallback, err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
