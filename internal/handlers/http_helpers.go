package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/store"
)

func decodeJSON(r *http.Request, dest any) error {
	if r.Body == nil {
		return errors.New("request body required")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	respondJSON(w, status, map[string]any{"error": err.Error()})
}

// respondStoreError maps the domain error taxonomy onto status codes:
// validation 400, conflict 409, not found 404, anything else 500.
func respondStoreError(w http.ResponseWriter, err error) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrConflict):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
