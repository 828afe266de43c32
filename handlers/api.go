package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"finboard/db"
	"finboard/models"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// API holds the dependencies shared by all handlers. The store is passed in
// explicitly; Now supplies the reference date for analytics and the
// current-month budget filter, and is replaceable in tests.
type API struct {
	Store *db.Store
	Now   func() time.Time
}

// NewAPI builds an API over the given store using the real clock.
func NewAPI(store *db.Store) *API {
	return &API{Store: store, Now: time.Now}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// writeStoreError maps the error taxonomy onto HTTP status codes:
// invalid input 400, missing reference 404, anything else is a storage
// error reported as 500 after the store has rolled back.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("storage error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// BasicAuth is middleware that enforces HTTP Basic Authentication for the
// single configured credential. With no credentials configured it is a
// pass-through.
func BasicAuth(next http.Handler) http.Handler {
	user := os.Getenv("AUTH_USER")
	pass := os.Getenv("AUTH_PASS")

	if user == "" && pass == "" {
		slog.Warn("AUTH_USER and AUTH_PASS not set, API is unauthenticated")
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || u != user || p != pass {
			w.Header().Set("WWW-Authenticate", `Basic realm="finboard"`)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
