// Package api holds the request and response plumbing shared by the HTTP
// handlers: JSON encoding, error mapping and the tenant header.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps err onto a status code: validation 400, not found 404,
// conflict 409, anything else 500 with the detail kept in the log.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var verr *apperr.ValidationError

	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case apperr.IsValidation(err):
		JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case apperr.IsNotFound(err):
		JSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case apperr.IsConflict(err):
		JSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Decode reads a JSON body into dst. An empty body leaves dst untouched.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Validation("body", "invalid request body: %v", err)
	}

	return nil
}

func IDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.Validation(name, "invalid id")
	}

	return id, nil
}

// OptionalID parses s as a UUID, returning nil for an empty string.
func OptionalID(field, s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, apperr.Validation(field, "invalid id %q", s)
	}

	return &id, nil
}

// DateQuery reads a YYYY-MM-DD query parameter, falling back to def.
func DateQuery(r *http.Request, name string, def time.Time) (time.Time, error) {
	t, err := calendar.ParseOr(r.URL.Query().Get(name), def)
	if err != nil {
		return time.Time{}, apperr.Validation(name, "%v", err)
	}

	return t, nil
}

func Date(t time.Time) string {
	return t.Format(time.DateOnly)
}

func OptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return Date(*t)
}

func Amount(d decimal.Decimal) string {
	return money.Round(d).StringFixed(money.Places)
}
