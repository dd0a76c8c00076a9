package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/daybook-backend/internal/domain"
	"github.com/heartmarshall/daybook-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error     string               `json:"error"`
	Fields    []fieldErrorResponse `json:"fields,omitempty"`
	RequestID string               `json:"requestId,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps a service error to an HTTP status. Unexpected errors
// are logged with the request id and reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		authErr *domain.AuthorizationError
		valErr  *domain.ValidationError
	)
	switch {
	case errors.As(err, &authErr):
		if authErr.Anonymous {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.As(err, &valErr):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range valErr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		requestID := ctxutil.RequestIDFromCtx(r.Context())
		msg := "internal error"
		if errors.Is(err, domain.ErrIntegrity) {
			msg = "integrity error"
		}
		log.ErrorContext(r.Context(), msg,
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestID),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:     "internal server error",
			RequestID: requestID,
		})
	}
}

// decodeJSON reads a single JSON object from the request body. Unknown
// fields are rejected.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}

// uuidParam parses a UUID route parameter such as "journalID". A malformed id
// gets the same authorization error as a well-formed id the caller cannot
// see, so the response never tells the two apart.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		_, signedIn := ctxutil.UserIDFromCtx(r.Context())
		return uuid.Nil, &domain.AuthorizationError{
			Scope:     strings.TrimSuffix(name, "ID"),
			Anonymous: !signedIn,
		}
	}
	return id, nil
}
