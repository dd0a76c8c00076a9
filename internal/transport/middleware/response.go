package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/daybook-backend/pkg/ctxutil"
)

// errorBody mirrors the error shape of the REST handlers so clients parse
// middleware rejections the same way.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     msg,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}
