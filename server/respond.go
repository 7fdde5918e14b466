package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/victorucama-create/nexasuite-erp/erp"
	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
)

// envelope is the uniform response body: success plus optional data,
// message, and pagination.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       any             `json:"data,omitempty"`
	Pagination *erp.Pagination `json:"pagination,omitempty"`
	Path       string          `json:"path,omitempty"`
	Stack      string          `json:"stack,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("Failed to encode response body")
	}
}

// decodeJSONBody reads the request body into dst, tolerating an empty body.
func decodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// writeError responds with the taxonomy status for the kind and a uniform
// failure envelope. An empty message falls back to the kind's own message.
func writeError(w http.ResponseWriter, kind interrors.Kind, message string) {
	if message == "" {
		message = kind.UserMessage()
	}
	writeJSON(w, kind.Status(), envelope{Success: false, Message: message})
}
