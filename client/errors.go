package client

import (
	"fmt"

	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
)

// APIError is a classified request failure surfaced to the caller after
// the gateway has shown its user-facing message.
type APIError struct {
	Kind    interrors.Kind
	Status  int    // HTTP status observed; zero when the call never completed
	Message string // user-facing message, Portuguese per product copy
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
}

// ErrSessionExpired is returned when a refresh attempt fails terminally
// and the caller must re-authenticate.
var ErrSessionExpired = &APIError{
	Kind:    interrors.KindExpiredOrInvalidCredential,
	Message: interrors.KindExpiredOrInvalidCredential.UserMessage(),
}

// Notifier surfaces transient user-facing messages. Successful mutating
// calls and classified failures both pass through here.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards every notification
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
