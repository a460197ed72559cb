package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyQuery   = errors.New("search query is empty")
	ErrEmptyID      = errors.New("record id is empty")
	ErrInvalidURL   = errors.New("base url must be an absolute http(s) url")
	ErrEmptyPayload = errors.New("response body is empty")
)

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	// Message is the "message" field of the response body, if any
	Message string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "unexpected HTTP status"
	}
	msg := fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// ServerMessage returns the message the server attached to err, or fallback
// when err carries none.
func ServerMessage(err error, fallback string) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && strings.TrimSpace(statusErr.Message) != "" {
		return statusErr.Message
	}
	return fallback
}

// parseErrorMessage extracts {"message": "..."} from an error body
func parseErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
