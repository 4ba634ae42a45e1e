package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable wraps transport-level failures: the request never produced
// an HTTP status (connection refused, DNS failure, timeout).
var ErrUnavailable = errors.New("server unavailable")

// Error is a remote rejection: the server answered with a non-2xx status.
// Message is the server-provided message when the response body carried
// one, else generic statused text. Error() returns Message verbatim so the
// caller can surface it to the user unchanged.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// errorFromResponse maps a non-2xx response into *Error. The body is
// consulted for a structured {"message": ...} payload first.
func errorFromResponse(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &Error{StatusCode: status, Message: payload.Message}
	}
	return &Error{StatusCode: status, Message: fmt.Sprintf("Error %d: %s", status, http.StatusText(status))}
}
