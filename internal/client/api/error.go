package api

import (
	"encoding/json"
	"fmt"
)

// RequestError is returned for any HTTP status outside the success range.
// Message carries the server-supplied message when the body was parseable;
// otherwise Error falls back to a generic "HTTP <status>".
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

func newRequestError(status int, body []byte) *RequestError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &RequestError{Status: status, Message: payload.Message}
	}
	return &RequestError{Status: status}
}
