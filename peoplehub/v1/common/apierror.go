package common

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the HRMS API. Message is the
// server-supplied message when the body carried one.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s failed with status code %d", e.Method, e.Path, e.Status)
}

// NewAPIError extracts the message field from an error body. The API
// returns either {"message": "..."} or {"error": "..."}.
func NewAPIError(method, path string, status int, body []byte) *APIError {
	var envelope struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			msg = envelope.Message
		} else if envelope.Err != "" {
			msg = envelope.Err
		}
	}
	return &APIError{Method: method, Path: path, Status: status, Message: msg}
}

// ErrorMessage prefers the server-supplied message and falls back to the
// verb's fixed default otherwise.
func ErrorMessage(err error, fallback string) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && fallback == "" {
		return err.Error()
	}
	return fallback
}
