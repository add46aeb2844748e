package client

import "encoding/json"

// UnknownErrorMessage is the fallback shown when the server's failure body
// is missing or not JSON.
const UnknownErrorMessage = "An unknown error occurred"

// APIError is a non-2xx response. Message is the server-supplied reason
// when one exists.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// AccessDenied reports whether the failure was a role/permission rejection,
// which the UI renders as a dedicated panel instead of a toast.
func (e *APIError) AccessDenied() bool { return e.StatusCode == 403 }

func apiErrorFrom(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return &APIError{StatusCode: status, Message: UnknownErrorMessage}
	}
	return &APIError{StatusCode: status, Message: payload.Message}
}
