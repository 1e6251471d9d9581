package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrNotFound is returned when a repository or label does not exist.
	ErrNotFound = &APIError{StatusCode: http.StatusNotFound, Message: "not found"}

	// ErrUnauthorized is returned when the token lacks permissions.
	ErrUnauthorized = &APIError{StatusCode: http.StatusUnauthorized, Message: "unauthorized"}

	// ErrValidation is returned when the API rejects a label payload.
	ErrValidation = &APIError{StatusCode: http.StatusUnprocessableEntity, Message: "validation failed"}

	// ErrUnknown matches every failure that is not classified otherwise.
	ErrUnknown = &APIError{Message: "unknown error"}
)

// FieldError is one field-level reason attached to a validation failure.
type FieldError struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
	Message  string `json:"message,omitempty"`
}

func (f FieldError) String() string {
	s := fmt.Sprintf("%s.%s: %s", f.Resource, f.Field, f.Code)
	if f.Message != "" {
		s += " (" + f.Message + ")"
	}
	return s
}

// APIError is a failed API call.
// StatusCode is zero when the request never produced a response.
type APIError struct {
	StatusCode int
	URL        string
	Message    string
	Errors     []FieldError
	Err        error
}

// Error returns a human-readable description of the failure.
func (e *APIError) Error() string {
	switch e.StatusCode {
	case http.StatusNotFound:
		return fmt.Sprintf("got 404 for %s", e.URL)
	case http.StatusUnauthorized:
		return fmt.Sprintf("provided token lacks permissions for %s", e.URL)
	case http.StatusUnprocessableEntity:
		msg := fmt.Sprintf("validation failed for %s: %s", e.URL, e.Message)
		if len(e.Errors) > 0 {
			reasons := make([]string, 0, len(e.Errors))
			for _, fe := range e.Errors {
				reasons = append(reasons, fe.String())
			}
			msg += " [" + strings.Join(reasons, "; ") + "]"
		}
		return msg
	}

	detail := e.Message
	if e.Err != nil {
		detail = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("unknown error: %d %s for %s", e.StatusCode, detail, e.URL)
	}
	return fmt.Sprintf("unknown error: %s", detail)
}

// Is classifies the error against the package sentinels.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	if t == ErrUnknown {
		return !isClassified(e.StatusCode)
	}
	return e.StatusCode == t.StatusCode
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Err
}

func isClassified(status int) bool {
	switch status {
	case http.StatusNotFound, http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return true
	}
	return false
}

// errorResponse is the GitHub error body.
type errorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// handleErrorResponse converts a non-2xx response into an *APIError.
func handleErrorResponse(resp *http.Response, url string) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		URL:        url,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr.Err = err
		return apiErr
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		apiErr.Errors = errResp.Errors
	}
	return apiErr
}

// unknownError wraps a failure that produced no usable response.
func unknownError(url string, err error) error {
	return &APIError{URL: url, Message: "request failed", Err: err}
}

// IsNotFound checks if an error is a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if an error is a 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsValidation checks if an error is a 422.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
