package client

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of an error response body is kept as a
// message. The API returns short plain-text bodies; the cap guards
// against pathological responses.
const maxErrorBody = 4 << 10

// APIError is a non-2xx response from the remote API. The body is the
// raw response text, which the API uses as its human-readable message.
type APIError struct {
	StatusCode int
	Body       string
}

func newAPIError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	}
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return http.StatusText(e.StatusCode)
	}
	return e.Body
}

// Message normalizes any client error to a displayable string, using the
// given fallback when the error carries no useful text.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
