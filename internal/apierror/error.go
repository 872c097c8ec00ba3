package apierror

import "net/http"

type (
	// An APIError represents the error format that can be rendered by the catalog server.
	APIError struct {
		HTTPCode   int `json:"-"`
		FieldError err `json:"error"`
	}

	err struct {
		Message string `json:"message"`
	}
)

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if apierr, ok := err.(*APIError); ok && apierr.HTTPCode > 0 {
		return apierr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new APIError with the given message.
func New(message string) *APIError {
	return &APIError{FieldError: err{Message: message}}
}

// NewWithCode returns a new APIError with the given code and message.
func NewWithCode(code int, message string) *APIError {
	return &APIError{HTTPCode: code, FieldError: err{Message: message}}
}

// Error implements error interface.
func (e *APIError) Error() string {
	return e.FieldError.Message
}
