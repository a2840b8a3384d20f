package model

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrActorNotFound    = errors.New("actor not found")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidReference = errors.New("country does not exist")
	ErrInvalidID        = errors.New("id must be a positive integer")

	// Storage causes, always wrapped in *StorageError.
	ErrConstraint  = errors.New("record violates a storage constraint")
	ErrUnavailable = errors.New("storage is unavailable")
)

// ValidationError reports boundary failures before the store is touched.
type ValidationError struct {
	Missing []string          // required fields absent from the input
	Invalid map[string]string // field → reason
	Reason  error             // optional cause, e.g. ErrInvalidReference
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Missing fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		keys := make([]string, 0, len(e.Invalid))
		for k := range e.Invalid {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, k+": "+e.Invalid[k])
		}
	}
	if len(parts) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// InvalidCountry builds the validation failure for an unresolvable country name.
func InvalidCountry(name string) *ValidationError {
	return &ValidationError{
		Invalid: map[string]string{"country": fmt.Sprintf("country %q does not exist", name)},
		Reason:  ErrInvalidReference,
	}
}

// StorageError wraps every failure coming back from the backing store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents API error response format
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var storageErr *StorageError
	switch {
	case errors.Is(err, ErrActorNotFound):
		return "ACTOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID"
	case errors.Is(err, ErrInvalidReference):
		return "INVALID_COUNTRY"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.As(err, &storageErr):
		return "STORAGE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrActorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
