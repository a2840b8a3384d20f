package tmdb

import (
	"fmt"
	"net/http"
)

// UpstreamError is a non-2xx answer from the provider.
type UpstreamError struct {
	StatusCode int
	Body       string
	Endpoint   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tmdb %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// HTTPStatus is what our API answers with: provider 4xx pass through, anything else is 502.
func (e *UpstreamError) HTTPStatus() int {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return e.StatusCode
	}
	return http.StatusBadGateway
}
