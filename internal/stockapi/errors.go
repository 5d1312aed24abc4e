package stockapi

import "fmt"

// StatusError is returned when the Stock API responds with a non-success
// status. It carries the HTTP status code and the response body text so the
// caller can decide whether to retry.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error returns the error message.
func (e *StatusError) Error() string {
	return fmt.Sprintf("stock api returned status %d: %s", e.StatusCode, e.Body)
}
