package torchpay

import (
	"fmt"
	"strings"

	"github.com/torchpay/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = api.ErrUnauthorized
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = api.ErrNotFound
	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = api.ErrRateLimited
)

// APIError is the error envelope returned by the TorchPay API: a numeric
// status, a stable code and a human-readable message.
type APIError = api.APIError

// RequestError wraps an APIError when the client runs in throw mode.
type RequestError = api.RequestError

// Codes stamped onto synthetic errors.
const (
	// CodeMalformedResponse marks an error body that could not be parsed.
	CodeMalformedResponse = api.CodeMalformedResponse
	// CodeServiceUnavailable marks a transport failure surfaced as a
	// synthetic 503 envelope.
	CodeServiceUnavailable = api.CodeServiceUnavailable
)

// ValidationError reports local request-payload validation failures. It is
// returned before any request is sent, regardless of the failure mode.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}
