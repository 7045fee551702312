package api

// Result is the uniform envelope returned from every API call. Exactly one
// of Data and Err is populated.
type Result[T any] struct {
	// Data is the decoded response payload on success.
	Data *T
	// Err is the API error on failure. Nil on success.
	Err *APIError
	// StatusCode is the HTTP status of the response. Transport failures
	// are reported as 503.
	StatusCode int
	// RawJSON holds the response body text when raw responses are
	// enabled, client-wide or per call. Empty otherwise.
	RawJSON string
}

// Success reports whether the call produced a data payload.
func (r *Result[T]) Success() bool {
	return r.Err == nil
}
