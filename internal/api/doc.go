// Package api implements the HTTP client for the TorchPay REST API.
//
// It owns request construction (auth, idempotency and additional headers,
// JSON bodies), dispatch over a caller-supplied transport, and normalization
// of every response into a Result envelope that carries either decoded data
// or a typed APIError. It performs no retries, caching or rate limiting.
package api
