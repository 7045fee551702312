package torchpay

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/torchpay/client-go/internal/api"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	environment  Environment
	baseURL      string
	headers      map[string]string
	throwOnError bool
	rawResponses bool
	httpClient   *http.Client
	logger       *zap.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithEnvironment selects the live or development deployment.
// Default: live.
func WithEnvironment(env Environment) Option {
	return func(c *clientConfig) {
		c.environment = env
	}
}

// WithBaseURL points the client at an arbitrary deployment. Takes
// precedence over WithEnvironment.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithHeaders sets client-level headers attached to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithThrowOnError makes calls return Go errors for HTTP error statuses and
// transport failures instead of envelopes with a populated Err field.
func WithThrowOnError() Option {
	return func(c *clientConfig) {
		c.throwOnError = true
	}
}

// WithRawResponses attaches the response body text to every successful
// result. Useful when debugging serialization mismatches.
func WithRawResponses() Option {
	return func(c *clientConfig) {
		c.rawResponses = true
	}
}

// WithHTTPClient sets a custom HTTP client. Supply a pooled client when
// issuing many calls; the SDK does not manage connection lifecycle.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger that receives a debug entry per call.
// Default: a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// CallOption configures a single API call.
type CallOption = api.CallOption

// WithIdempotencyKey attaches an Idempotency-Key header so a retried
// submission is processed at most once.
var WithIdempotencyKey = api.WithIdempotencyKey

// WithRequestHeader attaches an additional header to one call.
var WithRequestHeader = api.WithHeader

// WithRawResponse attaches the response body text to one call's result.
var WithRawResponse = api.WithRawResponse
