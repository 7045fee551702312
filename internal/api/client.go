package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout is the timeout applied when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// Codes stamped onto synthetic errors, i.e. errors the SDK fabricates when
// the server response cannot be interpreted or never arrives.
const (
	// CodeMalformedResponse is used when a non-2xx body cannot be parsed
	// as an error envelope.
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	// CodeServiceUnavailable is used when the request never produced a
	// response (dial failure, timeout, broken connection).
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Client is the HTTP client for the TorchPay REST API.
//
// Settings can be changed through the Set* methods after construction. The
// Client performs no synchronization around them: do not mutate settings
// while calls are in flight.
type Client struct {
	baseURL      string
	apiKey       string
	headers      map[string]string
	throwOnError bool
	rawResponses bool
	httpClient   *http.Client
	logger       *zap.Logger
}

// Config holds construction parameters for a Client.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.torchpay.com".
	BaseURL string
	// APIKey is sent as a bearer token on every request. An empty key is
	// not rejected; the Authorization header is sent with an empty token
	// and the server decides.
	APIKey string
	// Headers are attached to every outgoing request.
	Headers map[string]string
	// ThrowOnError switches failures from envelope results to Go errors.
	ThrowOnError bool
	// RawResponses attaches the response body text to successful results.
	RawResponses bool
	// HTTPClient, when set, replaces the default transport. Connection
	// pooling and timeouts are the caller's responsibility.
	HTTPClient *http.Client
	// Logger receives a debug entry per call. Defaults to a no-op logger.
	Logger *zap.Logger
}

// NewClient creates an API client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		throwOnError: cfg.ThrowOnError,
		rawResponses: cfg.RawResponses,
		httpClient:   cfg.HTTPClient,
		logger:       cfg.Logger,
	}
	if len(cfg.Headers) > 0 {
		c.headers = make(map[string]string, len(cfg.Headers))
		for k, v := range cfg.Headers {
			c.headers[k] = v
		}
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c, nil
}

// SetBaseURL changes the API root for subsequent calls.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetAPIKey changes the bearer token for subsequent calls.
func (c *Client) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// SetThrowOnError toggles between envelope results and Go errors.
func (c *Client) SetThrowOnError(throw bool) {
	c.throwOnError = throw
}

// SetRawResponses toggles attaching response body text to results.
func (c *Client) SetRawResponses(raw bool) {
	c.rawResponses = raw
}

// SetHeader sets a client-level header sent with every request.
func (c *Client) SetHeader(key, value string) {
	if c.headers == nil {
		c.headers = make(map[string]string)
	}
	c.headers[key] = value
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// callConfig carries per-request options.
type callConfig struct {
	idempotencyKey *uuid.UUID
	headers        map[string]string
	rawResponse    bool
}

// CallOption configures a single API call.
type CallOption func(*callConfig)

// WithIdempotencyKey attaches an Idempotency-Key header so the server can
// drop duplicate submissions of the same request.
func WithIdempotencyKey(key uuid.UUID) CallOption {
	return func(c *callConfig) {
		c.idempotencyKey = &key
	}
}

// WithHeader attaches an additional header to this call only.
func WithHeader(key, value string) CallOption {
	return func(c *callConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string)
		}
		c.headers[key] = value
	}
}

// WithRawResponse attaches the response body text to this call's result,
// regardless of the client-level setting.
func WithRawResponse() CallOption {
	return func(c *callConfig) {
		c.rawResponse = true
	}
}

// newRequest builds the outgoing HTTP request: resolved URL, auth and
// idempotency headers, merged additional headers, JSON body.
func (c *Client) newRequest(ctx context.Context, method, path string, body any, cfg *callConfig) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// The bearer header is always sent, even with an empty key. Key
	// validity is the server's call.
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if cfg.idempotencyKey != nil {
		req.Header.Set("Idempotency-Key", cfg.idempotencyKey.String())
	}

	// Client-level headers first, then per-call headers. Both use Add, so
	// a key present in both sets appears twice on the wire.
	for k, v := range c.headers {
		req.Header.Add(k, v)
	}
	for k, v := range cfg.headers {
		req.Header.Add(k, v)
	}

	return req, nil
}

// Do issues a single request and normalizes the response into a Result.
//
// In the default mode every failure, HTTP error status, unparseable body or
// transport breakdown, comes back as a Result with a populated Err field and
// a nil Go error. With ThrowOnError set, those failures return a nil Result
// and a non-nil Go error instead.
func Do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...CallOption) (*Result[T], error) {
	cfg := &callConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	req, err := c.newRequest(ctx, method, path, body, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	c.logger.Debug("issuing request",
		zap.String("method", method),
		zap.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("transport failure",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return transportFailure[T](c, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure[T](c, err)
	}

	c.logger.Debug("request complete",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return successResult[T](c, cfg, resp.StatusCode, raw)
	}
	return errorResult[T](c, resp.StatusCode, raw)
}

// transportFailure handles errors raised before a response could be read.
// Callers that prefer envelope results still get a typed Result: a synthetic
// 503 with the failure text as the message.
func transportFailure[T any](c *Client, err error) (*Result[T], error) {
	if c.throwOnError {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return &Result[T]{
		StatusCode: http.StatusServiceUnavailable,
		Err: &APIError{
			Status:  http.StatusServiceUnavailable,
			Code:    CodeServiceUnavailable,
			Message: err.Error(),
		},
	}, nil
}

// successResult decodes a 2xx body. An empty body decodes as an empty object.
func successResult[T any](c *Client, cfg *callConfig, status int, raw []byte) (*Result[T], error) {
	body := raw
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	data := new(T)
	if err := json.Unmarshal(body, data); err != nil {
		// A malformed success body is treated like a transport failure:
		// the response was received but could not be interpreted.
		return transportFailure[T](c, fmt.Errorf("decode response: %w", err))
	}

	res := &Result[T]{
		Data:       data,
		StatusCode: status,
	}
	if c.rawResponses || cfg.rawResponse {
		res.RawJSON = string(body)
	}
	return res, nil
}

// errorResult decodes a non-2xx body as an error envelope. If the body does
// not parse, a synthetic error keeps the remote status and carries the parse
// failure as its message.
func errorResult[T any](c *Client, status int, raw []byte) (*Result[T], error) {
	apiErr := &APIError{}
	if err := json.Unmarshal(raw, apiErr); err != nil {
		apiErr = &APIError{
			Status:  status,
			Code:    CodeMalformedResponse,
			Message: err.Error(),
		}
	}

	if c.throwOnError {
		return nil, &RequestError{Err: apiErr}
	}
	return &Result[T]{
		StatusCode: status,
		Err:        apiErr,
	}, nil
}
