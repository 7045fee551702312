package torchpay

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/torchpay/client-go/internal/api"
)

// Client is the TorchPay SDK entry point.
//
// A Client issues one request and awaits one response per call. Its settings
// can be changed through the Set* methods, but without synchronization:
// mutating settings while calls are in flight is not safe.
type Client struct {
	api      *api.Client
	validate *validator.Validate
}

// New creates a TorchPay client.
//
// The API key is sent as a bearer token on every request and is not
// validated locally; an empty key reaches the server as an empty token and
// fails there.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		environment: EnvironmentLive,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	baseURL := cfg.baseURL
	if baseURL == "" {
		baseURL = cfg.environment.BaseURL()
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:      baseURL,
		APIKey:       apiKey,
		Headers:      cfg.headers,
		ThrowOnError: cfg.throwOnError,
		RawResponses: cfg.rawResponses,
		HTTPClient:   cfg.httpClient,
		Logger:       cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		api:      apiClient,
		validate: newValidator(),
	}, nil
}

// SetAPIKey replaces the bearer token for subsequent calls.
func (c *Client) SetAPIKey(apiKey string) {
	c.api.SetAPIKey(apiKey)
}

// SetEnvironment points subsequent calls at another deployment.
func (c *Client) SetEnvironment(env Environment) {
	c.api.SetBaseURL(env.BaseURL())
}

// SetBaseURL points subsequent calls at an arbitrary deployment.
func (c *Client) SetBaseURL(baseURL string) {
	c.api.SetBaseURL(baseURL)
}

// SetThrowOnError toggles between envelope results and Go errors.
func (c *Client) SetThrowOnError(throw bool) {
	c.api.SetThrowOnError(throw)
}

// SetRawResponses toggles attaching response body text to results.
func (c *Client) SetRawResponses(raw bool) {
	c.api.SetRawResponses(raw)
}

// SetHeader sets a client-level header sent with every request.
func (c *Client) SetHeader(key, value string) {
	c.api.SetHeader(key, value)
}

// SetHTTPClient replaces the HTTP transport.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.api.SetHTTPClient(client)
}
