package torchpay

import "context"

// ExchangeRates retrieves the current rate ticker for all supported
// currency pairs.
func (c *Client) ExchangeRates(ctx context.Context, opts ...CallOption) (*Response[RateList], error) {
	return c.api.ExchangeRates(ctx, opts...)
}
