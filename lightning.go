package torchpay

import "context"

// ValidateLightningAddress probes whether a lightning address (user@domain)
// resolves and is reachable for payments.
func (c *Client) ValidateLightningAddress(ctx context.Context, address string, opts ...CallOption) (*Response[LightningAddressVerification], error) {
	if address == "" {
		return nil, &ValidationError{Errors: []string{"address must not be empty"}}
	}
	return c.api.ValidateLightningAddress(ctx, address, opts...)
}

// RequestLightningAddressInvoice asks the remote lightning address for a
// BOLT11 invoice of the given amount, which can then be paid with
// PayInvoice.
func (c *Client) RequestLightningAddressInvoice(ctx context.Context, req *LightningAddressInvoiceRequest, opts ...CallOption) (*Response[LightningQuote], error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	return c.api.RequestLightningAddressInvoice(ctx, req, opts...)
}
