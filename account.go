package torchpay

import "context"

// AccountProfile retrieves the profile of the account that owns the API
// key. A cheap way to check that a key works.
func (c *Client) AccountProfile(ctx context.Context, opts ...CallOption) (*Response[AccountProfile], error) {
	return c.api.AccountProfile(ctx, opts...)
}
