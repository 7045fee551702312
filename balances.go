package torchpay

import "context"

// Balances retrieves the per-currency account balances. Available is
// Current minus Outgoing, the amount spendable right now.
func (c *Client) Balances(ctx context.Context, opts ...CallOption) (*Response[BalanceList], error) {
	return c.api.Balances(ctx, opts...)
}
