package torchpay

import (
	"context"

	"github.com/google/uuid"
)

// CreateSubscription registers a webhook endpoint for the given event
// types. TorchPay signs each delivery with the subscription secret; verify
// deliveries with VerifyWebhookSignature.
func (c *Client) CreateSubscription(ctx context.Context, req *SubscriptionRequest, opts ...CallOption) (*Response[Subscription], error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	return c.api.CreateSubscription(ctx, req, opts...)
}

// ListSubscriptions retrieves all webhook registrations for the account.
func (c *Client) ListSubscriptions(ctx context.Context, opts ...CallOption) (*Response[SubscriptionList], error) {
	return c.api.ListSubscriptions(ctx, opts...)
}

// DeleteSubscription removes a webhook registration. Deliveries already in
// flight may still arrive.
func (c *Client) DeleteSubscription(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Response[Empty], error) {
	return c.api.DeleteSubscription(ctx, id, opts...)
}
