package torchpay

import (
	"context"

	"github.com/google/uuid"
)

// PayInvoice pays a BOLT11 invoice from the account balance. Always pass
// WithIdempotencyKey: a duplicated payment moves funds twice.
func (c *Client) PayInvoice(ctx context.Context, req *PaymentRequest, opts ...CallOption) (*Response[Payment], error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	return c.api.PayInvoice(ctx, req, opts...)
}

// FindPayment retrieves a payment by ID. Poll this after PayInvoice returns
// a PENDING payment.
func (c *Client) FindPayment(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Response[Payment], error) {
	return c.api.FindPayment(ctx, id, opts...)
}

// ListPayments retrieves a page of payments, newest first.
func (c *Client) ListPayments(ctx context.Context, page PageRequest, opts ...CallOption) (*Response[PaymentList], error) {
	return c.api.ListPayments(ctx, page, opts...)
}
