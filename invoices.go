package torchpay

import (
	"context"

	"github.com/google/uuid"
)

// IssueInvoice creates a new invoice. Pass WithIdempotencyKey so a retried
// submission does not create a second invoice.
func (c *Client) IssueInvoice(ctx context.Context, req *InvoiceRequest, opts ...CallOption) (*Response[Invoice], error) {
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	return c.api.IssueInvoice(ctx, req, opts...)
}

// FindInvoice retrieves an invoice by ID.
func (c *Client) FindInvoice(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Response[Invoice], error) {
	return c.api.FindInvoice(ctx, id, opts...)
}

// ListInvoices retrieves a page of invoices, newest first. The zero
// PageRequest returns the server's default page.
func (c *Client) ListInvoices(ctx context.Context, page PageRequest, opts ...CallOption) (*Response[InvoiceList], error) {
	return c.api.ListInvoices(ctx, page, opts...)
}

// CancelInvoice cancels an unpaid invoice and returns its updated state.
func (c *Client) CancelInvoice(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Response[Invoice], error) {
	return c.api.CancelInvoice(ctx, id, opts...)
}

// CreateInvoiceQuote generates a BOLT11 payment request for an invoice. The
// quote expires at ExpiresAt; generate a fresh one after that.
func (c *Client) CreateInvoiceQuote(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Response[LightningQuote], error) {
	return c.api.CreateInvoiceQuote(ctx, id, opts...)
}
