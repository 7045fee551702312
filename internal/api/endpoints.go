package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// IssueInvoice creates a new invoice.
func (c *Client) IssueInvoice(ctx context.Context, req *InvoiceRequest, opts ...CallOption) (*Result[Invoice], error) {
	return Do[Invoice](ctx, c, http.MethodPost, "/v1/invoices", req, opts...)
}

// FindInvoice retrieves an invoice by ID.
func (c *Client) FindInvoice(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Result[Invoice], error) {
	path := fmt.Sprintf("/v1/invoices/%s", id)
	return Do[Invoice](ctx, c, http.MethodGet, path, nil, opts...)
}

// ListInvoices retrieves a page of invoices, newest first.
func (c *Client) ListInvoices(ctx context.Context, page PageRequest, opts ...CallOption) (*Result[InvoiceList], error) {
	path := "/v1/invoices" + page.query()
	return Do[InvoiceList](ctx, c, http.MethodGet, path, nil, opts...)
}

// CancelInvoice cancels an unpaid invoice.
func (c *Client) CancelInvoice(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Result[Invoice], error) {
	path := fmt.Sprintf("/v1/invoices/%s/cancel", id)
	return Do[Invoice](ctx, c, http.MethodPatch, path, nil, opts...)
}

// CreateInvoiceQuote generates a BOLT11 payment request for an invoice.
func (c *Client) CreateInvoiceQuote(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Result[LightningQuote], error) {
	path := fmt.Sprintf("/v1/invoices/%s/quote", id)
	return Do[LightningQuote](ctx, c, http.MethodPost, path, nil, opts...)
}

// PayInvoice pays a BOLT11 invoice from the account balance.
func (c *Client) PayInvoice(ctx context.Context, req *PaymentRequest, opts ...CallOption) (*Result[Payment], error) {
	return Do[Payment](ctx, c, http.MethodPost, "/v1/payments/lightning", req, opts...)
}

// FindPayment retrieves a payment by ID.
func (c *Client) FindPayment(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Result[Payment], error) {
	path := fmt.Sprintf("/v1/payments/%s", id)
	return Do[Payment](ctx, c, http.MethodGet, path, nil, opts...)
}

// ListPayments retrieves a page of payments, newest first.
func (c *Client) ListPayments(ctx context.Context, page PageRequest, opts ...CallOption) (*Result[PaymentList], error) {
	path := "/v1/payments" + page.query()
	return Do[PaymentList](ctx, c, http.MethodGet, path, nil, opts...)
}

// ValidateLightningAddress probes whether a lightning address is reachable.
func (c *Client) ValidateLightningAddress(ctx context.Context, address string, opts ...CallOption) (*Result[LightningAddressVerification], error) {
	path := fmt.Sprintf("/v1/lightning-addresses/%s/validate", url.PathEscape(address))
	return Do[LightningAddressVerification](ctx, c, http.MethodGet, path, nil, opts...)
}

// RequestLightningAddressInvoice asks a remote lightning address for an
// invoice of the given amount.
func (c *Client) RequestLightningAddressInvoice(ctx context.Context, req *LightningAddressInvoiceRequest, opts ...CallOption) (*Result[LightningQuote], error) {
	return Do[LightningQuote](ctx, c, http.MethodPost, "/v1/lightning-addresses/invoice", req, opts...)
}

// ExchangeRates retrieves the current rate ticker.
func (c *Client) ExchangeRates(ctx context.Context, opts ...CallOption) (*Result[RateList], error) {
	return Do[RateList](ctx, c, http.MethodGet, "/v1/rates/ticker", nil, opts...)
}

// Balances retrieves the per-currency account balances.
func (c *Client) Balances(ctx context.Context, opts ...CallOption) (*Result[BalanceList], error) {
	return Do[BalanceList](ctx, c, http.MethodGet, "/v1/balances", nil, opts...)
}

// AccountProfile retrieves the profile of the account that owns the key.
func (c *Client) AccountProfile(ctx context.Context, opts ...CallOption) (*Result[AccountProfile], error) {
	return Do[AccountProfile](ctx, c, http.MethodGet, "/v1/accounts/profile", nil, opts...)
}

// CreateSubscription registers a webhook endpoint.
func (c *Client) CreateSubscription(ctx context.Context, req *SubscriptionRequest, opts ...CallOption) (*Result[Subscription], error) {
	return Do[Subscription](ctx, c, http.MethodPost, "/v1/subscriptions", req, opts...)
}

// ListSubscriptions retrieves all webhook registrations.
func (c *Client) ListSubscriptions(ctx context.Context, opts ...CallOption) (*Result[SubscriptionList], error) {
	return Do[SubscriptionList](ctx, c, http.MethodGet, "/v1/subscriptions", nil, opts...)
}

// DeleteSubscription removes a webhook registration.
func (c *Client) DeleteSubscription(ctx context.Context, id uuid.UUID, opts ...CallOption) (*Result[Empty], error) {
	path := fmt.Sprintf("/v1/subscriptions/%s", id)
	return Do[Empty](ctx, c, http.MethodDelete, path, nil, opts...)
}
