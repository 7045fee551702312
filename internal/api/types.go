package api

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency identifies a settlement currency.
type Currency string

// Supported currencies.
const (
	CurrencyBTC  Currency = "BTC"
	CurrencyUSD  Currency = "USD"
	CurrencyEUR  Currency = "EUR"
	CurrencyUSDT Currency = "USDT"
)

// Money is an amount in a specific currency. Amounts travel as JSON strings
// to avoid floating-point drift.
type Money struct {
	Amount   decimal.Decimal `json:"amount" validate:"positive_amount"`
	Currency Currency        `json:"currency" validate:"required,oneof=BTC USD EUR USDT"`
}

// InvoiceState is the lifecycle state of an invoice.
type InvoiceState string

// Invoice states.
const (
	InvoiceStateUnpaid    InvoiceState = "UNPAID"
	InvoiceStatePending   InvoiceState = "PENDING"
	InvoiceStatePaid      InvoiceState = "PAID"
	InvoiceStateCancelled InvoiceState = "CANCELLED"
)

// InvoiceRequest is the POST /v1/invoices payload.
type InvoiceRequest struct {
	// CorrelationID ties the invoice to a record in the caller's system.
	CorrelationID string `json:"correlationId,omitempty" validate:"max=40"`
	// Description is shown to the payer.
	Description string `json:"description,omitempty" validate:"max=200"`
	// Amount is the requested amount. Nil issues an open-amount invoice.
	Amount *Money `json:"amount,omitempty"`
	// ReceiverID credits the invoice to a sub-account instead of the
	// account that owns the API key.
	ReceiverID *uuid.UUID `json:"receiverId,omitempty"`
}

// Invoice represents an invoice resource.
type Invoice struct {
	ID            uuid.UUID    `json:"invoiceId"`
	CorrelationID string       `json:"correlationId,omitempty"`
	Description   string       `json:"description,omitempty"`
	Amount        *Money       `json:"amount,omitempty"`
	State         InvoiceState `json:"state"`
	Created       time.Time    `json:"created"`
}

// InvoiceList is a page of invoices.
type InvoiceList struct {
	Items []Invoice `json:"items"`
	Count int64     `json:"count"`
}

// LightningQuote is a BOLT11 payment request generated for an invoice or a
// lightning address. The quote expires; a payer must settle before then.
type LightningQuote struct {
	QuoteID        uuid.UUID `json:"quoteId"`
	PaymentRequest string    `json:"paymentRequest"`
	Amount         *Money    `json:"amount,omitempty"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// PaymentState is the lifecycle state of an outgoing payment.
type PaymentState string

// Payment states.
const (
	PaymentStatePending   PaymentState = "PENDING"
	PaymentStateCompleted PaymentState = "COMPLETED"
	PaymentStateFailed    PaymentState = "FAILED"
)

// PaymentRequest is the POST /v1/payments/lightning payload.
type PaymentRequest struct {
	// PaymentRequest is the BOLT11 invoice to pay.
	PaymentRequest string `json:"paymentRequest" validate:"required"`
	// MaxFee caps the routing fee. Nil accepts the server default.
	MaxFee *Money `json:"maxFee,omitempty"`
	// Description is an internal note, not transmitted on-chain.
	Description string `json:"description,omitempty" validate:"max=200"`
}

// Payment represents an outgoing lightning payment.
type Payment struct {
	ID          uuid.UUID    `json:"paymentId"`
	State       PaymentState `json:"state"`
	Amount      Money        `json:"amount"`
	Fee         *Money       `json:"fee,omitempty"`
	PaymentHash string       `json:"paymentHash,omitempty"`
	Preimage    string       `json:"preimage,omitempty"`
	Created     time.Time    `json:"created"`
	Completed   *time.Time   `json:"completed,omitempty"`
}

// PaymentList is a page of payments.
type PaymentList struct {
	Items []Payment `json:"items"`
	Count int64     `json:"count"`
}

// LightningAddressVerification is the result of probing a lightning address.
type LightningAddressVerification struct {
	Address   string `json:"lnAddress"`
	Reachable bool   `json:"reachable"`
}

// LightningAddressInvoiceRequest asks the remote address for an invoice.
type LightningAddressInvoiceRequest struct {
	Address     string `json:"lnAddress" validate:"required,contains=@"`
	Amount      Money  `json:"amount"`
	Description string `json:"description,omitempty" validate:"max=200"`
}

// ExchangeRate is a single currency-pair rate.
type ExchangeRate struct {
	Amount         decimal.Decimal `json:"amount"`
	SourceCurrency Currency        `json:"sourceCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
}

// RateList is the /v1/rates/ticker response.
type RateList struct {
	Rates []ExchangeRate `json:"rates"`
}

// Balance is the account balance in one currency.
type Balance struct {
	Currency  Currency        `json:"currency"`
	Current   decimal.Decimal `json:"current"`
	Outgoing  decimal.Decimal `json:"outgoing"`
	Available decimal.Decimal `json:"available"`
}

// BalanceList is the /v1/balances response.
type BalanceList struct {
	Balances []Balance `json:"balances"`
}

// AccountProfile describes the account that owns the API key.
type AccountProfile struct {
	ID       uuid.UUID `json:"accountId"`
	Handle   string    `json:"handle"`
	Currency Currency  `json:"currency"`
	Created  time.Time `json:"created"`
}

// EventType identifies a webhook event.
type EventType string

// Webhook event types.
const (
	EventInvoiceCreated   EventType = "invoice.created"
	EventInvoicePaid      EventType = "invoice.paid"
	EventInvoiceCancelled EventType = "invoice.cancelled"
	EventPaymentCompleted EventType = "payment.completed"
	EventPaymentFailed    EventType = "payment.failed"
)

// SubscriptionRequest is the POST /v1/subscriptions payload.
type SubscriptionRequest struct {
	WebhookURL string      `json:"webhookUrl" validate:"required,url"`
	Secret     string      `json:"secret" validate:"required,min=16"`
	EventTypes []EventType `json:"eventTypes" validate:"required,min=1"`
	Enabled    *bool       `json:"enabled,omitempty"`
}

// Subscription represents a webhook registration.
type Subscription struct {
	ID         uuid.UUID   `json:"subscriptionId"`
	WebhookURL string      `json:"webhookUrl"`
	EventTypes []EventType `json:"eventTypes"`
	Enabled    bool        `json:"enabled"`
	Created    time.Time   `json:"created"`
}

// SubscriptionList is the /v1/subscriptions response.
type SubscriptionList struct {
	Items []Subscription `json:"items"`
}

// Empty is the result type for endpoints that return no payload.
type Empty struct{}

// PageRequest selects a window of a list endpoint.
type PageRequest struct {
	Offset int
	Limit  int
}

// query renders the page as a URL query string, or "" for the zero value.
func (p PageRequest) query() string {
	values := url.Values{}
	if p.Offset > 0 {
		values.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
