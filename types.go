package torchpay

import "github.com/torchpay/client-go/internal/api"

// Response is the uniform envelope returned from every call. Exactly one of
// Data and Err is populated; StatusCode always carries the HTTP status and
// RawJSON the body text when raw responses are enabled.
type Response[T any] = api.Result[T]

// Domain types, re-exported from the wire layer.
type (
	Currency                       = api.Currency
	Money                          = api.Money
	InvoiceState                   = api.InvoiceState
	InvoiceRequest                 = api.InvoiceRequest
	Invoice                        = api.Invoice
	InvoiceList                    = api.InvoiceList
	LightningQuote                 = api.LightningQuote
	PaymentState                   = api.PaymentState
	PaymentRequest                 = api.PaymentRequest
	Payment                        = api.Payment
	PaymentList                    = api.PaymentList
	LightningAddressVerification   = api.LightningAddressVerification
	LightningAddressInvoiceRequest = api.LightningAddressInvoiceRequest
	ExchangeRate                   = api.ExchangeRate
	RateList                       = api.RateList
	Balance                        = api.Balance
	BalanceList                    = api.BalanceList
	AccountProfile                 = api.AccountProfile
	EventType                      = api.EventType
	SubscriptionRequest            = api.SubscriptionRequest
	Subscription                   = api.Subscription
	SubscriptionList               = api.SubscriptionList
	PageRequest                    = api.PageRequest
	Empty                          = api.Empty
)

// Supported currencies.
const (
	CurrencyBTC  = api.CurrencyBTC
	CurrencyUSD  = api.CurrencyUSD
	CurrencyEUR  = api.CurrencyEUR
	CurrencyUSDT = api.CurrencyUSDT
)

// Invoice states.
const (
	InvoiceStateUnpaid    = api.InvoiceStateUnpaid
	InvoiceStatePending   = api.InvoiceStatePending
	InvoiceStatePaid      = api.InvoiceStatePaid
	InvoiceStateCancelled = api.InvoiceStateCancelled
)

// Payment states.
const (
	PaymentStatePending   = api.PaymentStatePending
	PaymentStateCompleted = api.PaymentStateCompleted
	PaymentStateFailed    = api.PaymentStateFailed
)

// Webhook event types.
const (
	EventInvoiceCreated   = api.EventInvoiceCreated
	EventInvoicePaid      = api.EventInvoicePaid
	EventInvoiceCancelled = api.EventInvoiceCancelled
	EventPaymentCompleted = api.EventPaymentCompleted
	EventPaymentFailed    = api.EventPaymentFailed
)
