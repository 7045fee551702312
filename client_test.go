package torchpay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNew_EmptyAPIKeyAccepted(t *testing.T) {
	// The key is not validated locally; the server decides.
	if _, err := New(""); err != nil {
		t.Errorf("New(\"\") error = %v, want nil", err)
	}
}

func TestIssueInvoice_EndToEnd(t *testing.T) {
	var gotAuth, gotIdem string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotIdem = r.Header.Get("Idempotency-Key")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"invoiceId":"7f0c9f4e-53a4-4a9a-9f28-9a4e1a1a2b3c","state":"UNPAID","amount":{"amount":"4.50","currency":"USD"},"created":"2026-08-30T12:00:00Z"}`))
	}))
	defer server.Close()

	client, err := New("secret-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	key := uuid.New()
	res, err := client.IssueInvoice(context.Background(), &InvoiceRequest{
		Description: "coffee",
		Amount: &Money{
			Amount:   decimal.RequireFromString("4.50"),
			Currency: CurrencyUSD,
		},
	}, WithIdempotencyKey(key))
	if err != nil {
		t.Fatalf("IssueInvoice() error = %v", err)
	}

	if gotAuth != "Bearer secret-key" {
		t.Errorf("Authorization = %q, want Bearer secret-key", gotAuth)
	}
	if gotIdem != key.String() {
		t.Errorf("Idempotency-Key = %q, want %q", gotIdem, key)
	}
	if !res.Success() {
		t.Fatalf("Err = %v, want success", res.Err)
	}
	if res.Data.State != InvoiceStateUnpaid {
		t.Errorf("State = %s, want UNPAID", res.Data.State)
	}
	if res.StatusCode != http.StatusCreated {
		t.Errorf("StatusCode = %d, want 201", res.StatusCode)
	}
}

func TestIssueInvoice_ValidationFailsLocally(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client, err := New("secret-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Negative amount never reaches the server.
	_, err = client.IssueInvoice(context.Background(), &InvoiceRequest{
		Amount: &Money{
			Amount:   decimal.RequireFromString("-1"),
			Currency: CurrencyBTC,
		},
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0", requests)
	}
}

func TestPayInvoice_ThrowMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"status":402,"code":"INSUFFICIENT_BALANCE","message":"balance too low"}`))
	}))
	defer server.Close()

	client, err := New("secret-key", WithBaseURL(server.URL), WithThrowOnError())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := client.PayInvoice(context.Background(), &PaymentRequest{
		PaymentRequest: "lnbc1pvjluez...",
	})
	if res != nil {
		t.Errorf("result = %+v, want nil in throw mode", res)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError reachable", err)
	}
	if apiErr.Code != "INSUFFICIENT_BALANCE" {
		t.Errorf("Code = %q, want INSUFFICIENT_BALANCE", apiErr.Code)
	}
}

func TestSetters_TakeEffect(t *testing.T) {
	var gotAuth string
	var gotTenant string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTenant = r.Header.Get("X-Tenant")
		w.Write([]byte(`{"balances":[]}`))
	}))
	defer server.Close()

	client, err := New("old-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	client.SetBaseURL(server.URL)
	client.SetAPIKey("new-key")
	client.SetHeader("X-Tenant", "acme")

	if _, err := client.Balances(context.Background()); err != nil {
		t.Fatalf("Balances() error = %v", err)
	}
	if gotAuth != "Bearer new-key" {
		t.Errorf("Authorization = %q, want Bearer new-key", gotAuth)
	}
	if gotTenant != "acme" {
		t.Errorf("X-Tenant = %q, want acme", gotTenant)
	}
}

func TestWithRawResponses(t *testing.T) {
	const body = `{"rates":[]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	client, err := New("key", WithBaseURL(server.URL), WithRawResponses())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := client.ExchangeRates(context.Background())
	if err != nil {
		t.Fatalf("ExchangeRates() error = %v", err)
	}
	if res.RawJSON != body {
		t.Errorf("RawJSON = %q, want %q", res.RawJSON, body)
	}
}

func TestTransportFailure_ReturnsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := New("key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := client.AccountProfile(context.Background())
	if err != nil {
		t.Fatalf("AccountProfile() error = %v, want nil in return mode", err)
	}
	if res.Err == nil || res.Err.Code != CodeServiceUnavailable {
		t.Errorf("Err = %+v, want synthetic %s", res.Err, CodeServiceUnavailable)
	}
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", res.StatusCode)
	}
}
