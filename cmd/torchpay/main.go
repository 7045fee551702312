// Command torchpay is a small operator CLI for the TorchPay API. It is
// aimed at poking a deployment during development: checking rates and
// balances, issuing invoices, paying them.
//
// Configuration comes from the environment (a .env file is honored):
//
//	TORCHPAY_API_KEY  API key (required)
//	TORCHPAY_ENV      "live" or "development" (default: development)
//	TORCHPAY_URL      custom base URL, overrides TORCHPAY_ENV
//	TORCHPAY_DEBUG    "1" enables debug logging and raw response capture
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	torchpay "github.com/torchpay/client-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: torchpay <rates|balances|profile|issue-invoice|find-invoice|pay-invoice> [args]")
	}

	// Missing .env is fine; the variables may already be exported.
	_ = godotenv.Load()

	apiKey := os.Getenv("TORCHPAY_API_KEY")
	if apiKey == "" {
		fatal("TORCHPAY_API_KEY is required")
	}

	client, err := buildClient(apiKey)
	if err != nil {
		fatal("create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "rates":
		rates(ctx, client)
	case "balances":
		balances(ctx, client)
	case "profile":
		profile(ctx, client)
	case "issue-invoice":
		if len(os.Args) < 4 {
			fatal("usage: torchpay issue-invoice <amount> <currency> [description]")
		}
		issueInvoice(ctx, client, os.Args[2], os.Args[3], rest(os.Args, 4))
	case "find-invoice":
		if len(os.Args) < 3 {
			fatal("usage: torchpay find-invoice <invoice-id>")
		}
		findInvoice(ctx, client, os.Args[2])
	case "pay-invoice":
		if len(os.Args) < 3 {
			fatal("usage: torchpay pay-invoice <bolt11>")
		}
		payInvoice(ctx, client, os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func buildClient(apiKey string) (*torchpay.Client, error) {
	debug := os.Getenv("TORCHPAY_DEBUG") == "1"

	opts := []torchpay.Option{
		torchpay.WithLogger(buildLogger(debug)),
	}
	if url := os.Getenv("TORCHPAY_URL"); url != "" {
		opts = append(opts, torchpay.WithBaseURL(url))
	} else if os.Getenv("TORCHPAY_ENV") == string(torchpay.EnvironmentLive) {
		opts = append(opts, torchpay.WithEnvironment(torchpay.EnvironmentLive))
	} else {
		opts = append(opts, torchpay.WithEnvironment(torchpay.EnvironmentDevelopment))
	}
	if debug {
		opts = append(opts, torchpay.WithRawResponses())
	}

	return torchpay.New(apiKey, opts...)
}

// buildLogger creates a JSON zap logger writing to stderr so command output
// on stdout stays parseable.
func buildLogger(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		level,
	)
	return zap.New(core)
}

func rates(ctx context.Context, client *torchpay.Client) {
	res, err := client.ExchangeRates(ctx)
	if err != nil {
		fatal("exchange rates: %v", err)
	}
	if !res.Success() {
		fatal("exchange rates: %v", res.Err)
	}
	for _, rate := range res.Data.Rates {
		fmt.Printf("%s/%s\t%s\n", rate.SourceCurrency, rate.TargetCurrency, rate.Amount)
	}
}

func balances(ctx context.Context, client *torchpay.Client) {
	res, err := client.Balances(ctx)
	if err != nil {
		fatal("balances: %v", err)
	}
	if !res.Success() {
		fatal("balances: %v", res.Err)
	}
	for _, b := range res.Data.Balances {
		fmt.Printf("%s\tcurrent=%s outgoing=%s available=%s\n",
			b.Currency, b.Current, b.Outgoing, b.Available)
	}
}

func profile(ctx context.Context, client *torchpay.Client) {
	res, err := client.AccountProfile(ctx)
	if err != nil {
		fatal("profile: %v", err)
	}
	if !res.Success() {
		fatal("profile: %v", res.Err)
	}
	printJSON(res.Data)
}

func issueInvoice(ctx context.Context, client *torchpay.Client, amount, currency, description string) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		fatal("invalid amount %q: %v", amount, err)
	}

	res, err := client.IssueInvoice(ctx, &torchpay.InvoiceRequest{
		Description: description,
		Amount: &torchpay.Money{
			Amount:   value,
			Currency: torchpay.Currency(currency),
		},
	}, torchpay.WithIdempotencyKey(uuid.New()))
	if err != nil {
		fatal("issue invoice: %v", err)
	}
	if !res.Success() {
		fatal("issue invoice: %v", res.Err)
	}
	printJSON(res.Data)
}

func findInvoice(ctx context.Context, client *torchpay.Client, rawID string) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		fatal("invalid invoice ID %q: %v", rawID, err)
	}

	res, err := client.FindInvoice(ctx, id)
	if err != nil {
		fatal("find invoice: %v", err)
	}
	if !res.Success() {
		fatal("find invoice: %v", res.Err)
	}
	printJSON(res.Data)
}

func payInvoice(ctx context.Context, client *torchpay.Client, bolt11 string) {
	res, err := client.PayInvoice(ctx, &torchpay.PaymentRequest{
		PaymentRequest: bolt11,
	}, torchpay.WithIdempotencyKey(uuid.New()))
	if err != nil {
		fatal("pay invoice: %v", err)
	}
	if !res.Success() {
		fatal("pay invoice: %v", res.Err)
	}
	printJSON(res.Data)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("encode output: %v", err)
	}
	fmt.Println(string(data))
}

func rest(args []string, from int) string {
	if len(args) > from {
		return args[from]
	}
	return ""
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
