// Package torchpay provides a Go client SDK for the TorchPay REST API,
// a bitcoin/lightning payment service.
//
// Every call issues exactly one HTTP request and normalizes the response
// into a typed envelope carrying either decoded data or a typed API error.
// The SDK does not retry, queue or rate-limit requests.
//
// Basic usage:
//
//	client, err := torchpay.New(os.Getenv("TORCHPAY_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.IssueInvoice(ctx, &torchpay.InvoiceRequest{
//	    Description: "coffee",
//	    Amount: &torchpay.Money{
//	        Amount:   decimal.RequireFromString("4.50"),
//	        Currency: torchpay.CurrencyUSD,
//	    },
//	}, torchpay.WithIdempotencyKey(uuid.New()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Success() {
//	    log.Fatalf("invoice rejected: %v", res.Err)
//	}
//
//	fmt.Println("invoice:", res.Data.ID)
//
// By default failures come back inside the envelope and the returned Go
// error is nil. WithThrowOnError switches the client to returning Go errors
// for HTTP error statuses and transport failures instead.
package torchpay
