// Package mollieclient provides the primary entry point for constructing a
// Mollie API client that implements the mollie.Client interface.
//
// It layers configuration, transport selection and authentication on top of
// the resource interfaces and types defined in the mollie package. Most
// applications import mollieclient to build a client, then use the returned
// mollie.Client to reach the resource clients, for example Payments(),
// Orders() or Customers().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/mollie-client/pkg/mollie"
//	  "github.com/fivetwenty-io/mollie-client/pkg/mollieclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := mollieclient.NewWithAPIKey(ctx, "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM")
//	  if err != nil { log.Fatal(err) }
//
//	  payment, err := cli.Payments().Create(ctx, mollie.Payload{
//	    "amount":      mollie.Payload{"currency": "EUR", "value": "10.00"},
//	    "description": "Order #12345",
//	    "redirectUrl": "https://webshop.example.org/order/12345/",
//	  }, nil)
//	  if err != nil { log.Fatal(err) }
//
//	  log.Println(payment.CheckoutURL())
//	}
//
// # Transports
//
// Config.HTTPClient selects the transport. Leave it nil for the build default
// (a retrying client unless built with the mollie_stdlib tag), or pass an
// *http.Client, a *retryablehttp.Client, a *rehttp.Transport or a custom
// adapter.
//
// # Helpers
//
// NewWithAPIKey, NewWithAccessToken, NewWithHTTPClient and NewFromEnv wrap New
// with the appropriate configuration.
package mollieclient
