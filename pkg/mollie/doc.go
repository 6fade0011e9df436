// Package mollie provides the types, resource kinds and helpers for working
// with the Mollie v2 payments API.
//
// # Overview
//
// The package defines the request and response model (Request, Response),
// the domain resources (Payment, Order, Customer, Subscription, ...) and the
// interfaces for resource-oriented clients (PaymentsClient, OrdersClient,
// ...). A concrete implementation is provided by the mollieclient package,
// which wires configuration, transport selection and authentication.
//
// Getting a client
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
//	  cli, err := mollieclient.New(ctx, &mollie.Config{APIKey: "test_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  payment, err := cli.Payments().Create(ctx, mollie.Payload{
//	    "amount":      mollie.NewMoney("EUR", "10.00"),
//	    "description": "Order #12345",
//	    "redirectUrl": "https://webshop.example.org/order/12345/",
//	  }, nil)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(payment.CheckoutURL())
//	}
//
// # Hydration
//
// Responses are mapped onto resources by Hydrate, driven by a Kind. Resources
// that implement EmbedsResources declare which _embedded keys they accept and
// which kind each key hydrates into; undeclared keys fail with
// ErrEmbeddedResourcesNotParseable. Every hydrated resource stays bound to the
// connector and the response it came from.
//
// # Pagination
//
// List calls return a Collection holding one page. Next and Previous follow
// the _links hrefs verbatim. AutoIterator walks every page lazily:
//
//	it := cli.Payments().Iterator(mollie.NewQueryParams().WithLimit(50), false)
//	for payment, err := range it.All(ctx) {
//	  if err != nil { break }
//	  _ = payment
//	}
//
// # Errors
//
// Failed calls return *APIError carrying the status, title, detail and field
// of the error document. IsNotFound, IsUnauthorized and IsUnprocessable cover
// common cases.
//
// # Interceptors and caching
//
// InterceptorChain runs RequestInterceptor and ResponseInterceptor functions
// around every call. GET responses can be cached in memory, in a NATS
// JetStream key-value bucket or in Redis; see CacheConfig.
package mollie
