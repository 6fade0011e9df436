package mollie

import (
	"context"
	"sync"
	"time"

	"github.com/fivetwenty-io/mollie-client/internal/constants"
)

// BatchOperation is one request of a batch.
type BatchOperation struct {
	ID       string
	Request  *Request
	Callback func(result *BatchResult)
}

// BatchResult is the outcome of one BatchOperation. Response is nil when
// Error is set.
type BatchResult struct {
	ID       string
	Success  bool
	Response *Response
	Error    error
	Duration time.Duration
}

// BatchExecutor sends independent requests concurrently.
type BatchExecutor struct {
	connector   Connector
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(connector Connector, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	return &BatchExecutor{
		connector:   connector,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the timeout of each operation.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations. Results are in operation order; a failed
// operation does not stop the others.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	if b.connector == nil {
		return nil, ErrNotBound
	}

	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	if operation.Request == nil {
		result.Error = ErrInvalidArgument

		return result
	}

	response, err := b.connector.Send(ctx, operation.Request)
	if err != nil {
		result.Error = err

		return result
	}

	result.Success = true
	result.Response = response

	return result
}

// BatchResource hydrates the response of a successful batch result.
func BatchResource[T Resource](connector Connector, result BatchResult, kind *ResourceKind[T]) (T, error) {
	var zero T

	if result.Error != nil {
		return zero, result.Error
	}

	if result.Response == nil || result.Response.IsEmpty() {
		return zero, nil
	}

	return HydrateResponse(connector, result.Response, kind)
}

// BatchBuilder builds batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// Add adds an arbitrary request.
func (b *BatchBuilder) Add(id string, req *Request) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{ID: id, Request: req})

	return b
}

// AddGetPayment adds a payment lookup.
func (b *BatchBuilder) AddGetPayment(id, paymentID string, query *QueryParams) *BatchBuilder {
	return b.Add(id, NewGetPaymentRequest(paymentID, query.ToValues()))
}

// AddCreatePayment adds a payment creation.
func (b *BatchBuilder) AddCreatePayment(id string, body Payload) *BatchBuilder {
	return b.Add(id, NewCreatePaymentRequest(body, nil))
}

// AddCreateRefund adds a refund of paymentID.
func (b *BatchBuilder) AddCreateRefund(id, paymentID string, body Payload) *BatchBuilder {
	return b.Add(id, NewCreatePaymentRefundRequest(paymentID, body))
}

// AddGetOrder adds an order lookup.
func (b *BatchBuilder) AddGetOrder(id, orderID string, query *QueryParams) *BatchBuilder {
	return b.Add(id, NewGetOrderRequest(orderID, query.ToValues()))
}

// AddGetCustomer adds a customer lookup.
func (b *BatchBuilder) AddGetCustomer(id, customerID string) *BatchBuilder {
	return b.Add(id, NewGetCustomerRequest(customerID, nil))
}

// Build returns the operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
