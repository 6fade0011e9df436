package mollie_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

// slowConnector counts requests in flight.
type slowConnector struct {
	*fakeConnector

	inFlight atomic.Int32
	peak     atomic.Int32
}

func (s *slowConnector) Send(ctx context.Context, req *mollie.Request) (*mollie.Response, error) {
	current := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	for {
		peak := s.peak.Load()
		if current <= peak || s.peak.CompareAndSwap(peak, current) {
			break
		}
	}

	time.Sleep(10 * time.Millisecond)

	return s.fakeConnector.Send(ctx, req)
}

func TestBatchExecutor(t *testing.T) {
	t.Parallel()

	connector := &slowConnector{fakeConnector: newFakeConnector().
		on("payments/tr_WDqYK6vllg", paymentWithRefunds).
		on("customers/cst_8wmqcHMN4U", `{"resource": "customer", "id": "cst_8wmqcHMN4U", "name": "Jane"}`)}

	var callbacks atomic.Int32

	operations := mollie.NewBatchBuilder().
		AddGetPayment("payment", "tr_WDqYK6vllg", nil).
		AddGetCustomer("customer", "cst_8wmqcHMN4U").
		AddGetOrder("missing", "ord_unknown", nil).
		Add("invalid", nil).
		Build()
	for index := range operations {
		operations[index].Callback = func(*mollie.BatchResult) { callbacks.Add(1) }
	}

	results, err := mollie.NewBatchExecutor(connector, 2).Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "payment", results[0].ID)
	assert.True(t, results[0].Success)
	assert.Positive(t, results[0].Duration)

	payment, err := mollie.BatchResource(connector, results[0], mollie.PaymentKind)
	require.NoError(t, err)
	assert.Equal(t, "tr_WDqYK6vllg", payment.ID)

	customer, err := mollie.BatchResource(connector, results[1], mollie.CustomerKind)
	require.NoError(t, err)
	assert.Equal(t, "Jane", customer.Name)

	assert.False(t, results[2].Success)
	assert.True(t, mollie.IsNotFound(results[2].Error))
	_, err = mollie.BatchResource(connector, results[2], mollie.OrderKind)
	require.Error(t, err)

	require.ErrorIs(t, results[3].Error, mollie.ErrInvalidArgument)

	assert.Equal(t, int32(4), callbacks.Load())
	assert.LessOrEqual(t, connector.peak.Load(), int32(2))
}

func TestBatchExecutor_RequiresConnector(t *testing.T) {
	t.Parallel()

	_, err := mollie.NewBatchExecutor(nil, 0).Execute(context.Background(), nil)
	require.ErrorIs(t, err, mollie.ErrNotBound)
}
