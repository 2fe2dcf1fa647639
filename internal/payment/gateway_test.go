package payment

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { log.SetOutput(io.Discard) }

var (
	txnPattern = regexp.MustCompile(`^TXN-\d{8}-[0-9A-F]{8}$`)
	refPattern = regexp.MustCompile(`^REF-\d{8}-[0-9A-F]{8}$`)
)

func newTestGateway() *Gateway {
	opts := DefaultOptions()
	opts.ProcessDelay = 0
	opts.RefundDelay = 0
	return NewGateway(opts)
}

func str(s string) *string { return &s }

func TestProcess_Completed(t *testing.T) {
	t.Parallel()

	g := newTestGateway()
	p, err := g.Process(context.Background(), ProcessPaymentRequest{
		OrderID: "ORD-1",
		Amount:  decimal.RequireFromString("10000.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, DefaultCurrency, p.Currency)
	assert.Equal(t, MethodCreditCard, p.Method)
	assert.Regexp(t, txnPattern, p.TransactionID)
	require.NotNil(t, p.ProcessedAt)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestProcess_DeclinedAboveLimit(t *testing.T) {
	t.Parallel()

	g := newTestGateway()
	p, err := g.Process(context.Background(), ProcessPaymentRequest{
		OrderID:  "ORD-1",
		Amount:   decimal.RequireFromString("10000.01"),
		Currency: str("EUR"),
	})
	require.ErrorIs(t, err, ErrDeclined)
	require.NotNil(t, p)
	assert.Equal(t, StatusFailed, p.Status)
	assert.Equal(t, DeclineReasonLimit, p.FailureReason)
	assert.Empty(t, p.TransactionID)
	assert.NotNil(t, p.ProcessedAt)
	assert.Equal(t, "EUR", p.Currency)
}

func TestProcess_Validation(t *testing.T) {
	t.Parallel()

	g := newTestGateway()
	tests := []struct {
		name   string
		req    ProcessPaymentRequest
		detail string
	}{
		{"missing order id", ProcessPaymentRequest{OrderID: "  ", Amount: decimal.NewFromInt(1)}, "Order ID is required"},
		{"zero amount", ProcessPaymentRequest{OrderID: "o", Amount: decimal.Zero}, "Amount must be greater than zero"},
		{"negative amount", ProcessPaymentRequest{OrderID: "o", Amount: decimal.NewFromInt(-5)}, "Amount must be greater than zero"},
		{"unknown method", ProcessPaymentRequest{OrderID: "o", Amount: decimal.NewFromInt(1), PaymentMethod: str("Cheque")}, `Invalid payment method "Cheque"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := g.Process(context.Background(), tt.req)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "err=%v", err)
			assert.Equal(t, tt.detail, verr.Detail)
		})
	}
}

func TestProcess_MethodCaseInsensitive(t *testing.T) {
	t.Parallel()

	p, err := newTestGateway().Process(context.Background(), ProcessPaymentRequest{
		OrderID: "o", Amount: decimal.NewFromInt(1), PaymentMethod: str("paypal"),
	})
	require.NoError(t, err)
	assert.Equal(t, MethodPayPal, p.Method)
}

func TestProcess_CanceledDuringDelay(t *testing.T) {
	t.Parallel()

	g := NewGateway(Options{ProcessDelay: time.Minute, DeclineAbove: decimal.NewFromInt(10000)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := g.Process(ctx, ProcessPaymentRequest{OrderID: "o", Amount: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestGet_Fabricated(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	p := newTestGateway().Get(context.Background(), id)

	assert.Equal(t, id, p.ID)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("99.99")))
	assert.Equal(t, StatusCompleted, p.Status)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, p.OrderID)
	assert.Regexp(t, txnPattern, p.TransactionID)
	require.NotNil(t, p.ProcessedAt)
	assert.True(t, p.CreatedAt.Before(*p.ProcessedAt))
}

func TestRefund(t *testing.T) {
	t.Parallel()

	g := newTestGateway()
	id := uuid.New()

	r, err := g.Refund(context.Background(), id, RefundPaymentRequest{Amount: decimal.NewFromInt(5), Reason: str("damaged")})
	require.NoError(t, err)
	assert.Equal(t, id, r.PaymentID)
	assert.Regexp(t, refPattern, r.TransactionID)
	assert.Equal(t, StatusCompleted, r.Status)
	assert.Equal(t, "damaged", *r.Reason)

	_, err = g.Refund(context.Background(), id, RefundPaymentRequest{Amount: decimal.Zero})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Refund amount must be greater than zero", verr.Detail)
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	for _, s := range []Status{StatusCompleted, StatusFailed, StatusRefunded, StatusCancelled} {
		assert.True(t, s.Terminal(), s)
	}
}
