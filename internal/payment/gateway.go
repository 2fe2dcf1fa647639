// Package payment simulates a card payment gateway: charges settle after a
// fixed delay and are declined above a configured amount.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/orders-payments/internal/ids"
)

// ErrDeclined is returned when the gateway refuses the charge.
var ErrDeclined = errors.New("payment declined")

const DeclineReasonLimit = "Amount exceeds limit"

// ValidationError is a rejected request field.
type ValidationError struct{ Detail string }

func (e *ValidationError) Error() string { return e.Detail }

func invalid(detail string) error { return &ValidationError{Detail: detail} }

type Options struct {
	ProcessDelay time.Duration
	RefundDelay  time.Duration
	DeclineAbove decimal.Decimal
}

func DefaultOptions() Options {
	return Options{
		ProcessDelay: 100 * time.Millisecond,
		RefundDelay:  50 * time.Millisecond,
		DeclineAbove: decimal.NewFromInt(10000),
	}
}

type Gateway struct {
	opts Options
	now  func() time.Time
}

func NewGateway(opts Options) *Gateway {
	return &Gateway{opts: opts, now: time.Now}
}

// Process validates and settles a charge. A declined charge is returned together
// with an error wrapping ErrDeclined; its FailureReason holds the reason.
func (g *Gateway) Process(ctx context.Context, req ProcessPaymentRequest) (*Payment, error) {
	if strings.TrimSpace(req.OrderID) == "" {
		return nil, invalid("Order ID is required")
	}
	if !req.Amount.IsPositive() {
		return nil, invalid("Amount must be greater than zero")
	}
	method, ok := ParseMethod(deref(req.PaymentMethod))
	if !ok {
		return nil, invalid(fmt.Sprintf("Invalid payment method %q", deref(req.PaymentMethod)))
	}
	currency := deref(req.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	p := &Payment{
		ID:        uuid.New(),
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		Currency:  currency,
		Method:    method,
		Status:    StatusPending,
		CreatedAt: g.now().UTC(),
	}

	if err := waitOrCancel(ctx, g.opts.ProcessDelay); err != nil {
		return nil, err
	}

	if req.Amount.GreaterThan(g.opts.DeclineAbove) {
		p.FailureReason = DeclineReasonLimit
		p.finish(StatusFailed, g.now().UTC())
		log.Printf("[gateway] declined order=%s amount=%s", p.OrderID, p.Amount)
		return p, fmt.Errorf("%w: %s", ErrDeclined, p.FailureReason)
	}

	p.TransactionID = ids.Reference(ids.PrefixTransaction, g.now())
	p.finish(StatusCompleted, g.now().UTC())
	log.Printf("[gateway] completed order=%s txn=%s amount=%s %s", p.OrderID, p.TransactionID, p.Amount, p.Currency)
	return p, nil
}

// Get fabricates a settled payment for any id. There is no payment store.
func (g *Gateway) Get(_ context.Context, id uuid.UUID) *Payment {
	now := g.now().UTC()
	processed := now.Add(-4 * time.Minute)
	return &Payment{
		ID:            id,
		OrderID:       ids.PrefixOrder + "-" + ids.Short(),
		TransactionID: ids.Reference(ids.PrefixTransaction, now),
		Amount:        decimal.RequireFromString("99.99"),
		Currency:      DefaultCurrency,
		Method:        MethodCreditCard,
		Status:        StatusCompleted,
		CreatedAt:     now.Add(-5 * time.Minute),
		ProcessedAt:   &processed,
	}
}

// Refund always succeeds for a positive amount.
func (g *Gateway) Refund(ctx context.Context, paymentID uuid.UUID, req RefundPaymentRequest) (*Refund, error) {
	if !req.Amount.IsPositive() {
		return nil, invalid("Refund amount must be greater than zero")
	}
	if err := waitOrCancel(ctx, g.opts.RefundDelay); err != nil {
		return nil, err
	}
	r := &Refund{
		ID:            uuid.New(),
		PaymentID:     paymentID,
		TransactionID: ids.Reference(ids.PrefixRefund, g.now()),
		Amount:        req.Amount,
		Status:        StatusCompleted,
		Reason:        req.Reason,
		ProcessedAt:   g.now().UTC(),
	}
	log.Printf("[gateway] refunded payment=%s ref=%s amount=%s", paymentID, r.TransactionID, r.Amount)
	return r, nil
}

// waitOrCancel blocks for d or until ctx is done.
func waitOrCancel(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
