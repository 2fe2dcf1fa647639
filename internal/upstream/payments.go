package upstream

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MikeMC777/orders-payments/internal/payment"
)

// PaymentClient calls the payment gateway. Every operation keeps the response
// metadata so callers can read a decline body.
type PaymentClient struct{ c *Client }

func NewPaymentClient(c *Client) *PaymentClient { return &PaymentClient{c: c} }

func (p *PaymentClient) ProcessPayment(ctx context.Context, req payment.ProcessPaymentRequest) (*Response[payment.ProcessPaymentResponse], error) {
	return doWithResponse[payment.ProcessPaymentResponse](ctx, p.c, Request{
		Method: http.MethodPost, Path: "/api/payments/process", Body: req,
	})
}

func (p *PaymentClient) GetPayment(ctx context.Context, id uuid.UUID) (*Response[payment.PaymentResponse], error) {
	return doWithResponse[payment.PaymentResponse](ctx, p.c, Request{
		Method: http.MethodGet, Path: "/api/payments/" + id.String(),
	})
}

func (p *PaymentClient) RefundPayment(ctx context.Context, id uuid.UUID, req payment.RefundPaymentRequest) (*Response[payment.RefundPaymentResponse], error) {
	return doWithResponse[payment.RefundPaymentResponse](ctx, p.c, Request{
		Method: http.MethodPost, Path: "/api/payments/" + id.String() + "/refund", Body: req,
	})
}

func (p *PaymentClient) ValidateCard(ctx context.Context, req payment.ValidateCardRequest) (*Response[payment.ValidateCardResponse], error) {
	return doWithResponse[payment.ValidateCardResponse](ctx, p.c, Request{
		Method: http.MethodPost, Path: "/api/payments/validate-card", Body: req,
	})
}
