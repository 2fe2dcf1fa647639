package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wire shapes of the payment gateway API. The order service decodes the same types.

// ProcessPaymentRequest payload of a charge.
// swagger:model ProcessPaymentRequest
type ProcessPaymentRequest struct {
	OrderID       string          `json:"orderId"                 example:"ORD-20240131-9F2C41AB"`
	Amount        decimal.Decimal `json:"amount"                  swaggertype:"number" example:"59.90"`
	Currency      *string         `json:"currency,omitempty"      example:"USD"`
	Card          *CardInfo       `json:"card,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty" example:"CreditCard"`
}

type CardInfo struct {
	CardNumber     string `json:"cardNumber"     example:"4111111111111111"`
	CardHolderName string `json:"cardHolderName" example:"Ada Lovelace"`
	ExpiryMonth    string `json:"expiryMonth"    example:"12"`
	ExpiryYear     string `json:"expiryYear"     example:"2030"`
	Cvv            string `json:"cvv"            example:"123"`
}

// swagger:model ProcessPaymentResponse
type ProcessPaymentResponse struct {
	PaymentID     uuid.UUID       `json:"paymentId" swaggertype:"string" format:"uuid"`
	OrderID       string          `json:"orderId"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	ProcessedAt   time.Time       `json:"processedAt"`
}

// swagger:model PaymentResponse
type PaymentResponse struct {
	PaymentID     uuid.UUID       `json:"paymentId" swaggertype:"string" format:"uuid"`
	OrderID       string          `json:"orderId"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
	ProcessedAt   *time.Time      `json:"processedAt"`
}

// swagger:model RefundPaymentRequest
type RefundPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"           swaggertype:"number" example:"10.00"`
	Reason *string         `json:"reason,omitempty" example:"damaged item"`
}

// swagger:model RefundPaymentResponse
type RefundPaymentResponse struct {
	RefundID            uuid.UUID       `json:"refundId" swaggertype:"string" format:"uuid"`
	PaymentID           uuid.UUID       `json:"paymentId" swaggertype:"string" format:"uuid"`
	RefundTransactionID string          `json:"refundTransactionId"`
	Amount              decimal.Decimal `json:"amount" swaggertype:"number"`
	Status              string          `json:"status"`
	Reason              *string         `json:"reason"`
	ProcessedAt         time.Time       `json:"processedAt"`
}

// swagger:model ValidateCardRequest
type ValidateCardRequest struct {
	CardNumber  string `json:"cardNumber"  example:"4111111111111111"`
	ExpiryMonth string `json:"expiryMonth" example:"12"`
	ExpiryYear  string `json:"expiryYear"  example:"2030"`
	Cvv         string `json:"cvv"         example:"123"`
}

// swagger:model ValidateCardResponse
type ValidateCardResponse struct {
	IsValid     bool   `json:"isValid"`
	CardType    string `json:"cardType"`
	Last4Digits string `json:"last4Digits"`
	ExpiryValid bool   `json:"expiryValid"`
}

func ToProcessResponse(p *Payment) ProcessPaymentResponse {
	out := ProcessPaymentResponse{
		PaymentID:     p.ID,
		OrderID:       p.OrderID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
	}
	if p.ProcessedAt != nil {
		out.ProcessedAt = *p.ProcessedAt
	}
	return out
}

func ToPaymentResponse(p *Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.ID,
		OrderID:       p.OrderID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		PaymentMethod: string(p.Method),
		CreatedAt:     p.CreatedAt,
		ProcessedAt:   p.ProcessedAt,
	}
}

func ToRefundResponse(r *Refund) RefundPaymentResponse {
	return RefundPaymentResponse{
		RefundID:            r.ID,
		PaymentID:           r.PaymentID,
		RefundTransactionID: r.TransactionID,
		Amount:              r.Amount,
		Status:              string(r.Status),
		Reason:              r.Reason,
		ProcessedAt:         r.ProcessedAt,
	}
}
