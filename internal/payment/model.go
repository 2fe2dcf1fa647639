package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Method string

const (
	MethodCreditCard   Method = "CreditCard"
	MethodDebitCard    Method = "DebitCard"
	MethodBankTransfer Method = "BankTransfer"
	MethodPayPal       Method = "PayPal"
	MethodCrypto       Method = "Crypto"
)

var methods = []Method{MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodPayPal, MethodCrypto}

// ParseMethod matches s case-insensitively. An empty s means CreditCard.
func ParseMethod(s string) (Method, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MethodCreditCard, true
	}
	for _, m := range methods {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return "", false
}

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusFailed     Status = "Failed"
	StatusRefunded   Status = "Refunded"
	StatusCancelled  Status = "Cancelled"
)

// Terminal reports whether no further transition is expected.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusRefunded, StatusCancelled:
		return true
	}
	return false
}

const DefaultCurrency = "USD"

type Payment struct {
	ID            uuid.UUID
	OrderID       string
	Amount        decimal.Decimal
	Currency      string
	Method        Method
	Status        Status
	TransactionID string
	FailureReason string
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

// finish moves the payment to a terminal status and stamps ProcessedAt.
func (p *Payment) finish(status Status, at time.Time) {
	p.Status = status
	if status != StatusPending && status != StatusProcessing {
		t := at
		p.ProcessedAt = &t
	}
}

type Refund struct {
	ID            uuid.UUID
	PaymentID     uuid.UUID
	TransactionID string
	Amount        decimal.Decimal
	Status        Status
	Reason        *string
	ProcessedAt   time.Time
}
