package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusConfirmed  Status = "Confirmed"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

var ValidStatuses = []Status{
	StatusPending, StatusConfirmed, StatusProcessing,
	StatusShipped, StatusDelivered, StatusCancelled,
}

// ParseStatus matches s against the known statuses ignoring case and
// returns the canonical spelling.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range ValidStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Order is the local representation. ID is assigned by the store;
// Reference is the ORD- id of an order created through place-order.
type Order struct {
	ID            int64
	Reference     string
	CustomerName  string
	CustomerEmail string
	Items         []Item
	TotalAmount   decimal.Decimal
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type Item struct {
	ID          int64
	OrderID     int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func (it Item) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Total sums the line totals without rounding.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
