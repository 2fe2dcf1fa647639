package order

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/orders-payments/internal/payment"
	"github.com/MikeMC777/orders-payments/internal/upstream"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTotal_NoRounding(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Quantity: 3, UnitPrice: dec("0.333")},
		{Quantity: 1, UnitPrice: dec("0.001")},
		{Quantity: 7, UnitPrice: dec("19.99")},
	}
	assert.True(t, dec("140.93").Equal(Total(items)), "got %s", Total(items))
	assert.True(t, dec("0.999").Equal(items[0].LineTotal()))
	assert.True(t, decimal.Zero.Equal(Total(nil)))
}

func TestNewOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("x", 3600))
	o := NewOrder(CreateOrderRequest{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Items: []CreateOrderItem{
			{ProductName: "pen", Quantity: 2, UnitPrice: dec("1.25")},
			{ProductName: "ink", Quantity: 1, UnitPrice: dec("4.10")},
		},
	}, now)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, time.UTC, o.CreatedAt.Location())
	assert.Nil(t, o.UpdatedAt)
	assert.Len(t, o.Items, 2)
	assert.True(t, dec("6.60").Equal(o.TotalAmount))

	res := ToResponse(o)
	require.Len(t, res.Items, 2)
	assert.True(t, dec("2.50").Equal(res.Items[0].TotalPrice))
	assert.Equal(t, "Pending", res.Status)
}

func TestValidateCustomer(t *testing.T) {
	t.Parallel()

	one := []CreateOrderItem{{ProductName: "pen", Quantity: 1, UnitPrice: dec("1")}}
	tests := []struct {
		name   string
		cust   string
		items  []CreateOrderItem
		detail string
	}{
		{"empty name", "", one, DetailCustomerName},
		{"whitespace name", "  \t", one, DetailCustomerName},
		{"no items", "Ada", nil, DetailNoItems},
		{"ok", "Ada", one, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCustomer(tc.cust, tc.items)
			if tc.detail == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.detail, ve.Detail)
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, st := range ValidStatuses {
		for _, in := range []string{string(st), strings.ToLower(string(st)), strings.ToUpper(string(st))} {
			got, ok := ParseStatus(in)
			assert.True(t, ok, in)
			assert.Equal(t, st, got)
		}
	}
	for _, bad := range []string{"", "Archived", "Cancel", "Canceled", "pending!"} {
		_, ok := ParseStatus(bad)
		assert.False(t, ok, bad)
	}
}

func sampleDTOs() []upstream.OrderDTO {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []upstream.OrderDTO{
		{ID: 1, CustomerName: "Ada", TotalAmount: dec("10.50"), Status: "Pending", CreatedAt: created,
			Items: []upstream.OrderItemDTO{{ID: 1}, {ID: 2}}},
		{ID: 2, CustomerName: "Bob", TotalAmount: dec("0.25"), Status: "Shipped", CreatedAt: created},
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	p := NewPage(sampleDTOs(), nil, nil)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 2, p.TotalCount)
	assert.True(t, dec("10.75").Equal(p.TotalSpent))
	assert.Equal(t, 2, p.Orders[0].ItemCount)
	assert.Equal(t, 0, p.Orders[1].ItemCount)

	page, size := 3, 50
	p = NewPage(nil, &page, &size)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.PageSize)
	assert.NotNil(t, p.Orders)
	assert.True(t, p.TotalSpent.IsZero())
}

func TestNewCustomerOrders(t *testing.T) {
	t.Parallel()

	c := NewCustomerOrders(42, sampleDTOs())
	assert.Equal(t, int64(42), c.CustomerID)
	assert.Equal(t, 2, c.TotalOrders)
	assert.True(t, dec("10.75").Equal(c.TotalSpent))
	assert.Equal(t, "Shipped", c.Orders[1].Status)
}

func TestFromDTO_RoundTripsToCreateRequest(t *testing.T) {
	t.Parallel()

	d := upstream.OrderDTO{
		ID: 9, Reference: "ORD-20240101-ABCDEF12", CustomerName: "Ada", CustomerEmail: "a@x",
		Items: []upstream.OrderItemDTO{{ID: 4, ProductName: "pen", Quantity: 2, UnitPrice: dec("1.5")}},
	}
	o := FromDTO(&d)
	assert.Equal(t, int64(9), o.Items[0].OrderID)

	req := ToCreateRequest(o)
	assert.Equal(t, "Ada", req.CustomerName)
	assert.Equal(t, d.Reference, req.Reference)
	require.Len(t, req.Items, 1)
	assert.Equal(t, 2, req.Items[0].Quantity)
}

func TestNewPaymentRequest(t *testing.T) {
	t.Parallel()

	o := &Order{Reference: "ORD-20240101-ABCDEF12", TotalAmount: dec("12.34")}
	req := NewPaymentRequest(o, PlaceOrderRequest{})
	assert.Equal(t, o.Reference, req.OrderID)
	assert.True(t, o.TotalAmount.Equal(req.Amount))
	require.NotNil(t, req.Currency)
	assert.Equal(t, payment.DefaultCurrency, *req.Currency)

	eur := "EUR"
	req = NewPaymentRequest(o, PlaceOrderRequest{Currency: &eur})
	assert.Equal(t, "EUR", *req.Currency)
}
