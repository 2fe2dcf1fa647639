package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/orders-payments/internal/payment"
)

// CreateOrderItem payload of one line.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductName string          `json:"productName" example:"Keyboard"`
	Quantity    int             `json:"quantity"    example:"2"`
	UnitPrice   decimal.Decimal `json:"unitPrice"   swaggertype:"number" example:"29.95"`
}

// CreateOrderRequest payload of order creation. Also the body of a full update.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName  string            `json:"customerName"  example:"Ada Lovelace"`
	CustomerEmail string            `json:"customerEmail" example:"ada@example.com"`
	Items         []CreateOrderItem `json:"items"`
}

// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	CustomerName  string            `json:"customerName"  example:"Ada Lovelace"`
	CustomerEmail string            `json:"customerEmail" example:"ada@example.com"`
	Status        string            `json:"status"        example:"Processing"`
	Items         []CreateOrderItem `json:"items"`
}

// PlaceOrderRequest payload of an order paid in the same call.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	CustomerName  string            `json:"customerName"  example:"Ada Lovelace"`
	CustomerEmail string            `json:"customerEmail" example:"ada@example.com"`
	Items         []CreateOrderItem `json:"items"`
	Currency      *string           `json:"currency,omitempty"      example:"USD"`
	PaymentMethod *string           `json:"paymentMethod,omitempty" example:"CreditCard"`
	Card          *payment.CardInfo `json:"card,omitempty"`
}

// swagger:model UpdateOrderStatusRequest
type UpdateOrderStatusRequest struct {
	Status string `json:"status" example:"Shipped"`
}

type ItemResponse struct {
	ID          int64           `json:"id,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"  swaggertype:"number"`
	TotalPrice  decimal.Decimal `json:"totalPrice" swaggertype:"number"`
}

// OrderResponse is returned by create and get.
// swagger:model OrderResponse
type OrderResponse struct {
	ID            int64           `json:"id"`
	Reference     string          `json:"reference,omitempty" example:"ORD-20240131-9F2C41AB"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []ItemResponse  `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// PlaceOrderResponse carries both the store id (the one GET /api/orders/{id} takes)
// and the ORD- reference the payment was charged under.
// swagger:model PlaceOrderResponse
type PlaceOrderResponse struct {
	ID            int64           `json:"id"      example:"42"`
	OrderID       string          `json:"orderId" example:"ORD-20240131-9F2C41AB"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentID     uuid.UUID       `json:"paymentId" swaggertype:"string" format:"uuid"`
	TransactionID string          `json:"transactionId"`
	PaymentStatus string          `json:"paymentStatus"`
	Items         []ItemResponse  `json:"items"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type OrderSummary struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	ItemCount    int             `json:"itemCount"`
}

// OrdersPage is one page of the list endpoint. TotalSpent covers the page only.
// swagger:model OrdersPage
type OrdersPage struct {
	Orders     []OrderSummary  `json:"orders"`
	TotalCount int             `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalSpent decimal.Decimal `json:"totalSpent" swaggertype:"number"`
}

type CustomerOrderSummary struct {
	ID          int64           `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	ItemCount   int             `json:"itemCount"`
}

// swagger:model CustomerOrders
type CustomerOrders struct {
	CustomerID  int64                  `json:"customerId"`
	Orders      []CustomerOrderSummary `json:"orders"`
	TotalOrders int                    `json:"totalOrders"`
	TotalSpent  decimal.Decimal        `json:"totalSpent" swaggertype:"number"`
}

// swagger:model UpdateOrderResponse
type UpdateOrderResponse struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt"`
}

// swagger:model UpdateOrderStatusResponse
type UpdateOrderStatusResponse struct {
	ID        int64      `json:"id"`
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updatedAt"`
}
