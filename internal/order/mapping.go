package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/orders-payments/internal/payment"
	"github.com/MikeMC777/orders-payments/internal/upstream"
)

// ValidationError is a rejected request; the handler answers 400 with Detail.
type ValidationError struct{ Detail string }

func (e *ValidationError) Error() string { return e.Detail }

const (
	DetailCustomerName = "Customer name is required"
	DetailNoItems      = "At least one order item is required"
)

// ValidateCustomer checks the fields shared by create and place.
func ValidateCustomer(name string, items []CreateOrderItem) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Detail: DetailCustomerName}
	}
	if len(items) == 0 {
		return &ValidationError{Detail: DetailNoItems}
	}
	return nil
}

func ItemsFromRequest(in []CreateOrderItem) []Item {
	out := make([]Item, 0, len(in))
	for _, it := range in {
		out = append(out, Item{ProductName: it.ProductName, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return out
}

// NewOrder builds a pending order with its total computed from the lines.
func NewOrder(req CreateOrderRequest, now time.Time) *Order {
	items := ItemsFromRequest(req.Items)
	return &Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		TotalAmount:   Total(items),
		Status:        StatusPending,
		CreatedAt:     now.UTC(),
	}
}

func itemResponses(items []Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.LineTotal(),
		})
	}
	return out
}

func ToResponse(o *Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		Reference:     o.Reference,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         itemResponses(o.Items),
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ---- external Order API ----

func FromDTO(d *upstream.OrderDTO) *Order {
	o := &Order{
		ID:            d.ID,
		Reference:     d.Reference,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		TotalAmount:   d.TotalAmount,
		Status:        Status(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	for _, it := range d.Items {
		o.Items = append(o.Items, Item{
			ID:          it.ID,
			OrderID:     d.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return o
}

func ToUpstreamItems(in []CreateOrderItem) []upstream.CreateOrderItemRequest {
	out := make([]upstream.CreateOrderItemRequest, 0, len(in))
	for _, it := range in {
		out = append(out, upstream.CreateOrderItemRequest{
			ProductName: it.ProductName, Quantity: it.Quantity, UnitPrice: it.UnitPrice,
		})
	}
	return out
}

func ToCreateRequest(o *Order) upstream.CreateOrderRequest {
	req := upstream.CreateOrderRequest{Reference: o.Reference, CustomerName: o.CustomerName, CustomerEmail: o.CustomerEmail}
	for _, it := range o.Items {
		req.Items = append(req.Items, upstream.CreateOrderItemRequest{
			ProductName: it.ProductName, Quantity: it.Quantity, UnitPrice: it.UnitPrice,
		})
	}
	return req
}

func ToUpdateRequest(req UpdateOrderRequest) upstream.UpdateOrderRequest {
	return upstream.UpdateOrderRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        req.Status,
		Items:         ToUpstreamItems(req.Items),
	}
}

// NewPage summarizes one page of upstream orders. Missing page and size
// default to 1 and 10.
func NewPage(dtos []upstream.OrderDTO, page, pageSize *int) OrdersPage {
	out := OrdersPage{
		Orders:     make([]OrderSummary, 0, len(dtos)),
		TotalCount: len(dtos),
		Page:       1,
		PageSize:   10,
		TotalSpent: decimal.Zero,
	}
	if page != nil {
		out.Page = *page
	}
	if pageSize != nil {
		out.PageSize = *pageSize
	}
	for _, d := range dtos {
		out.Orders = append(out.Orders, OrderSummary{
			ID:           d.ID,
			CustomerName: d.CustomerName,
			TotalAmount:  d.TotalAmount,
			Status:       d.Status,
			CreatedAt:    d.CreatedAt,
			ItemCount:    len(d.Items),
		})
		out.TotalSpent = out.TotalSpent.Add(d.TotalAmount)
	}
	return out
}

func NewCustomerOrders(customerID int64, dtos []upstream.OrderDTO) CustomerOrders {
	out := CustomerOrders{
		CustomerID:  customerID,
		Orders:      make([]CustomerOrderSummary, 0, len(dtos)),
		TotalOrders: len(dtos),
		TotalSpent:  decimal.Zero,
	}
	for _, d := range dtos {
		out.Orders = append(out.Orders, CustomerOrderSummary{
			ID:          d.ID,
			TotalAmount: d.TotalAmount,
			Status:      d.Status,
			CreatedAt:   d.CreatedAt,
			ItemCount:   len(d.Items),
		})
		out.TotalSpent = out.TotalSpent.Add(d.TotalAmount)
	}
	return out
}

func ToUpdateResponse(d *upstream.OrderDTO) UpdateOrderResponse {
	return UpdateOrderResponse{
		ID:            d.ID,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		TotalAmount:   d.TotalAmount,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToStatusResponse(d *upstream.OrderDTO) UpdateOrderStatusResponse {
	return UpdateOrderStatusResponse{ID: d.ID, Status: d.Status, UpdatedAt: d.UpdatedAt}
}

// ---- place order ----

// NewPaymentRequest charges the full order total; currency defaults to USD.
func NewPaymentRequest(o *Order, req PlaceOrderRequest) payment.ProcessPaymentRequest {
	cur := payment.DefaultCurrency
	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		cur = *req.Currency
	}
	return payment.ProcessPaymentRequest{
		OrderID:       o.Reference,
		Amount:        o.TotalAmount,
		Currency:      &cur,
		Card:          req.Card,
		PaymentMethod: req.PaymentMethod,
	}
}

func ToPlaceResponse(o *Order, p payment.ProcessPaymentResponse) PlaceOrderResponse {
	return PlaceOrderResponse{
		ID:            o.ID,
		OrderID:       o.Reference,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		TotalAmount:   o.TotalAmount,
		Currency:      p.Currency,
		Status:        string(o.Status),
		PaymentID:     p.PaymentID,
		TransactionID: p.TransactionID,
		PaymentStatus: p.Status,
		Items:         itemResponses(o.Items),
		CreatedAt:     o.CreatedAt,
	}
}
