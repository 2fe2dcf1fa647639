package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// OrderDTO is the external Order API representation of an order.
type OrderDTO struct {
	ID            int64           `json:"id"`
	Reference     string          `json:"reference,omitempty"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []OrderItemDTO  `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt"`
}

type OrderItemDTO struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type CreateOrderRequest struct {
	Reference     string                   `json:"reference,omitempty"`
	CustomerName  string                   `json:"customerName"`
	CustomerEmail string                   `json:"customerEmail"`
	Items         []CreateOrderItemRequest `json:"items"`
}

type CreateOrderItemRequest struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type UpdateOrderRequest struct {
	CustomerName  string                   `json:"customerName"`
	CustomerEmail string                   `json:"customerEmail"`
	Items         []CreateOrderItemRequest `json:"items"`
	Status        string                   `json:"status"`
}

// PatchOrderRequest leaves nil fields untouched upstream.
type PatchOrderRequest struct {
	Status        *string `json:"status,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
}

// OrderQuery filters a list call. Nil fields are not sent.
type OrderQuery struct {
	CustomerID *int64
	Status     *string
	FromDate   *time.Time
	ToDate     *time.Time
	Page       *int
	PageSize   *int
}

func (q OrderQuery) Values() url.Values {
	v := url.Values{}
	if q.CustomerID != nil {
		v.Set("customerId", strconv.FormatInt(*q.CustomerID, 10))
	}
	if q.Status != nil {
		v.Set("status", *q.Status)
	}
	if q.FromDate != nil {
		v.Set("fromDate", q.FromDate.Format(time.RFC3339))
	}
	if q.ToDate != nil {
		v.Set("toDate", q.ToDate.Format(time.RFC3339))
	}
	if q.Page != nil {
		v.Set("page", strconv.Itoa(*q.Page))
	}
	if q.PageSize != nil {
		v.Set("pageSize", strconv.Itoa(*q.PageSize))
	}
	return v
}

// OrderClient calls the external Order API.
type OrderClient struct{ c *Client }

func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

// orderBody rejects a success status with no order in the body.
func orderBody(o *OrderDTO, err error) (*OrderDTO, error) {
	if err == nil && o == nil {
		return nil, ErrEmptyBody
	}
	return o, err
}

func orderPath(id int64) string { return "/orders/" + strconv.FormatInt(id, 10) }

func (o *OrderClient) GetOrder(ctx context.Context, id int64) (*OrderDTO, error) {
	return orderBody(do[*OrderDTO](ctx, o.c, Request{Method: http.MethodGet, Path: orderPath(id)}))
}

func (o *OrderClient) GetOrderWithResponse(ctx context.Context, id int64) (*Response[OrderDTO], error) {
	return doWithResponse[OrderDTO](ctx, o.c, Request{Method: http.MethodGet, Path: orderPath(id)})
}

func (o *OrderClient) ListOrders(ctx context.Context, q OrderQuery) ([]OrderDTO, error) {
	return do[[]OrderDTO](ctx, o.c, Request{Method: http.MethodGet, Path: "/orders", Query: q.Values()})
}

// ListOrdersAuthorized lists orders on behalf of a caller holding a bearer token.
func (o *OrderClient) ListOrdersAuthorized(ctx context.Context, token string) ([]OrderDTO, error) {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return do[[]OrderDTO](ctx, o.c, Request{Method: http.MethodGet, Path: "/orders", Header: h})
}

func (o *OrderClient) ListCustomerOrders(ctx context.Context, customerID int64) ([]OrderDTO, error) {
	path := "/customers/" + strconv.FormatInt(customerID, 10) + "/orders"
	return do[[]OrderDTO](ctx, o.c, Request{Method: http.MethodGet, Path: path})
}

func (o *OrderClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderDTO, error) {
	return orderBody(do[*OrderDTO](ctx, o.c, Request{Method: http.MethodPost, Path: "/orders", Body: req}))
}

// CreateOrderWithResponse keeps the response metadata, e.g. the Location header.
func (o *OrderClient) CreateOrderWithResponse(ctx context.Context, req CreateOrderRequest) (*Response[OrderDTO], error) {
	return doWithResponse[OrderDTO](ctx, o.c, Request{Method: http.MethodPost, Path: "/orders", Body: req})
}

func (o *OrderClient) UpdateOrder(ctx context.Context, id int64, req UpdateOrderRequest) (*OrderDTO, error) {
	return orderBody(do[*OrderDTO](ctx, o.c, Request{Method: http.MethodPut, Path: orderPath(id), Body: req}))
}

func (o *OrderClient) PatchOrder(ctx context.Context, id int64, req PatchOrderRequest) (*OrderDTO, error) {
	return orderBody(do[*OrderDTO](ctx, o.c, Request{Method: http.MethodPatch, Path: orderPath(id), Body: req}))
}

func (o *OrderClient) DeleteOrder(ctx context.Context, id int64) error {
	_, err := do[json.RawMessage](ctx, o.c, Request{Method: http.MethodDelete, Path: orderPath(id)})
	return err
}
