package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/orders-payments/internal/httpx"
	"github.com/MikeMC777/orders-payments/internal/ids"
	"github.com/MikeMC777/orders-payments/internal/order"
	"github.com/MikeMC777/orders-payments/internal/payment"
	"github.com/MikeMC777/orders-payments/internal/upstream"
)

const titleOrderNotFound = "Order not found"

func orderNotFound(c *gin.Context, id any) {
	httpx.WriteProblem(c, http.StatusNotFound, titleOrderNotFound, fmt.Sprintf("Order with ID %v was not found", id))
}

// writeAPIError maps a failed upstream call. A non-success status becomes a 400
// carrying the upstream body; anything else is a transport failure.
func writeAPIError(c *gin.Context, err error) {
	if apiErr, ok := upstream.AsAPIError(err); ok {
		_ = c.Error(err)
		detail := apiErr.Content
		if detail == "" {
			detail = apiErr.Error()
		}
		httpx.WriteProblem(c, http.StatusBadRequest, httpx.TitleAPIError, detail)
		return
	}
	httpx.Fail(c, err)
}

// writeOrderError is writeAPIError with upstream 404 turned into a local not-found.
func writeOrderError(c *gin.Context, id int64, err error) {
	if errors.Is(err, upstream.ErrNotFound) || errors.Is(err, order.ErrNotFound) {
		orderNotFound(c, id)
		return
	}
	writeAPIError(c, err)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httpx.BadRequest(c, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func validationFailed(c *gin.Context, err error) bool {
	var ve *order.ValidationError
	if errors.As(err, &ve) {
		httpx.BadRequest(c, ve.Detail)
		return true
	}
	return false
}

// createOrderHandler godoc
// @Summary  Create an order
// @Tags     Orders
// @Accept   json
// @Produce  json
// @Param    body body order.CreateOrderRequest true "order"
// @Success  201 {object} order.OrderResponse
// @Failure  400 {object} httpx.Problem
// @Router   /api/orders [post]
func createOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if !bindJSON(c, &req) {
			return
		}
		if validationFailed(c, order.ValidateCustomer(req.CustomerName, req.Items)) {
			return
		}

		o := order.NewOrder(req, time.Now())
		if err := repo.Create(c.Request.Context(), o); err != nil {
			writeAPIError(c, err)
			return
		}

		c.Header("Location", "/api/orders/"+strconv.FormatInt(o.ID, 10))
		c.JSON(http.StatusCreated, order.ToResponse(o))
	}
}

// placeOrderHandler godoc
// @Summary  Place an order and charge it through the payment gateway
// @Tags     Orders
// @Accept   json
// @Produce  json
// @Param    body body order.PlaceOrderRequest true "order and payment"
// @Success  201 {object} order.PlaceOrderResponse
// @Failure  400 {object} httpx.Problem
// @Failure  422 {object} httpx.Problem
// @Router   /api/orders/place [post]
func placeOrderHandler(repo order.Repository, payments *upstream.PaymentClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.PlaceOrderRequest
		if !bindJSON(c, &req) {
			return
		}
		if validationFailed(c, order.ValidateCustomer(req.CustomerName, req.Items)) {
			return
		}
		if req.PaymentMethod != nil {
			if _, ok := payment.ParseMethod(*req.PaymentMethod); !ok {
				httpx.BadRequest(c, fmt.Sprintf("Invalid payment method %q", *req.PaymentMethod))
				return
			}
		}

		ts := time.Now()
		o := order.NewOrder(order.CreateOrderRequest{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			Items:         req.Items,
		}, ts)
		o.Reference = ids.Reference(ids.PrefixOrder, ts)
		o.Status = order.StatusConfirmed

		ctx := c.Request.Context()
		res, err := payments.ProcessPayment(ctx, order.NewPaymentRequest(o, req))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		if res.Error != nil {
			detail := res.Error.Content
			if detail == "" {
				detail = "Payment processing failed"
			}
			log.Printf("[orders] payment for %s rejected status=%d", o.Reference, res.Error.StatusCode)
			httpx.WriteProblem(c, http.StatusUnprocessableEntity, httpx.TitlePayment, detail)
			return
		}

		if err := repo.Create(ctx, o); err != nil {
			// the charge went through; the record did not
			log.Printf("[orders] persist %s after txn %s failed: %v", o.Reference, res.Content.TransactionID, err)
			writeAPIError(c, err)
			return
		}

		c.Header("Location", "/api/orders/"+strconv.FormatInt(o.ID, 10))
		c.JSON(http.StatusCreated, order.ToPlaceResponse(o, res.Content))
	}
}

// getOrderHandler godoc
// @Summary  Get an order
// @Tags     Orders
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} order.OrderResponse
// @Failure  404 {object} httpx.Problem
// @Router   /api/orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.IntParam(c, "id")
		if !ok {
			orderNotFound(c, c.Param("id"))
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			writeOrderError(c, id, err)
			return
		}
		c.JSON(http.StatusOK, order.ToResponse(o))
	}
}

func queryInt(c *gin.Context, name string) (*int64, error) {
	v, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &n, nil
}

func queryTime(c *gin.Context, name string) (*time.Time, error) {
	v, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		// a bare date is accepted too
		if t, err = time.Parse(time.DateOnly, v); err != nil {
			return nil, fmt.Errorf("%s must be an RFC 3339 date", name)
		}
	}
	return &t, nil
}

func intPtr(p *int64) *int {
	if p == nil {
		return nil
	}
	n := int(*p)
	return &n
}

// parseOrderQuery reads the list filters. Missing values stay nil and are not forwarded.
func parseOrderQuery(c *gin.Context) (upstream.OrderQuery, error) {
	var (
		q   upstream.OrderQuery
		err error
	)
	if q.CustomerID, err = queryInt(c, "customerId"); err != nil {
		return q, err
	}
	if s, ok := c.GetQuery("status"); ok && s != "" {
		q.Status = &s
	}
	if q.FromDate, err = queryTime(c, "fromDate"); err != nil {
		return q, err
	}
	if q.ToDate, err = queryTime(c, "toDate"); err != nil {
		return q, err
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return q, err
	}
	size, err := queryInt(c, "pageSize")
	if err != nil {
		return q, err
	}
	q.Page, q.PageSize = intPtr(page), intPtr(size)
	return q, nil
}

// listOrdersHandler godoc
// @Summary  List orders from the external Order API
// @Tags     Orders
// @Produce  json
// @Param    customerId query int    false "customer"
// @Param    status     query string false "status"
// @Param    fromDate   query string false "RFC 3339"
// @Param    toDate     query string false "RFC 3339"
// @Param    page       query int    false "page, default 1"
// @Param    pageSize   query int    false "page size, default 10"
// @Success  200 {object} order.OrdersPage
// @Router   /api/orders [get]
func listOrdersHandler(orders *upstream.OrderClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := parseOrderQuery(c)
		if err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}
		dtos, err := orders.ListOrders(c.Request.Context(), q)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.NewPage(dtos, q.Page, q.PageSize))
	}
}

// updateOrderHandler godoc
// @Summary  Replace an order in the external Order API
// @Tags     Orders
// @Accept   json
// @Produce  json
// @Param    id   path int                      true "order id"
// @Param    body body order.UpdateOrderRequest true "order"
// @Success  200 {object} order.UpdateOrderResponse
// @Failure  400 {object} httpx.Problem
// @Failure  404 {object} httpx.Problem
// @Router   /api/orders/{id} [put]
func updateOrderHandler(orders *upstream.OrderClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.IntParam(c, "id")
		if !ok {
			orderNotFound(c, c.Param("id"))
			return
		}
		var req order.UpdateOrderRequest
		if !bindJSON(c, &req) {
			return
		}
		if strings.TrimSpace(req.CustomerName) == "" {
			httpx.BadRequest(c, order.DetailCustomerName)
			return
		}

		d, err := orders.UpdateOrder(c.Request.Context(), id, order.ToUpdateRequest(req))
		if err != nil {
			writeOrderError(c, id, err)
			return
		}
		c.JSON(http.StatusOK, order.ToUpdateResponse(d))
	}
}

func validStatusList() string {
	names := make([]string, 0, len(order.ValidStatuses))
	for _, s := range order.ValidStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// updateOrderStatusHandler godoc
// @Summary  Change the status of an order
// @Tags     Orders
// @Accept   json
// @Produce  json
// @Param    id   path int                            true "order id"
// @Param    body body order.UpdateOrderStatusRequest true "status"
// @Success  200 {object} order.UpdateOrderStatusResponse
// @Failure  400 {object} httpx.Problem
// @Failure  404 {object} httpx.Problem
// @Router   /api/orders/{id}/status [patch]
func updateOrderStatusHandler(orders *upstream.OrderClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.IntParam(c, "id")
		if !ok {
			orderNotFound(c, c.Param("id"))
			return
		}
		var req order.UpdateOrderStatusRequest
		if !bindJSON(c, &req) {
			return
		}
		st, ok := order.ParseStatus(req.Status)
		if !ok {
			httpx.BadRequest(c, "Invalid status. Valid statuses are: "+validStatusList())
			return
		}

		status := string(st)
		d, err := orders.PatchOrder(c.Request.Context(), id, upstream.PatchOrderRequest{Status: &status})
		if err != nil {
			writeOrderError(c, id, err)
			return
		}
		c.JSON(http.StatusOK, order.ToStatusResponse(d))
	}
}

// deleteOrderHandler godoc
// @Summary  Delete an order in the external Order API
// @Tags     Orders
// @Param    id path int true "order id"
// @Success  204
// @Failure  404 {object} httpx.Problem
// @Router   /api/orders/{id} [delete]
func deleteOrderHandler(orders *upstream.OrderClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.IntParam(c, "id")
		if !ok {
			orderNotFound(c, c.Param("id"))
			return
		}
		if err := orders.DeleteOrder(c.Request.Context(), id); err != nil {
			writeOrderError(c, id, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// customerOrdersHandler godoc
// @Summary  Orders of one customer with totals
// @Tags     Orders
// @Produce  json
// @Param    customerId path int true "customer id"
// @Success  200 {object} order.CustomerOrders
// @Router   /api/customers/{customerId}/orders [get]
func customerOrdersHandler(orders *upstream.OrderClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.IntParam(c, "customerId")
		if !ok {
			httpx.NotFound(c, fmt.Sprintf("Customer with ID %s was not found", c.Param("customerId")))
			return
		}
		dtos, err := orders.ListCustomerOrders(c.Request.Context(), id)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.NewCustomerOrders(id, dtos))
	}
}
