package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/orders-payments/internal/httpx"
	"github.com/MikeMC777/orders-payments/internal/payment"
)

func paymentNotFound(c *gin.Context) {
	httpx.NotFound(c, fmt.Sprintf("Payment with ID %s was not found", c.Param("id")))
}

// writeGatewayError maps validation failures to 400 and everything else to Fail.
func writeGatewayError(c *gin.Context, err error) {
	var ve *payment.ValidationError
	if errors.As(err, &ve) {
		httpx.BadRequest(c, ve.Detail)
		return
	}
	httpx.Fail(c, err)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httpx.BadRequest(c, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// processPaymentHandler godoc
// @Summary  Charge an order
// @Tags     Payments
// @Accept   json
// @Produce  json
// @Param    body body payment.ProcessPaymentRequest true "charge"
// @Success  200 {object} payment.ProcessPaymentResponse
// @Failure  400 {object} httpx.Problem
// @Failure  422 {object} httpx.Problem
// @Router   /api/payments/process [post]
func processPaymentHandler(gw *payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.ProcessPaymentRequest
		if !bindJSON(c, &req) {
			return
		}
		p, err := gw.Process(c.Request.Context(), req)
		if errors.Is(err, payment.ErrDeclined) {
			httpx.WriteProblem(c, http.StatusUnprocessableEntity, httpx.TitlePayment, "Payment declined: "+p.FailureReason)
			return
		}
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, payment.ToProcessResponse(p))
	}
}

// getPaymentHandler godoc
// @Summary  Get a payment
// @Tags     Payments
// @Produce  json
// @Param    id path string true "payment id (uuid)"
// @Success  200 {object} payment.PaymentResponse
// @Router   /api/payments/{id} [get]
func getPaymentHandler(gw *payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			paymentNotFound(c)
			return
		}
		c.JSON(http.StatusOK, payment.ToPaymentResponse(gw.Get(c.Request.Context(), id)))
	}
}

// refundPaymentHandler godoc
// @Summary  Refund a payment
// @Tags     Payments
// @Accept   json
// @Produce  json
// @Param    id   path string                       true "payment id (uuid)"
// @Param    body body payment.RefundPaymentRequest true "refund"
// @Success  200 {object} payment.RefundPaymentResponse
// @Failure  400 {object} httpx.Problem
// @Router   /api/payments/{id}/refund [post]
func refundPaymentHandler(gw *payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			paymentNotFound(c)
			return
		}
		var req payment.RefundPaymentRequest
		if !bindJSON(c, &req) {
			return
		}
		r, err := gw.Refund(c.Request.Context(), id, req)
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, payment.ToRefundResponse(r))
	}
}

// validateCardHandler godoc
// @Summary  Validate a card number
// @Tags     Payments
// @Accept   json
// @Produce  json
// @Param    body body payment.ValidateCardRequest true "card"
// @Success  200 {object} payment.ValidateCardResponse
// @Failure  400 {object} httpx.Problem
// @Router   /api/payments/validate-card [post]
func validateCardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.ValidateCardRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := payment.ValidateCard(req)
		if err != nil {
			writeGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
