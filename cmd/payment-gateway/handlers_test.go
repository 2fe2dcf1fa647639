package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/orders-payments/internal/config"
	"github.com/MikeMC777/orders-payments/internal/httpx"
	"github.com/MikeMC777/orders-payments/internal/payment"
)

func init() {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)
}

var (
	txnPattern = regexp.MustCompile(`^TXN-\d{8}-[0-9A-F]{8}$`)
	refPattern = regexp.MustCompile(`^REF-\d{8}-[0-9A-F]{8}$`)
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	opts, err := gatewayOptions(config.Gateway{DeclineAbove: "10000"})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	return newRouter(payment.NewGateway(opts))
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func problemOf(t *testing.T, w *httptest.ResponseRecorder) httpx.Problem {
	t.Helper()
	var p httpx.Problem
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("json inválido: %v body=%s", err, w.Body.String())
	}
	return p
}

// ===== POST /api/payments/process =====
func TestProcessPayment_Completed(t *testing.T) {
	t.Parallel()

	w := do(newTestRouter(t), http.MethodPost, "/api/payments/process", `{"orderId":"ORD-1","amount":10000.00}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (esperaba 200)", w.Code, w.Body.String())
	}
	var res payment.ProcessPaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if res.Status != "Completed" || res.Currency != "USD" || res.OrderID != "ORD-1" {
		t.Fatalf("respuesta inesperada: %+v", res)
	}
	if !txnPattern.MatchString(res.TransactionID) {
		t.Fatalf("transactionId=%q", res.TransactionID)
	}
	if res.PaymentID == uuid.Nil || res.ProcessedAt.IsZero() {
		t.Fatalf("respuesta inesperada: %+v", res)
	}
	if !strings.Contains(w.Body.String(), `"amount":10000`) {
		t.Fatalf("amount debe ir como número: %s", w.Body.String())
	}
}

func TestProcessPayment_DeclinedAboveLimit(t *testing.T) {
	t.Parallel()

	w := do(newTestRouter(t), http.MethodPost, "/api/payments/process", `{"orderId":"ORD-1","amount":10000.01}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d body=%s (esperaba 422)", w.Code, w.Body.String())
	}
	p := problemOf(t, w)
	if p.Title != "Payment Failed" || p.Detail != "Payment declined: Amount exceeds limit" || p.Status != 422 {
		t.Fatalf("problem=%+v", p)
	}
}

func TestProcessPayment_Validation(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	cases := map[string]string{
		`{"orderId":"","amount":10}`:                              "Order ID is required",
		`{"orderId":"ORD-1","amount":0}`:                          "Amount must be greater than zero",
		`{"orderId":"ORD-1","amount":-5}`:                         "Amount must be greater than zero",
		`{"orderId":"ORD-1","amount":5,"paymentMethod":"Cheque"}`: `Invalid payment method "Cheque"`,
	}
	for body, detail := range cases {
		w := do(r, http.MethodPost, "/api/payments/process", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d (esperaba 400)", body, w.Code)
		}
		if p := problemOf(t, w); p.Detail != detail || p.Title != httpx.TitleValidation {
			t.Fatalf("%s: problem=%+v", body, p)
		}
	}
}

// ===== GET /api/payments/:id =====
func TestGetPayment_Fabricated(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	w := do(newTestRouter(t), http.MethodGet, "/api/payments/"+id.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (esperaba 200)", w.Code, w.Body.String())
	}
	var res payment.PaymentResponse
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.PaymentID != id || res.Status != "Completed" || res.PaymentMethod != "CreditCard" {
		t.Fatalf("respuesta inesperada: %+v", res)
	}
	if !res.Amount.Equal(decimal.RequireFromString("99.99")) || res.ProcessedAt == nil {
		t.Fatalf("respuesta inesperada: %+v", res)
	}
	if !res.CreatedAt.Before(*res.ProcessedAt) || time.Since(res.CreatedAt) > time.Hour {
		t.Fatalf("fechas inesperadas: %+v", res)
	}
}

func TestGetPayment_BadID(t *testing.T) {
	t.Parallel()

	if w := do(newTestRouter(t), http.MethodGet, "/api/payments/not-a-uuid", ""); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (esperaba 404)", w.Code)
	}
}

// ===== POST /api/payments/:id/refund =====
func TestRefundPayment(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	id := uuid.New()

	w := do(r, http.MethodPost, "/api/payments/"+id.String()+"/refund", `{"amount":12.5,"reason":"damaged"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s (esperaba 200)", w.Code, w.Body.String())
	}
	var res payment.RefundPaymentResponse
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.PaymentID != id || res.RefundID == uuid.Nil || res.Status != "Completed" {
		t.Fatalf("respuesta inesperada: %+v", res)
	}
	if !refPattern.MatchString(res.RefundTransactionID) {
		t.Fatalf("refundTransactionId=%q", res.RefundTransactionID)
	}
	if res.Reason == nil || *res.Reason != "damaged" {
		t.Fatalf("reason=%v", res.Reason)
	}

	w = do(r, http.MethodPost, "/api/payments/"+id.String()+"/refund", `{"amount":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (esperaba 400)", w.Code)
	}
	if p := problemOf(t, w); p.Detail != "Refund amount must be greater than zero" {
		t.Fatalf("problem=%+v", p)
	}
}

// ===== POST /api/payments/validate-card =====
func TestValidateCard(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	cases := []struct {
		number, brand, last4 string
	}{
		{"4111111111111111", "Visa", "1111"},
		{"51115111511151", "Mastercard", "1151"},
		{"371449635398431", "American Express", "8431"},
		{"6011111111111117", "Discover", "1117"},
		{"9999999999999", "Unknown", "9999"},
	}
	for _, tc := range cases {
		w := do(r, http.MethodPost, "/api/payments/validate-card", `{"cardNumber":"`+tc.number+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d body=%s", tc.number, w.Code, w.Body.String())
		}
		var res payment.ValidateCardResponse
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if !res.IsValid || !res.ExpiryValid || res.CardType != tc.brand || res.Last4Digits != tc.last4 {
			t.Fatalf("%s: %+v", tc.number, res)
		}
	}

	for _, bad := range []string{"", "411111111111"} {
		w := do(r, http.MethodPost, "/api/payments/validate-card", `{"cardNumber":"`+bad+`"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%q: status=%d (esperaba 400)", bad, w.Code)
		}
		if p := problemOf(t, w); p.Detail != "Invalid card number" {
			t.Fatalf("problem=%+v", p)
		}
	}
}

func TestGatewayOptions_BadLimit(t *testing.T) {
	t.Parallel()

	if _, err := gatewayOptions(config.Gateway{DeclineAbove: "lots"}); err == nil {
		t.Fatalf("esperaba error por límite inválido")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	w := do(newTestRouter(t), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"Healthy"`) {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}
