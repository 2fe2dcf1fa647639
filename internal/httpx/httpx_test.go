package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWriteProblem(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { BadRequest(c, "Customer name is required") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ContentTypeProblem, w.Header().Get("Content-Type"))
	var p Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, Problem{Title: TitleValidation, Status: 400, Detail: "Customer name is required"}, p)
}

func TestNotFound(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { NotFound(c, "gone") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"title":"Not Found","status":404,"detail":"gone"}`, w.Body.String())
}

func TestFail(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { Fail(c, fmt.Errorf("dial: %w", errors.New("connection refused"))) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestFail_CanceledRequest(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { Fail(c, fmt.Errorf("upstream: %w", context.Canceled)) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(ctx))

	assert.Equal(t, 499, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestIntParam(t *testing.T) {
	cases := map[string]struct {
		id int64
		ok bool
	}{
		"42":  {42, true},
		"abc": {0, false},
		"1.5": {0, false},
	}
	for seg, want := range cases {
		t.Run(seg, func(t *testing.T) {
			r := gin.New()
			var (
				got int64
				ok  bool
			)
			r.GET("/orders/:id", func(c *gin.Context) { got, ok = IntParam(c, "id") })
			serve(r, httptest.NewRequest(http.MethodGet, "/orders/"+seg, nil))
			assert.Equal(t, want.ok, ok)
			assert.Equal(t, want.id, got)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/x", func(c *gin.Context) {
		rid, _ := c.Get("rid")
		c.String(http.StatusOK, "%v", rid)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())

	w1 := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	w2 := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w1.Header().Get(HeaderRequestID))
	assert.NotEqual(t, w1.Header().Get(HeaderRequestID), w2.Header().Get(HeaderRequestID))
}

func TestDecimalAsNumber(t *testing.T) {
	b, err := json.Marshal(struct {
		Total decimal.Decimal `json:"total"`
	}{decimal.RequireFromString("40.979")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":40.979}`, string(b))
}
