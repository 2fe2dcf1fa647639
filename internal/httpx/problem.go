package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Problem is an RFC 7807 error body.
// swagger:model Problem
type Problem struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"   example:"Validation Error"`
	Status int    `json:"status"  example:"400"`
	Detail string `json:"detail"  example:"Customer name is required"`
}

const ContentTypeProblem = "application/problem+json"

const (
	TitleValidation = "Validation Error"
	TitleAPIError   = "API Error"
	TitleNotFound   = "Not Found"
	TitlePayment    = "Payment Failed"
)

// WriteProblem aborts the request with a ProblemDetails body.
func WriteProblem(c *gin.Context, status int, title, detail string) {
	c.Header("Content-Type", ContentTypeProblem)
	c.AbortWithStatusJSON(status, Problem{Title: title, Status: status, Detail: detail})
}

func BadRequest(c *gin.Context, detail string) {
	WriteProblem(c, http.StatusBadRequest, TitleValidation, detail)
}

// Fail handles errors that have no domain mapping: transport failures and the like.
// A canceled inbound request only gets a status, nobody is listening.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, context.Canceled) && c.Request.Context().Err() != nil {
		c.AbortWithStatus(499)
		return
	}
	WriteProblem(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err.Error())
}

// IntParam parses a positive integer route parameter. ok is false when the segment
// is not an integer, which callers treat as an unknown route.
func IntParam(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func NotFound(c *gin.Context, detail string) {
	WriteProblem(c, http.StatusNotFound, TitleNotFound, detail)
}
