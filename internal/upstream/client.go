// Package upstream holds the typed HTTP clients the order service uses to call
// the external Order API and the payment gateway. Each operation is a plain
// method that builds a Request and decodes the typed response.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

type Option func(*clientOptions)

type clientOptions struct {
	timeout      time.Duration
	transport    http.RoundTripper
	interceptors []Interceptor
}

func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.transport = rt }
}

func WithInterceptors(in ...Interceptor) Option {
	return func(o *clientOptions) { o.interceptors = append(o.interceptors, in...) }
}

// New returns a Client rooted at baseURL. Defaults to a 30s timeout.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	o := clientOptions{timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		baseURL: u,
		http: &http.Client{
			Timeout:   o.timeout,
			Transport: Chain(o.transport, o.interceptors...),
		},
	}, nil
}

// Request describes one outbound call.
type Request struct {
	Method string
	Path   string // already escaped, e.g. "/orders/12"
	Query  url.Values
	Header http.Header
	Body   any
}

// Response is the raw status, headers and body of a call, plus the decoded
// Content on success or Error otherwise.
type Response[T any] struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Content    T
	Error      *APIError
}

func (r *Response[T]) IsSuccess() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

type rawResponse struct {
	url        string
	statusCode int
	header     http.Header
	body       []byte
}

// send performs the call. A non-nil error is always a transport or encoding failure.
func (c *Client) send(ctx context.Context, r Request) (*rawResponse, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + r.Path
	u.RawPath = ""
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal req payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.Method, u.Path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", r.Method, u.Path, err)
	}
	return &rawResponse{url: req.URL.String(), statusCode: res.StatusCode, header: res.Header, body: raw}, nil
}

// doWithResponse never returns a non-success status as an error; it is reported in Response.Error.
func doWithResponse[T any](ctx context.Context, c *Client, r Request) (*Response[T], error) {
	res, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	out := &Response[T]{StatusCode: res.statusCode, Header: res.header, Body: res.body}
	if !out.IsSuccess() {
		out.Error = &APIError{
			Method:     r.Method,
			URL:        res.url,
			StatusCode: res.statusCode,
			Content:    string(res.body),
			Header:     res.header,
		}
		return out, nil
	}
	if len(bytes.TrimSpace(res.body)) > 0 {
		if err := json.Unmarshal(res.body, &out.Content); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", r.Method, r.Path, err)
		}
	}
	return out, nil
}

// do returns the decoded body, or an *APIError for a non-success status.
func do[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var zero T
	res, err := doWithResponse[T](ctx, c, r)
	if err != nil {
		return zero, err
	}
	if res.Error != nil {
		return zero, res.Error
	}
	return res.Content, nil
}
