package upstream

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	HeaderCorrelationID = "X-Correlation-Id"
	HeaderAPIKey        = "X-Api-Key"
	HeaderUserAgent     = "User-Agent"
)

// Interceptor wraps the transport send of every outbound call.
type Interceptor func(next http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Chain composes interceptors so the first one runs first.
func Chain(base http.RoundTripper, interceptors ...Interceptor) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(interceptors) - 1; i >= 0; i-- {
		base = interceptors[i](base)
	}
	return base
}

// Headers stamps every call with a fresh correlation id and the user agent,
// plus X-Api-Key when apiKey is set.
func Headers(userAgent, apiKey string) Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			r = r.Clone(r.Context())
			r.Header.Set(HeaderUserAgent, userAgent)
			r.Header.Set(HeaderCorrelationID, uuid.NewString())
			if apiKey != "" {
				r.Header.Set(HeaderAPIKey, apiKey)
			}
			return next.RoundTrip(r)
		})
	}
}

// Logging logs one line per call once the response headers arrive.
func Logging() Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			res, err := next.RoundTrip(r)
			cid := r.Header.Get(HeaderCorrelationID)
			if err != nil {
				log.Printf("[upstream] cid=%s %s %s error=%v dur=%s", cid, r.Method, r.URL, err, time.Since(start))
				return nil, err
			}
			log.Printf("[upstream] cid=%s %s %s status=%d dur=%s", cid, r.Method, r.URL, res.StatusCode, time.Since(start))
			return res, nil
		})
	}
}
