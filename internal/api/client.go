// Package api is the client of the remote catalog, order, user, payment and
// admin endpoints. Every call goes through a rate limiter and a circuit
// breaker and is recorded in Prometheus metrics.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nikolayk812/shopledger/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token sends the request without an Authorization header.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	metrics *Metrics
	tokens  TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func New(cfg config.API, opts ...Option) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("base URL[%s] is not absolute", cfg.BaseURL)
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		breaker: newBreaker(baseURL.Host),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	st := gobreaker.Settings{
		Name:     name,
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
	}
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		if counts.ConsecutiveFailures >= 5 {
			return true
		}
		if counts.Requests < 20 {
			return false
		}
		return float64(counts.TotalFailures)/float64(counts.Requests) > 0.5
	}
	// client errors say nothing about the health of the remote API
	st.IsSuccessful = func(err error) bool {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return apiErr.StatusCode < http.StatusInternalServerError
		}
		return err == nil
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("api circuit breaker state changed")
	}

	return gobreaker.NewCircuitBreaker(st)
}

type request struct {
	op             string
	method         string
	path           string
	query          url.Values
	body           any
	rawBody        []byte
	contentType    string
	accept         string
	idempotencyKey string
	skipAuth       bool
}

// do performs the request and decodes a JSON response into out, when out is
// not nil and the response has a body. A *[]byte out receives the body as is.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("limiter.Wait: %w", err)
	}

	start := time.Now()

	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.roundTrip(ctx, req, out)
	})

	c.metrics.observe(req.op, err, time.Since(start))

	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("op", req.op).Msg("api request failed")
		return err
	}

	return nil
}

func (c *Client) roundTrip(ctx context.Context, req request, out any) error {
	var body io.Reader
	contentType := req.contentType
	switch {
	case req.rawBody != nil:
		body = bytes.NewReader(req.rawBody)
	case req.body != nil:
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	u := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	accept := req.accept
	if accept == "" {
		accept = "application/json"
	}
	httpReq.Header.Set("Accept", accept)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.idempotencyKey)
	}
	if !req.skipAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(req.op, resp, data)
	}

	if raw, ok := out.(*[]byte); ok {
		*raw = data
		return nil
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: json.Unmarshal: %w", req.op, err)
	}

	return nil
}
