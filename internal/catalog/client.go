package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/rfhold/marquee/internal/catalog"

	// maxErrorBody bounds how much of an error response is read for its message
	maxErrorBody = 1 << 20
)

// Option configures a resource client
type Option func(*client)

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for request logging
func WithLogger(logger *slog.Logger) Option {
	return func(c *client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// client issues JSON requests against one resource base endpoint.
// It never retries and sets no timeout beyond the transport defaults.
type client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
	tracer trace.Tracer
}

func newClient(baseURL string, opts ...Option) (*client, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &client{
		base:   base,
		http:   http.DefaultClient,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// normalizeBaseURL validates the base endpoint and strips trailing slashes
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// endpoint joins an already escaped route onto the base URL
func (c *client) endpoint(route string, query url.Values) string {
	u := c.base + "/" + strings.TrimLeft(route, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends one request. body is JSON encoded when non-nil and the response is
// decoded into out when out is non-nil.
func (c *client) do(ctx context.Context, op Operation, method, target string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, string(op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", target),
		),
	)
	defer span.End()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return c.fail(span, fmt.Errorf("encode %s request: %w", op, err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return c.fail(span, fmt.Errorf("build %s request: %w", op, err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("catalog request failed",
			"op", string(op), "method", method, "url", target,
			"request_id", requestID, "error", err)
		return c.fail(span, fmt.Errorf("%s %s: %w", method, target, err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug("catalog request",
		"op", string(op), "method", method, "url", target, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.fail(span, &StatusError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Message:    parseErrorMessage(data),
		})
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(span, fmt.Errorf("read %s response: %w", op, err))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return c.fail(span, fmt.Errorf("decode %s response: %w", op, ErrEmptyPayload))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.fail(span, fmt.Errorf("decode %s response: %w", op, err))
	}
	return nil
}

func (c *client) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
