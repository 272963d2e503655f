package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Fetcher resolves the user record.
type Fetcher interface {
	Fetch(ctx context.Context) (Record, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) (Record, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) (Record, error) {
	return f(ctx)
}

// HTTPFetcher issues a single GET against a fixed endpoint.
type HTTPFetcher struct {
	endpoint string
	client   *http.Client
	timeout  *time.Duration
	tracer   trace.Tracer
	logger   *zap.Logger
}

// Ensure HTTPFetcher implements Fetcher.
var _ Fetcher = (*HTTPFetcher)(nil)

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithHTTPClient replaces the default http.Client. The fetcher never
// modifies c.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithTimeout sets the request timeout, whatever client is in use.
// Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) { f.timeout = &d }
}

// WithTracer sets the tracer used for the fetch span.
// Defaults to the global provider's "hellotui/user" tracer.
func WithTracer(t trace.Tracer) Option {
	return func(f *HTTPFetcher) { f.tracer = t }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *HTTPFetcher) { f.logger = l }
}

// NewHTTPFetcher creates a fetcher for endpoint.
func NewHTTPFetcher(endpoint string, opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		endpoint: endpoint,
		client:   &http.Client{},
		tracer:   otel.Tracer("hellotui/user"),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.timeout != nil {
		c := *f.client
		c.Timeout = *f.timeout
		f.client = &c
	}
	return f
}

// Endpoint returns the URL the fetcher requests.
func (f *HTTPFetcher) Endpoint() string {
	return f.endpoint
}

// Fetch performs the request. Any failure is returned as *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context) (Record, error) {
	ctx, span := f.tracer.Start(ctx, "user.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", f.endpoint)),
	)
	defer span.End()

	start := time.Now()
	rec, err := f.do(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		f.logger.Warn("user fetch failed",
			zap.String("endpoint", f.endpoint),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return Record{}, err
	}
	span.SetStatus(codes.Ok, "")
	f.logger.Info("user fetched",
		zap.String("endpoint", f.endpoint),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("name", rec.Name),
	)
	return rec, nil
}

func (f *HTTPFetcher) do(ctx context.Context, span trace.Span) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return Record{}, &FetchError{Message: err.Error(), Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Record{}, &FetchError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Record{}, &FetchError{
			Message: fmt.Sprintf("unexpected status %s", resp.Status),
			Status:  resp.StatusCode,
			Err:     errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Record{}, &FetchError{Message: err.Error(), Status: resp.StatusCode, Err: err}
	}
	rec, err := ParseRecord(body)
	if err != nil {
		return Record{}, &FetchError{Message: err.Error(), Status: resp.StatusCode, Err: err}
	}
	return rec, nil
}
