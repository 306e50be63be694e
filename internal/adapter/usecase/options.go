package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

var tracer = otel.Tracer("unipact/usecase")

// Option configures the ambient dependencies shared by the use cases.
type Option func(*common)

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *common) { c.logger = l }
}

// WithEvents sets where workflow events go. Defaults to dropping them.
func WithEvents(p port.EventPublisher) Option {
	return func(c *common) { c.events = p }
}

// WithMetrics sets the metrics sink. Defaults to discarding.
func WithMetrics(m port.Metrics) Option {
	return func(c *common) { c.metrics = m }
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *common) { c.now = now }
}

type common struct {
	logger  *slog.Logger
	events  port.EventPublisher
	metrics port.Metrics
	now     func() time.Time
}

func newCommon(opts []Option) common {
	c := common{
		logger:  slog.Default(),
		events:  discardEvents{},
		metrics: discardMetrics{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// publish hands events to the publisher and only logs failures; delivery of
// notifications never decides the outcome of a workflow step.
func (c common) publish(ctx context.Context, events ...domain.Event) {
	if err := c.events.Publish(ctx, events...); err != nil {
		c.logger.Warn("event publish failed", slog.Any("error", err), slog.Int("count", len(events)))
	}
}

// finish ends span, recording err if there was one.
func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

type discardEvents struct{}

func (discardEvents) Publish(context.Context, ...domain.Event) error { return nil }

type discardMetrics struct{}

func (discardMetrics) Transition(string)        {}
func (discardMetrics) GateDenied()              {}
func (discardMetrics) ReportFailed()            {}
func (discardMetrics) RankComputed(domain.Rank) {}
