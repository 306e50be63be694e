package event

import (
	"context"
	"log/slog"

	"unipact/internal/core/domain"
)

// LogPublisher writes events to the log. It is used when no broker is
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...domain.Event) error {
	for _, e := range events {
		attrs := []any{
			slog.String("type", string(e.Type)),
			slog.String("key", e.Key),
		}
		for k, v := range e.Attributes {
			attrs = append(attrs, slog.String(k, v))
		}
		p.logger.InfoContext(ctx, "event", attrs...)
	}
	return nil
}
