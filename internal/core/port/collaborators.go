package port

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"unipact/internal/core/domain"
)

// FileStorage keeps uploaded deliverables and generated reports. Put returns
// a reference clients can retrieve the object with.
type FileStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// ReportInput is everything a completion report shows.
type ReportInput struct {
	Campaign     domain.Campaign
	Company      domain.CompanyProfile
	Awarded      *domain.Application
	Club         *domain.ClubProfile
	Deliverables []domain.Deliverable
}

// ReportGenerator renders and stores a completion report, returning its
// reference.
type ReportGenerator interface {
	Generate(ctx context.Context, in ReportInput) (string, error)
}

// EventPublisher hands workflow events to whatever delivers notifications.
// Publishing is best effort: callers log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// PaymentIntent is the processor-side handle for a payment in flight.
type PaymentIntent struct {
	Ref          string
	ClientSecret string
}

// PaymentProcessor is the payment gateway. Confirm reports whether the
// processor considers the intent paid.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (PaymentIntent, error)
	Confirm(ctx context.Context, ref string) (bool, error)
}

// Metrics records workflow counters.
type Metrics interface {
	Transition(name string)
	GateDenied()
	ReportFailed()
	RankComputed(rank domain.Rank)
}
