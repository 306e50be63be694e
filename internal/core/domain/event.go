package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a workflow occurrence other services may react to, such as
// sending notification emails.
type EventType string

const (
	EventApplicationSubmitted EventType = "application.submitted"
	EventApplicationAwarded   EventType = "application.awarded"
	EventCampaignCompleted    EventType = "campaign.completed"
	EventReviewRecorded       EventType = "review.recorded"
	EventPaymentConfirmed     EventType = "payment.confirmed"
)

// Event is a record of something that already happened in the workflow.
// Key groups related events (the campaign or company id) so consumers see
// them in order.
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Type       EventType         `json:"type"`
	Key        string            `json:"key"`
	Attributes map[string]string `json:"attributes"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewEvent builds an event keyed by key and stamped with at.
func NewEvent(t EventType, key uuid.UUID, at time.Time, attrs map[string]string) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		Key:        key.String(),
		Attributes: attrs,
		OccurredAt: at.UTC(),
	}
}
