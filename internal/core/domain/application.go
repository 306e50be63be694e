package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the state of a club's bid on a campaign.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationAwarded     ApplicationStatus = "AWARDED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationNotSelected ApplicationStatus = "NOT_SELECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAwarded, ApplicationRejected, ApplicationNotSelected:
		return true
	default:
		return false
	}
}

// Application is a club's bid to be selected for a campaign. A club has at
// most one application per campaign and a campaign has at most one awarded
// application.
type Application struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	ClubID      uuid.UUID
	Message     string
	Status      ApplicationStatus
	SubmittedAt time.Time
}

// Deliverable is a file a club uploads against an awarded application.
type Deliverable struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	FileRef       string
	UploadedAt    time.Time
}

// Report is the completion summary rendered for a campaign. There is at most
// one report per campaign.
type Report struct {
	CampaignID uuid.UUID
	URL        string
	CreatedAt  time.Time
}
