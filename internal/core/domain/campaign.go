package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft      CampaignStatus = "DRAFT"
	CampaignOpen       CampaignStatus = "OPEN"
	CampaignInProgress CampaignStatus = "IN_PROGRESS"
	CampaignCompleted  CampaignStatus = "COMPLETED"
	CampaignArchived   CampaignStatus = "ARCHIVED"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignOpen, CampaignInProgress, CampaignCompleted, CampaignArchived:
		return true
	default:
		return false
	}
}

// Terminal reports whether no transition leaves s.
func (s CampaignStatus) Terminal() bool {
	return s == CampaignCompleted || s == CampaignArchived
}

// CanTransition reports whether the workflow allows moving from s to next.
// Archiving is allowed from every non-terminal state.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case CampaignOpen:
		return s == CampaignDraft
	case CampaignInProgress:
		return s == CampaignOpen
	case CampaignCompleted:
		return s == CampaignInProgress
	case CampaignArchived:
		return true
	default:
		return false
	}
}

// CampaignType is the kind of engagement a company is sponsoring.
type CampaignType string

const (
	CampaignTalentBounty    CampaignType = "TALENT_BOUNTY"
	CampaignBrandAmbassador CampaignType = "BRAND_AMBASSADOR"
)

func (t CampaignType) Valid() bool {
	return t == CampaignTalentBounty || t == CampaignBrandAmbassador
}

// Campaign represents a sponsored engagement posted by a company.
// Budget is kept at two decimal places.
type Campaign struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Title        string
	Description  string
	Type         CampaignType
	Budget       decimal.Decimal
	Requirements []string
	Deadline     *time.Time // date only
	Status       CampaignStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether the campaign belongs to the given company.
func (c *Campaign) OwnedBy(companyID uuid.UUID) bool {
	return c.CompanyID == companyID
}
