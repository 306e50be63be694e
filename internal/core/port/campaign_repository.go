package port

import (
	"context"

	"github.com/google/uuid"

	"unipact/internal/core/domain"
)

// CampaignRepository is the persistence port for campaigns, applications,
// deliverables and reports. Implementations must be concurrency-safe: the
// uniqueness rules and AwardApplication are enforced by the store itself,
// not by callers checking first.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns ErrCampaignNotFound when no campaign has the id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// TransitionCampaign moves a campaign from one status to another and
	// fails with ErrStatusChanged when the stored status is not from.
	TransitionCampaign(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) error

	// CreateApplication fails with ErrDuplicateApplication when the club has
	// already applied to the campaign.
	CreateApplication(ctx context.Context, a *domain.Application) error
	GetApplication(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListApplications(ctx context.Context, campaignID uuid.UUID) ([]domain.Application, error)
	ListApplicationsByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Application, error)
	// AwardedApplication returns the awarded application of a campaign, or
	// nil when nothing has been awarded.
	AwardedApplication(ctx context.Context, campaignID uuid.UUID) (*domain.Application, error)

	// AwardApplication atomically marks the application Awarded, marks every
	// other application of the campaign NotSelected and moves the campaign
	// to InProgress. It fails with ErrCampaignNotOpen, without changing
	// anything, if the campaign is not Open at the time it runs.
	AwardApplication(ctx context.Context, campaignID, applicationID uuid.UUID) error

	CreateDeliverable(ctx context.Context, d *domain.Deliverable) error
	ListDeliverables(ctx context.Context, applicationID uuid.UUID) ([]domain.Deliverable, error)

	// SaveReport stores the report of a campaign, replacing a previous one.
	SaveReport(ctx context.Context, r *domain.Report) error
	GetReport(ctx context.Context, campaignID uuid.UUID) (*domain.Report, error)
}

// CampaignFilter narrows ListCampaigns. Zero values mean no constraint.
type CampaignFilter struct {
	CompanyID *uuid.UUID
	Status    domain.CampaignStatus
	Limit     int
	Offset    int
}
