package port

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"unipact/internal/core/domain"
)

// CampaignUseCase is the campaign engagement workflow. Every method receives
// the authenticated caller and checks every precondition before mutating
// anything.
type CampaignUseCase interface {
	// CreateCampaign posts a campaign owned by the calling company. It lands
	// in Open unless Draft is set.
	CreateCampaign(ctx context.Context, caller domain.Caller, in CreateCampaignInput) (*domain.Campaign, error)
	// PublishCampaign moves a draft campaign to Open.
	PublishCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (*domain.Campaign, error)
	// ArchiveCampaign removes a non-terminal campaign from active listings.
	// The owning company and admins may archive.
	ArchiveCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (*CampaignDetail, error)
	ListCampaigns(ctx context.Context, caller domain.Caller, filter CampaignFilter) ([]domain.Campaign, error)

	// SubmitApplication records a club's bid on an open campaign.
	SubmitApplication(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, message string) (*domain.Application, error)
	ListMyApplications(ctx context.Context, caller domain.Caller) ([]domain.Application, error)
	// AwardApplication selects the winning application. Ownership is checked
	// first, then the monetization gate, then that the campaign is open.
	AwardApplication(ctx context.Context, caller domain.Caller, applicationID uuid.UUID) (*domain.Application, error)

	// SubmitDeliverable uploads a file against the caller's awarded
	// application.
	SubmitDeliverable(ctx context.Context, caller domain.Caller, applicationID uuid.UUID, file FileUpload) (*domain.Deliverable, error)
	ListDeliverables(ctx context.Context, caller domain.Caller, applicationID uuid.UUID) ([]domain.Deliverable, error)

	// CompleteCampaign closes an in-progress campaign and tries to produce
	// its report. A report failure does not fail the call; ReportURL is nil
	// instead.
	CompleteCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (*CompletionResult, error)
	GetReport(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (*domain.Report, error)
}

// ReputationUseCase records reviews and derives club ranks from them.
type ReputationUseCase interface {
	// RecordReview stores the caller's review of the club it awarded on a
	// campaign. It does not recompute the club's rank.
	RecordReview(ctx context.Context, caller domain.Caller, in RecordReviewInput) (*domain.Review, error)
	// RecomputeRank derives and stores a club's rank from the reviews of the
	// year ending at now.
	RecomputeRank(ctx context.Context, clubID uuid.UUID, now time.Time) (domain.Rank, error)
	// RecomputeAll recomputes every club and returns how many were updated.
	RecomputeAll(ctx context.Context, now time.Time) (int, error)
	GetClub(ctx context.Context, clubID uuid.UUID) (*domain.ClubProfile, error)
}

// PaymentUseCase is the ledger writer: it opens pending transactions and
// settles them once the payment processor confirms.
type PaymentUseCase interface {
	CreatePaymentIntent(ctx context.Context, caller domain.Caller, in PaymentIntentInput) (*PaymentIntentResult, error)
	ConfirmPayment(ctx context.Context, caller domain.Caller, transactionID uuid.UUID) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, caller domain.Caller) ([]domain.Transaction, error)
}

type CreateCampaignInput struct {
	Title        string
	Description  string
	Type         domain.CampaignType
	Budget       decimal.Decimal
	Deadline     *time.Time
	Requirements []string
	Draft        bool
}

// CampaignDetail is a campaign with the applications its owner may see.
// Applications is empty for everyone but the owner and admins.
type CampaignDetail struct {
	Campaign     domain.Campaign
	Applications []domain.Application
}

// FileUpload is an uploaded file as received from the transport.
type FileUpload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// CompletionResult is returned by CompleteCampaign. ReportURL is nil when the
// report could not be produced.
type CompletionResult struct {
	Campaign  domain.Campaign
	ReportURL *string
}

type RecordReviewInput struct {
	ClubID     uuid.UUID
	CampaignID uuid.UUID
	Rating     int
	Comment    string
}

type PaymentIntentInput struct {
	Amount     decimal.Decimal
	Type       domain.TransactionType
	CampaignID *uuid.UUID
}

type PaymentIntentResult struct {
	Transaction  domain.Transaction
	ClientSecret string
}
