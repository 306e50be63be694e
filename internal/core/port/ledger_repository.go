package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"unipact/internal/core/domain"
)

// LedgerRepository stores monetary transactions. The workflow only reads it;
// status changes come from the payment service.
type LedgerRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// SettleTransaction moves a pending transaction to status. It fails with
	// ErrTransactionSettled when the transaction is no longer pending.
	SettleTransaction(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error
	// SettleWithTier moves a pending transaction to Success and sets the
	// company's tier as one unit. On error neither change is visible.
	SettleWithTier(ctx context.Context, id, companyID uuid.UUID, tier domain.Tier) error
	ListTransactions(ctx context.Context, companyID uuid.UUID) ([]domain.Transaction, error)
	// HasSuccessfulFindersFee reports whether the company has a successful
	// finder's fee transaction tied to the campaign. It always reads current
	// state.
	HasSuccessfulFindersFee(ctx context.Context, companyID, campaignID uuid.UUID) (bool, error)
}

// ProfileRepository reads company and club profiles. Ranks are written only
// through SetClubRank by the reputation engine.
type ProfileRepository interface {
	GetCompany(ctx context.Context, id uuid.UUID) (*domain.CompanyProfile, error)
	SetCompanyTier(ctx context.Context, id uuid.UUID, tier domain.Tier) error
	GetClub(ctx context.Context, id uuid.UUID) (*domain.ClubProfile, error)
	ListClubIDs(ctx context.Context) ([]uuid.UUID, error)
	SetClubRank(ctx context.Context, id uuid.UUID, rank domain.Rank) error
}

// ReviewRepository stores reviews.
type ReviewRepository interface {
	// CreateReview fails with ErrDuplicateReview when the reviewer already
	// reviewed the campaign, even under concurrent inserts.
	CreateReview(ctx context.Context, r *domain.Review) error
	// ListReviewsSince returns the reviews of a club created at or after since.
	ListReviewsSince(ctx context.Context, clubID uuid.UUID, since time.Time) ([]domain.Review, error)
}
