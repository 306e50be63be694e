package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

// ProfileRepository reads company and club profiles and stores the fields
// the marketplace derives for them: tier and rank.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) GetCompany(ctx context.Context, id uuid.UUID) (*domain.CompanyProfile, error) {
	var c domain.CompanyProfile
	err := r.pool.QueryRow(ctx, `SELECT id, name, tier, verification_status FROM company_profiles WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Tier, &c.VerificationStatus)
	if err != nil {
		return nil, notFound(err, port.ErrCompanyNotFound)
	}
	return &c, nil
}

func (r *ProfileRepository) SetCompanyTier(ctx context.Context, id uuid.UUID, tier domain.Tier) error {
	tag, err := r.pool.Exec(ctx, `UPDATE company_profiles SET tier = $2 WHERE id = $1`, id, tier)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCompanyNotFound
	}
	return nil
}

func (r *ProfileRepository) GetClub(ctx context.Context, id uuid.UUID) (*domain.ClubProfile, error) {
	var c domain.ClubProfile
	err := r.pool.QueryRow(ctx, `SELECT id, name, university, rank FROM club_profiles WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.University, &c.Rank)
	if err != nil {
		return nil, notFound(err, port.ErrClubNotFound)
	}
	return &c, nil
}

func (r *ProfileRepository) ListClubIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM club_profiles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *ProfileRepository) SetClubRank(ctx context.Context, id uuid.UUID, rank domain.Rank) error {
	tag, err := r.pool.Exec(ctx, `UPDATE club_profiles SET rank = $2 WHERE id = $1`, id, rank)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrClubNotFound
	}
	return nil
}

// ReviewRepository implements port.ReviewRepository on PostgreSQL.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// CreateReview relies on the (reviewer_id, campaign_id) unique constraint, so
// two racing inserts cannot both succeed.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev *domain.Review) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO reviews (id, reviewer_id, reviewee_id, campaign_id, rating, comment, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rev.ID, rev.ReviewerID, rev.RevieweeID, rev.CampaignID, rev.Rating, rev.Comment, rev.CreatedAt)
	switch {
	case isUniqueViolation(err):
		return port.ErrDuplicateReview
	case isForeignKeyViolation(err):
		return port.ErrClubNotFound
	}
	return err
}

func (r *ReviewRepository) ListReviewsSince(ctx context.Context, clubID uuid.UUID, since time.Time) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, reviewer_id, reviewee_id, campaign_id, rating, comment, created_at
FROM reviews WHERE reviewee_id = $1 AND created_at >= $2 ORDER BY created_at, id`, clubID, since)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Review, error) {
		var rev domain.Review
		err := row.Scan(&rev.ID, &rev.ReviewerID, &rev.RevieweeID, &rev.CampaignID, &rev.Rating, &rev.Comment, &rev.CreatedAt)
		return rev, err
	})
}
