package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

// ReputationUseCase implements port.ReputationUseCase.
type ReputationUseCase struct {
	common

	reviews   port.ReviewRepository
	profiles  port.ProfileRepository
	campaigns port.CampaignRepository
}

func NewReputationUseCase(
	reviews port.ReviewRepository,
	profiles port.ProfileRepository,
	campaigns port.CampaignRepository,
	opts ...Option,
) *ReputationUseCase {
	return &ReputationUseCase{
		common:    newCommon(opts),
		reviews:   reviews,
		profiles:  profiles,
		campaigns: campaigns,
	}
}

// RecordReview stores the calling company's review of the club it awarded on
// one of its campaigns. A company reviews a campaign once; the store rejects
// the second attempt even when both race. The club's rank is left alone until
// RecomputeRank runs.
func (u *ReputationUseCase) RecordReview(ctx context.Context, caller domain.Caller, in port.RecordReviewInput) (_ *domain.Review, err error) {
	ctx, span := tracer.Start(ctx, "ReputationUseCase.RecordReview", trace.WithAttributes(
		attribute.String("campaign_id", in.CampaignID.String()),
		attribute.String("club_id", in.ClubID.String()),
	))
	defer func() { finish(span, err) }()

	if !caller.IsCompany() {
		return nil, port.ErrNotCompany
	}
	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return nil, port.ErrRatingOutOfRange
	}

	campaign, err := u.campaigns.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.OwnedBy(caller.ProfileID) {
		return nil, port.ErrNotCampaignOwner
	}
	awarded, err := u.campaigns.AwardedApplication(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	if awarded == nil {
		return nil, port.ErrCampaignNotAwarded
	}
	if awarded.ClubID != in.ClubID {
		return nil, port.ErrRevieweeNotAwarded
	}

	review := &domain.Review{
		ID:         uuid.New(),
		ReviewerID: caller.ProfileID,
		RevieweeID: in.ClubID,
		CampaignID: campaign.ID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
		CreatedAt:  u.now().UTC(),
	}
	if err = u.reviews.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	u.publish(ctx, domain.NewEvent(domain.EventReviewRecorded, in.ClubID, review.CreatedAt, map[string]string{
		"review_id":   review.ID.String(),
		"campaign_id": campaign.ID.String(),
		"rating":      fmt.Sprint(review.Rating),
	}))
	return review, nil
}

// RecomputeRank derives the club's rank from the reviews of the year ending
// at now and stores it. The same review set and now always give the same
// rank, so concurrent or repeated runs are harmless.
func (u *ReputationUseCase) RecomputeRank(ctx context.Context, clubID uuid.UUID, now time.Time) (_ domain.Rank, err error) {
	ctx, span := tracer.Start(ctx, "ReputationUseCase.RecomputeRank", trace.WithAttributes(
		attribute.String("club_id", clubID.String()),
	))
	defer func() { finish(span, err) }()

	if _, err = u.profiles.GetClub(ctx, clubID); err != nil {
		return "", err
	}
	reviews, err := u.reviews.ListReviewsSince(ctx, clubID, domain.WindowStart(now))
	if err != nil {
		return "", err
	}
	rank := domain.RankFromReviews(reviews, now)
	if err = u.profiles.SetClubRank(ctx, clubID, rank); err != nil {
		return "", err
	}

	u.metrics.RankComputed(rank)
	span.SetAttributes(attribute.String("rank", string(rank)), attribute.Int("reviews", len(reviews)))
	u.logger.Debug("club rank recomputed",
		slog.String("club_id", clubID.String()),
		slog.String("rank", string(rank)),
		slog.Int("reviews_in_window", len(reviews)),
	)
	return rank, nil
}

// RecomputeAll recomputes the rank of every club. It stops at the first
// failure and returns how many clubs were updated before it.
func (u *ReputationUseCase) RecomputeAll(ctx context.Context, now time.Time) (int, error) {
	ids, err := u.profiles.ListClubIDs(ctx)
	if err != nil {
		return 0, err
	}
	for i, id := range ids {
		if err = ctx.Err(); err != nil {
			return i, err
		}
		if _, err = u.RecomputeRank(ctx, id, now); err != nil {
			return i, fmt.Errorf("recompute club %s: %w", id, err)
		}
	}
	return len(ids), nil
}

func (u *ReputationUseCase) GetClub(ctx context.Context, clubID uuid.UUID) (*domain.ClubProfile, error) {
	return u.profiles.GetClub(ctx, clubID)
}
