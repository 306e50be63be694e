package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rank is a club's tiered reputation.
type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
)

func (r Rank) Valid() bool {
	switch r {
	case RankS, RankA, RankB, RankC:
		return true
	default:
		return false
	}
}

// ReputationWindow is how far back reviews count towards a rank.
const ReputationWindow = 365 * 24 * time.Hour

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a company's rating of the club it worked with on a campaign.
// Reviews are immutable; there is one per (reviewer, campaign).
type Review struct {
	ID         uuid.UUID
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	CampaignID uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// WindowStart returns the oldest creation time still inside the window
// ending at now. The boundary itself is inside.
func WindowStart(now time.Time) time.Time {
	return now.Add(-ReputationWindow)
}

// RankFromReviews maps the mean rating of the reviews created inside the
// window ending at now onto a rank. Reviews outside the window are ignored.
//
// The mean is compared through the integer sum so the result does not depend
// on floating point rounding or on the order of reviews.
func RankFromReviews(reviews []Review, now time.Time) Rank {
	start := WindowStart(now)
	var sum, n int
	for _, r := range reviews {
		if r.CreatedAt.Before(start) {
			continue
		}
		sum += r.Rating
		n++
	}
	switch {
	case n == 0:
		return RankC
	case 2*sum >= 9*n: // mean >= 4.5
		return RankS
	case sum >= 4*n:
		return RankA
	case sum >= 3*n:
		return RankB
	default:
		return RankC
	}
}
