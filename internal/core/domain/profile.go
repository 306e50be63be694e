package domain

import "github.com/google/uuid"

type Tier string

const (
	TierFree Tier = "FREE"
	TierPro  Tier = "PRO"
)

func (t Tier) Valid() bool {
	return t == TierFree || t == TierPro
}

type VerificationStatus string

const (
	VerificationPendingReview VerificationStatus = "PENDING_REVIEW"
	VerificationHighRisk      VerificationStatus = "HIGH_RISK"
	VerificationVerified      VerificationStatus = "VERIFIED"
	VerificationRejected      VerificationStatus = "REJECTED"
)

func (v VerificationStatus) Valid() bool {
	switch v {
	case VerificationPendingReview, VerificationHighRisk, VerificationVerified, VerificationRejected:
		return true
	default:
		return false
	}
}

// CompanyProfile is the sponsor side of the marketplace. Tier gates the
// award transition and VerificationStatus gates campaign creation.
type CompanyProfile struct {
	ID                 uuid.UUID
	Name               string
	Tier               Tier
	VerificationStatus VerificationStatus
}

// ClubProfile is a student organization. Rank is derived by the reputation
// engine and never set by anything else.
type ClubProfile struct {
	ID         uuid.UUID
	Name       string
	University string
	Rank       Rank
}
