package usecase

import (
	"context"

	"github.com/google/uuid"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

// CanAward is the monetization gate. Pro companies may always award. Free
// companies may award on a campaign only once the ledger holds a successful
// finder's fee for it; the amount is not checked.
//
// The ledger is read on every call. Payments settle asynchronously, so a
// decision must never be reused between award attempts.
func CanAward(ctx context.Context, tier domain.Tier, companyID, campaignID uuid.UUID, ledger port.LedgerRepository) (bool, error) {
	if tier == domain.TierPro {
		return true, nil
	}
	return ledger.HasSuccessfulFindersFee(ctx, companyID, campaignID)
}
