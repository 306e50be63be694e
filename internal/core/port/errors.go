package port

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a use case that is the caller's fault
// wraps exactly one of these, so adapters classify with errors.Is.
var (
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")

	// ErrPaymentRequired is the conflict raised when the monetization gate
	// refuses an award. Clients branch on CodePaymentRequired.
	ErrPaymentRequired = fmt.Errorf("%w: payment required", ErrConflict)
)

// CodePaymentRequired is the machine-readable code attached to
// ErrPaymentRequired responses.
const CodePaymentRequired = "payment_required"

var (
	ErrNotCompany             = fmt.Errorf("%w: only companies can perform this action", ErrForbidden)
	ErrNotClub                = fmt.Errorf("%w: only clubs can perform this action", ErrForbidden)
	ErrHighRiskCompany        = fmt.Errorf("%w: company is under review and cannot post campaigns", ErrForbidden)
	ErrNotCampaignOwner       = fmt.Errorf("%w: you do not own this campaign", ErrForbidden)
	ErrNotApplicationOwner    = fmt.Errorf("%w: you do not own this application", ErrForbidden)
	ErrApplicationNotAwarded  = fmt.Errorf("%w: deliverables can only be uploaded for awarded applications", ErrForbidden)
	ErrNotTransactionOwner    = fmt.Errorf("%w: you do not own this transaction", ErrForbidden)
	ErrCampaignNotAccepting   = fmt.Errorf("%w: campaign not accepting applications", ErrConflict)
	ErrDuplicateApplication   = fmt.Errorf("%w: duplicate application", ErrConflict)
	ErrDuplicateReview        = fmt.Errorf("%w: campaign already reviewed", ErrConflict)
	ErrCampaignNotOpen        = fmt.Errorf("%w: campaign must be open to award", ErrInvalidState)
	ErrCampaignNotInProgress  = fmt.Errorf("%w: campaign must be in progress to complete", ErrInvalidState)
	ErrCampaignNotDraft       = fmt.Errorf("%w: campaign must be a draft to publish", ErrInvalidState)
	ErrCampaignTerminal       = fmt.Errorf("%w: campaign is completed or archived", ErrInvalidState)
	ErrCampaignNotAwarded     = fmt.Errorf("%w: campaign has no awarded application", ErrInvalidState)
	ErrTransactionSettled     = fmt.Errorf("%w: transaction already settled", ErrInvalidState)
	ErrStatusChanged          = fmt.Errorf("%w: campaign status changed concurrently", ErrInvalidState)
	ErrRatingOutOfRange       = fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidArgument)
	ErrInvalidBudget          = fmt.Errorf("%w: budget must be non-negative, at most 9999999999.99, with at most two decimals", ErrInvalidArgument)
	ErrInvalidAmount          = fmt.Errorf("%w: amount must be positive, at most 9999999999.99, with at most two decimals", ErrInvalidArgument)
	ErrInvalidCampaignInput   = fmt.Errorf("%w: invalid campaign input", ErrInvalidArgument)
	ErrInvalidTransactionType = fmt.Errorf("%w: unknown transaction type", ErrInvalidArgument)
	ErrRevieweeNotAwarded     = fmt.Errorf("%w: club was not awarded this campaign", ErrInvalidArgument)
	ErrCampaignNotFound       = fmt.Errorf("%w: campaign", ErrNotFound)
	ErrApplicationNotFound    = fmt.Errorf("%w: application", ErrNotFound)
	ErrCompanyNotFound        = fmt.Errorf("%w: company", ErrNotFound)
	ErrClubNotFound           = fmt.Errorf("%w: club", ErrNotFound)
	ErrTransactionNotFound    = fmt.Errorf("%w: transaction", ErrNotFound)
	ErrReportNotFound         = fmt.Errorf("%w: report", ErrNotFound)
)
