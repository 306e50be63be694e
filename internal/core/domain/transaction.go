package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionFindersFee   TransactionType = "FINDERS_FEE"
	TransactionSubscription TransactionType = "SUBSCRIPTION"
)

func (t TransactionType) Valid() bool {
	return t == TransactionFindersFee || t == TransactionSubscription
}

type TransactionStatus string

const (
	TransactionPending TransactionStatus = "PENDING"
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionFailed  TransactionStatus = "FAILED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionSuccess, TransactionFailed:
		return true
	default:
		return false
	}
}

// Transaction is a ledger entry. It is created Pending and settled to Success
// or Failed only by the payment collaborator.
type Transaction struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	Amount     decimal.Decimal
	Type       TransactionType
	Status     TransactionStatus
	CampaignID *uuid.UUID
	PaymentRef string
	CreatedAt  time.Time
}
