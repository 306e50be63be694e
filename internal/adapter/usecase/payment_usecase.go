package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

const currency = "myr"

// PaymentUseCase implements port.PaymentUseCase. It is the only writer of
// transaction status; the campaign workflow only reads the ledger.
type PaymentUseCase struct {
	common

	ledger    port.LedgerRepository
	campaigns port.CampaignRepository
	processor port.PaymentProcessor
}

func NewPaymentUseCase(
	ledger port.LedgerRepository,
	campaigns port.CampaignRepository,
	processor port.PaymentProcessor,
	opts ...Option,
) *PaymentUseCase {
	return &PaymentUseCase{
		common:    newCommon(opts),
		ledger:    ledger,
		campaigns: campaigns,
		processor: processor,
	}
}

// CreatePaymentIntent opens a pending transaction for the calling company
// and a matching intent at the payment processor. The type defaults to a
// finder's fee.
func (u *PaymentUseCase) CreatePaymentIntent(ctx context.Context, caller domain.Caller, in port.PaymentIntentInput) (_ *port.PaymentIntentResult, err error) {
	ctx, span := tracer.Start(ctx, "PaymentUseCase.CreatePaymentIntent")
	defer func() { finish(span, err) }()

	if !caller.IsCompany() {
		return nil, port.ErrNotCompany
	}
	if in.Type == "" {
		in.Type = domain.TransactionFindersFee
	}
	if !in.Type.Valid() {
		return nil, port.ErrInvalidTransactionType
	}
	if !in.Amount.IsPositive() || !domain.ValidAmount(in.Amount) {
		return nil, port.ErrInvalidAmount
	}
	if in.CampaignID != nil {
		campaign, err := u.campaigns.GetCampaign(ctx, *in.CampaignID)
		if err != nil {
			return nil, err
		}
		if !campaign.OwnedBy(caller.ProfileID) {
			return nil, port.ErrNotCampaignOwner
		}
	}

	intent, err := u.processor.CreateIntent(ctx, in.Amount, currency)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	tx := &domain.Transaction{
		ID:         uuid.New(),
		CompanyID:  caller.ProfileID,
		Amount:     in.Amount,
		Type:       in.Type,
		Status:     domain.TransactionPending,
		CampaignID: in.CampaignID,
		PaymentRef: intent.Ref,
		CreatedAt:  u.now().UTC(),
	}
	if err = u.ledger.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return &port.PaymentIntentResult{Transaction: *tx, ClientSecret: intent.ClientSecret}, nil
}

// ConfirmPayment asks the processor whether the transaction's intent was
// paid and settles the ledger entry accordingly. A successful subscription
// payment of at least domain.ProUpgradeThreshold upgrades the company to Pro.
func (u *PaymentUseCase) ConfirmPayment(ctx context.Context, caller domain.Caller, transactionID uuid.UUID) (_ *domain.Transaction, err error) {
	ctx, span := tracer.Start(ctx, "PaymentUseCase.ConfirmPayment")
	defer func() { finish(span, err) }()

	if !caller.IsCompany() {
		return nil, port.ErrNotCompany
	}
	tx, err := u.ledger.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.CompanyID != caller.ProfileID {
		return nil, port.ErrNotTransactionOwner
	}
	if tx.Status != domain.TransactionPending {
		return nil, port.ErrTransactionSettled
	}

	paid, err := u.processor.Confirm(ctx, tx.PaymentRef)
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	status := domain.TransactionFailed
	if paid {
		status = domain.TransactionSuccess
	}
	upgrade := paid && tx.Type == domain.TransactionSubscription && tx.Amount.GreaterThanOrEqual(domain.ProUpgradeThreshold)
	if upgrade {
		err = u.ledger.SettleWithTier(ctx, tx.ID, tx.CompanyID, domain.TierPro)
	} else {
		err = u.ledger.SettleTransaction(ctx, tx.ID, status)
	}
	if err != nil {
		return nil, err
	}
	tx.Status = status

	u.logger.Info("payment settled",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("company_id", tx.CompanyID.String()),
		slog.String("type", string(tx.Type)),
		slog.String("status", string(status)),
		slog.String("amount", tx.Amount.StringFixed(2)),
	)
	if !paid {
		return tx, nil
	}

	if upgrade {
		u.logger.Info("company upgraded to pro", slog.String("company_id", tx.CompanyID.String()))
	}

	attrs := map[string]string{
		"transaction_id": tx.ID.String(),
		"type":           string(tx.Type),
		"amount":         tx.Amount.StringFixed(2),
	}
	if tx.CampaignID != nil {
		attrs["campaign_id"] = tx.CampaignID.String()
	}
	u.publish(ctx, domain.NewEvent(domain.EventPaymentConfirmed, tx.CompanyID, u.now(), attrs))
	return tx, nil
}

// ListTransactions returns the calling company's ledger, newest first.
func (u *PaymentUseCase) ListTransactions(ctx context.Context, caller domain.Caller) ([]domain.Transaction, error) {
	if !caller.IsCompany() {
		return nil, port.ErrNotCompany
	}
	return u.ledger.ListTransactions(ctx, caller.ProfileID)
}
