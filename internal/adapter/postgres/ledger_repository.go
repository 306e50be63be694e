package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository on PostgreSQL.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const transactionColumns = `id, company_id, amount::text, type, status, campaign_id, payment_ref, created_at`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		tx     domain.Transaction
		amount string
	)
	err := row.Scan(&tx.ID, &tx.CompanyID, &amount, &tx.Type, &tx.Status, &tx.CampaignID, &tx.PaymentRef, &tx.CreatedAt)
	if err != nil {
		return tx, err
	}
	if tx.Amount, err = parseMoney(amount); err != nil {
		return tx, fmt.Errorf("transaction %s amount: %w", tx.ID, err)
	}
	return tx, nil
}

func (r *LedgerRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO transactions (id, company_id, amount, type, status, campaign_id, payment_ref, created_at)
VALUES ($1,$2,$3::numeric,$4,$5,$6,$7,$8)`,
		tx.ID, tx.CompanyID, moneyArg(tx.Amount), tx.Type, tx.Status, tx.CampaignID, tx.PaymentRef, tx.CreatedAt)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: company or campaign", port.ErrNotFound)
	}
	return err
}

func (r *LedgerRepository) GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	tx, err := scanTransaction(r.pool.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, port.ErrTransactionNotFound)
	}
	return &tx, nil
}

func (r *LedgerRepository) SettleTransaction(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE transactions SET status = $2 WHERE id = $1 AND status = 'PENDING'`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if _, err = r.GetTransaction(ctx, id); err != nil {
		return err
	}
	return port.ErrTransactionSettled
}

func (r *LedgerRepository) SettleWithTier(ctx context.Context, id, companyID uuid.UUID, tier domain.Tier) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	tag, err := tx.Exec(ctx, `UPDATE transactions SET status = 'SUCCESS' WHERE id = $1 AND status = 'PENDING'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err = scanTransaction(tx.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)); err != nil {
			return notFound(err, port.ErrTransactionNotFound)
		}
		return port.ErrTransactionSettled
	}
	tag, err = tx.Exec(ctx, `UPDATE company_profiles SET tier = $2 WHERE id = $1`, companyID, tier)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCompanyNotFound
	}
	return nil
}

func (r *LedgerRepository) ListTransactions(ctx context.Context, companyID uuid.UUID) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+transactionColumns+` FROM transactions
WHERE company_id = $1 ORDER BY created_at DESC, id`, companyID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		return scanTransaction(row)
	})
}

func (r *LedgerRepository) HasSuccessfulFindersFee(ctx context.Context, companyID, campaignID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
    SELECT 1 FROM transactions
    WHERE company_id = $1 AND campaign_id = $2 AND type = 'FINDERS_FEE' AND status = 'SUCCESS'
)`, companyID, campaignID).Scan(&ok)
	return ok, err
}
