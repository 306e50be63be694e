package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
	"unipact/internal/db"
)

// testPool connects to the database named by PSQL_TEST_ADDRESS and migrates
// it. Tests using it are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func insertCompany(t *testing.T, pool *pgxpool.Pool, tier domain.Tier) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO company_profiles (id, name, tier, verification_status) VALUES ($1, 'Acme Test', $2, 'VERIFIED')`, id, tier)
	require.NoError(t, err)
	return id
}

func insertClub(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(), `INSERT INTO club_profiles (id, name) VALUES ($1, 'Test Club')`, id)
	require.NoError(t, err)
	return id
}

func TestAwardApplicationConcurrent(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewCampaignRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	campaign := &domain.Campaign{
		ID:          uuid.New(),
		CompanyID:   insertCompany(t, pool, domain.TierPro),
		Title:       "Race",
		Description: "concurrent awards",
		Type:        domain.CampaignTalentBounty,
		Budget:      decimal.NewFromInt(100),
		Status:      domain.CampaignOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.CreateCampaign(ctx, campaign))

	const n = 8
	apps := make([]uuid.UUID, n)
	for i := range apps {
		a := &domain.Application{
			ID:          uuid.New(),
			CampaignID:  campaign.ID,
			ClubID:      insertClub(t, pool),
			Status:      domain.ApplicationPending,
			SubmittedAt: now,
		}
		require.NoError(t, repo.CreateApplication(ctx, a))
		apps[i] = a.ID
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
		errs []error
	)
	for _, id := range apps {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			err := repo.AwardApplication(ctx, campaign.ID, id)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
				return
			}
			errs = append(errs, err)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	for _, err := range errs {
		assert.ErrorIs(t, err, port.ErrCampaignNotOpen)
	}

	got, err := repo.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignInProgress, got.Status)

	list, err := repo.ListApplications(ctx, campaign.ID)
	require.NoError(t, err)
	awarded := 0
	for _, a := range list {
		if a.Status == domain.ApplicationAwarded {
			awarded++
		} else {
			assert.Equal(t, domain.ApplicationNotSelected, a.Status)
		}
	}
	assert.Equal(t, 1, awarded)
}

func TestSettleWithTierRollsBack(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	ledger := NewLedgerRepository(pool)
	profiles := NewProfileRepository(pool)
	companyID := insertCompany(t, pool, domain.TierFree)

	tx := &domain.Transaction{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Amount:     decimal.NewFromInt(499),
		Type:       domain.TransactionSubscription,
		Status:     domain.TransactionPending,
		PaymentRef: "pi_test",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, ledger.CreateTransaction(ctx, tx))

	err := ledger.SettleWithTier(ctx, tx.ID, uuid.New(), domain.TierPro)
	require.ErrorIs(t, err, port.ErrCompanyNotFound)
	got, err := ledger.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionPending, got.Status)

	require.NoError(t, ledger.SettleWithTier(ctx, tx.ID, companyID, domain.TierPro))
	got, err = ledger.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionSuccess, got.Status)
	company, err := profiles.GetCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, domain.TierPro, company.Tier)

	assert.ErrorIs(t, ledger.SettleWithTier(ctx, tx.ID, companyID, domain.TierPro), port.ErrTransactionSettled)
}
