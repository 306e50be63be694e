package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

func TestCreateReviewIsUniquePerReviewerAndCampaign(t *testing.T) {
	store := NewStore()
	reviewer, campaign := uuid.New(), uuid.New()

	var (
		wg       sync.WaitGroup
		created  atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.CreateReview(context.Background(), &domain.Review{
				ID:         uuid.New(),
				ReviewerID: reviewer,
				RevieweeID: uuid.New(),
				CampaignID: campaign,
				Rating:     5,
				CreatedAt:  time.Now(),
			})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, port.ErrDuplicateReview):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(19), rejected.Load())
}

func TestAwardApplicationRejectsSiblingsAndPromotesCampaign(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	campaign := &domain.Campaign{ID: uuid.New(), CompanyID: uuid.New(), Status: domain.CampaignOpen}
	require.NoError(t, store.CreateCampaign(ctx, campaign))

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		a := &domain.Application{ID: uuid.New(), CampaignID: campaign.ID, ClubID: uuid.New(), Status: domain.ApplicationPending}
		require.NoError(t, store.CreateApplication(ctx, a))
		ids = append(ids, a.ID)
	}

	require.NoError(t, store.AwardApplication(ctx, campaign.ID, ids[1]))

	apps, err := store.ListApplications(ctx, campaign.ID)
	require.NoError(t, err)
	for _, a := range apps {
		if a.ID == ids[1] {
			assert.Equal(t, domain.ApplicationAwarded, a.Status)
		} else {
			assert.Equal(t, domain.ApplicationNotSelected, a.Status)
		}
	}
	got, err := store.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignInProgress, got.Status)

	err = store.AwardApplication(ctx, campaign.ID, ids[0])
	assert.ErrorIs(t, err, port.ErrCampaignNotOpen)
}

func TestCreateApplicationRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	campaignID, clubID := uuid.New(), uuid.New()

	require.NoError(t, store.CreateApplication(ctx, &domain.Application{ID: uuid.New(), CampaignID: campaignID, ClubID: clubID}))
	err := store.CreateApplication(ctx, &domain.Application{ID: uuid.New(), CampaignID: campaignID, ClubID: clubID})
	assert.ErrorIs(t, err, port.ErrDuplicateApplication)
	assert.ErrorIs(t, err, port.ErrConflict)
}

func TestListReviewsSinceIncludesBoundary(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	club := uuid.New()
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	store.PutReview(domain.Review{ID: uuid.New(), RevieweeID: club, Rating: 5, CreatedAt: since})
	store.PutReview(domain.Review{ID: uuid.New(), RevieweeID: club, Rating: 1, CreatedAt: since.Add(-time.Second)})
	store.PutReview(domain.Review{ID: uuid.New(), RevieweeID: uuid.New(), Rating: 1, CreatedAt: since})

	got, err := store.ListReviewsSince(ctx, club, since)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Rating)
}

func TestSettleTransactionOnlyFromPending(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tx := &domain.Transaction{ID: uuid.New(), Status: domain.TransactionPending}
	require.NoError(t, store.CreateTransaction(ctx, tx))

	require.NoError(t, store.SettleTransaction(ctx, tx.ID, domain.TransactionSuccess))
	assert.ErrorIs(t, store.SettleTransaction(ctx, tx.ID, domain.TransactionFailed), port.ErrTransactionSettled)
}

func TestSettleWithTierIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	companyID := uuid.New()
	store.PutCompany(domain.CompanyProfile{ID: companyID, Tier: domain.TierFree})
	tx := &domain.Transaction{ID: uuid.New(), CompanyID: companyID, Status: domain.TransactionPending}
	require.NoError(t, store.CreateTransaction(ctx, tx))

	// unknown company: the transaction must stay pending
	err := store.SettleWithTier(ctx, tx.ID, uuid.New(), domain.TierPro)
	require.ErrorIs(t, err, port.ErrCompanyNotFound)
	got, err := store.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionPending, got.Status)

	require.NoError(t, store.SettleWithTier(ctx, tx.ID, companyID, domain.TierPro))
	got, err = store.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionSuccess, got.Status)
	company, err := store.GetCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, domain.TierPro, company.Tier)

	assert.ErrorIs(t, store.SettleWithTier(ctx, tx.ID, companyID, domain.TierPro), port.ErrTransactionSettled)
}
