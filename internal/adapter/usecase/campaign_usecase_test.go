package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
	"unipact/internal/core/port/mocks"
)

// TestAwardAfterFindersFee walks a free-tier company through the whole
// award path: blocked until the finder's fee settles, then allowed.
func TestAwardAfterFindersFee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierFree, nil)

	campaign := f.createCampaign(t)
	assert.Equal(t, domain.CampaignOpen, campaign.Status)
	assert.True(t, campaign.Budget.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, []string{"logo on banner", "post-event report"}, campaign.Requirements)

	app := f.apply(t, campaign.ID, f.club)
	assert.Equal(t, domain.ApplicationPending, app.Status)

	_, err := f.svc.AwardApplication(ctx, f.company, app.ID)
	require.ErrorIs(t, err, port.ErrPaymentRequired)
	assert.ErrorIs(t, err, port.ErrConflict)

	f.payFindersFee(t, campaign.ID)

	awarded, err := f.svc.AwardApplication(ctx, f.company, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationAwarded, awarded.Status)

	stored, err := f.store.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignInProgress, stored.Status)
}

func TestAwardPendingFeeStillBlocks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierFree, nil)
	campaign := f.createCampaign(t)
	app := f.apply(t, campaign.ID, f.club)

	require.NoError(t, f.store.CreateTransaction(ctx, &domain.Transaction{
		ID:         uuid.New(),
		CompanyID:  f.company.ProfileID,
		Amount:     decimal.NewFromInt(100),
		Type:       domain.TransactionFindersFee,
		Status:     domain.TransactionPending,
		CampaignID: &campaign.ID,
	}))

	_, err := f.svc.AwardApplication(ctx, f.company, app.ID)
	assert.ErrorIs(t, err, port.ErrPaymentRequired)
}

func TestAwardRejectsSiblings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	campaign := f.createCampaign(t)

	winner := f.apply(t, campaign.ID, f.club)
	for i := 0; i < 4; i++ {
		f.apply(t, campaign.ID, newClub(f.store))
	}

	_, err := f.svc.AwardApplication(ctx, f.company, winner.ID)
	require.NoError(t, err)

	apps, err := f.store.ListApplications(ctx, campaign.ID)
	require.NoError(t, err)
	require.Len(t, apps, 5)
	for _, a := range apps {
		if a.ID == winner.ID {
			assert.Equal(t, domain.ApplicationAwarded, a.Status)
			continue
		}
		assert.Equal(t, domain.ApplicationNotSelected, a.Status)
	}
}

func TestConcurrentAwardsAtMostOneSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	campaign := f.createCampaign(t)

	apps := make([]*domain.Application, 10)
	for i := range apps {
		apps[i] = f.apply(t, campaign.ID, newClub(f.store))
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		notOpens int
	)
	wg.Add(len(apps))
	for _, app := range apps {
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := f.svc.AwardApplication(ctx, f.company, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, port.ErrCampaignNotOpen):
				notOpens++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(app.ID)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, len(apps)-1, notOpens)

	stored, err := f.store.ListApplications(ctx, campaign.ID)
	require.NoError(t, err)
	awarded := 0
	for _, a := range stored {
		if a.Status == domain.ApplicationAwarded {
			awarded++
		} else {
			assert.Equal(t, domain.ApplicationNotSelected, a.Status)
		}
	}
	assert.Equal(t, 1, awarded)
}

func TestAwardChecksOwnershipFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierFree, nil)
	campaign := f.createCampaign(t)
	app := f.apply(t, campaign.ID, f.club)

	// an unpaid stranger must hear about ownership, not payment
	stranger := newCompany(f.store, domain.TierFree, domain.VerificationVerified)
	_, err := f.svc.AwardApplication(ctx, stranger, app.ID)
	assert.ErrorIs(t, err, port.ErrNotCampaignOwner)
	assert.ErrorIs(t, err, port.ErrForbidden)

	_, err = f.svc.AwardApplication(ctx, f.club, app.ID)
	assert.ErrorIs(t, err, port.ErrForbidden)
}

func TestAwardChecksGateBeforeCampaignState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierFree, nil)
	campaign := f.createCampaign(t)
	app := f.apply(t, campaign.ID, f.club)
	require.NoError(t, f.store.TransitionCampaign(ctx, campaign.ID, domain.CampaignOpen, domain.CampaignArchived))

	_, err := f.svc.AwardApplication(ctx, f.company, app.ID)
	assert.ErrorIs(t, err, port.ErrPaymentRequired)

	f.payFindersFee(t, campaign.ID)
	_, err = f.svc.AwardApplication(ctx, f.company, app.ID)
	assert.ErrorIs(t, err, port.ErrCampaignNotOpen)
	assert.ErrorIs(t, err, port.ErrInvalidState)
}

func TestSubmitApplicationRules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	campaign := f.createCampaign(t)

	app := f.apply(t, campaign.ID, f.club)

	_, err := f.svc.SubmitApplication(ctx, f.club, campaign.ID, "again")
	assert.ErrorIs(t, err, port.ErrDuplicateApplication)

	_, err = f.svc.SubmitApplication(ctx, f.company, campaign.ID, "not a club")
	assert.ErrorIs(t, err, port.ErrNotClub)

	_, err = f.svc.AwardApplication(ctx, f.company, app.ID)
	require.NoError(t, err)

	// once awarded the campaign no longer accepts anyone, repeat applicants included
	_, err = f.svc.SubmitApplication(ctx, f.club, campaign.ID, "third time")
	assert.ErrorIs(t, err, port.ErrConflict)
	_, err = f.svc.SubmitApplication(ctx, newClub(f.store), campaign.ID, "late")
	assert.ErrorIs(t, err, port.ErrCampaignNotAccepting)
}

func TestCreateCampaignPreconditions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierFree, nil)
	valid := port.CreateCampaignInput{
		Title:       "Title",
		Description: "Description",
		Type:        domain.CampaignBrandAmbassador,
		Budget:      decimal.RequireFromString("10.50"),
	}

	risky := newCompany(f.store, domain.TierFree, domain.VerificationHighRisk)
	_, err := f.svc.CreateCampaign(ctx, risky, valid)
	assert.ErrorIs(t, err, port.ErrHighRiskCompany)

	_, err = f.svc.CreateCampaign(ctx, f.club, valid)
	assert.ErrorIs(t, err, port.ErrNotCompany)

	bad := valid
	bad.Budget = decimal.RequireFromString("10.505")
	_, err = f.svc.CreateCampaign(ctx, f.company, bad)
	assert.ErrorIs(t, err, port.ErrInvalidBudget)

	bad = valid
	bad.Budget = decimal.RequireFromString("10000000000")
	_, err = f.svc.CreateCampaign(ctx, f.company, bad)
	assert.ErrorIs(t, err, port.ErrInvalidBudget)

	bad = valid
	bad.Budget = decimal.NewFromInt(-1)
	_, err = f.svc.CreateCampaign(ctx, f.company, bad)
	assert.ErrorIs(t, err, port.ErrInvalidArgument)

	bad = valid
	bad.Type = "RAFFLE"
	_, err = f.svc.CreateCampaign(ctx, f.company, bad)
	assert.ErrorIs(t, err, port.ErrInvalidCampaignInput)

	pending := newCompany(f.store, domain.TierFree, domain.VerificationPendingReview)
	c, err := f.svc.CreateCampaign(ctx, pending, valid)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignOpen, c.Status)
}

func TestDraftCampaignPublishFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	draft, err := f.svc.CreateCampaign(ctx, f.company, port.CreateCampaignInput{
		Title:       "Draft",
		Description: "Not ready yet",
		Type:        domain.CampaignTalentBounty,
		Budget:      decimal.Zero,
		Draft:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignDraft, draft.Status)

	_, err = f.svc.SubmitApplication(ctx, f.club, draft.ID, "early bird")
	assert.ErrorIs(t, err, port.ErrCampaignNotAccepting)

	_, err = f.svc.GetCampaign(ctx, f.club, draft.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	published, err := f.svc.PublishCampaign(ctx, f.company, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignOpen, published.Status)

	_, err = f.svc.PublishCampaign(ctx, f.company, draft.ID)
	assert.ErrorIs(t, err, port.ErrCampaignNotDraft)
}

func TestArchiveCampaign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	campaign := f.createCampaign(t)

	stranger := newCompany(f.store, domain.TierPro, domain.VerificationVerified)
	_, err := f.svc.ArchiveCampaign(ctx, stranger, campaign.ID)
	assert.ErrorIs(t, err, port.ErrNotCampaignOwner)

	_, err = f.svc.ArchiveCampaign(ctx, f.club, campaign.ID)
	assert.ErrorIs(t, err, port.ErrForbidden)

	admin := domain.Caller{UserID: uuid.New(), Role: domain.RoleAdmin}
	archived, err := f.svc.ArchiveCampaign(ctx, admin, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignArchived, archived.Status)

	_, err = f.svc.ArchiveCampaign(ctx, f.company, campaign.ID)
	assert.ErrorIs(t, err, port.ErrCampaignTerminal)
}

func TestCompleteCampaignTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	campaign := f.createCampaign(t)
	app := f.apply(t, campaign.ID, f.club)

	_, err := f.svc.CompleteCampaign(ctx, f.company, campaign.ID)
	assert.ErrorIs(t, err, port.ErrCampaignNotInProgress)

	_, err = f.svc.AwardApplication(ctx, f.company, app.ID)
	require.NoError(t, err)

	res, err := f.svc.CompleteCampaign(ctx, f.company, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, res.Campaign.Status)
	require.NotNil(t, res.ReportURL)
	assert.True(t, strings.HasSuffix(*res.ReportURL, campaign.ID.String()+".pdf"))

	report, err := f.svc.GetReport(ctx, f.company, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, *res.ReportURL, report.URL)

	_, err = f.svc.CompleteCampaign(ctx, f.company, campaign.ID)
	assert.ErrorIs(t, err, port.ErrCampaignNotInProgress)
	assert.ErrorIs(t, err, port.ErrInvalidState)
}

func TestCompleteCampaignSurvivesReportFailure(t *testing.T) {
	ctx := context.Background()
	reports := mocks.NewMockReportGenerator(t)
	f := newFixture(t, domain.TierPro, reports)
	campaign := f.createCampaign(t)
	app := f.apply(t, campaign.ID, f.club)
	_, err := f.svc.AwardApplication(ctx, f.company, app.ID)
	require.NoError(t, err)

	reports.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("port.ReportInput")).
		Run(func(_ context.Context, in port.ReportInput) {
			assert.Equal(t, campaign.ID, in.Campaign.ID)
			require.NotNil(t, in.Awarded)
			assert.Equal(t, app.ID, in.Awarded.ID)
			require.NotNil(t, in.Club)
			assert.Equal(t, f.club.ProfileID, in.Club.ID)
		}).
		Return("", errors.New("renderer down"))

	res, err := f.svc.CompleteCampaign(ctx, f.company, campaign.ID)
	require.NoError(t, err)
	assert.Nil(t, res.ReportURL)

	stored, err := f.store.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, stored.Status)

	_, err = f.svc.GetReport(ctx, f.company, campaign.ID)
	assert.ErrorIs(t, err, port.ErrReportNotFound)
}

func TestCompleteCampaignRequiresOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	campaign := f.createCampaign(t)

	stranger := newCompany(f.store, domain.TierPro, domain.VerificationVerified)
	_, err := f.svc.CompleteCampaign(ctx, stranger, campaign.ID)
	assert.ErrorIs(t, err, port.ErrNotCampaignOwner)
}

func TestSubmitDeliverable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	campaign := f.createCampaign(t)
	app := f.apply(t, campaign.ID, f.club)
	upload := func() port.FileUpload {
		return port.FileUpload{Name: "../../etc/recap.pdf", ContentType: "application/pdf", Body: strings.NewReader("%PDF-1.4")}
	}

	_, err := f.svc.SubmitDeliverable(ctx, f.club, app.ID, upload())
	assert.ErrorIs(t, err, port.ErrApplicationNotAwarded)
	assert.ErrorIs(t, err, port.ErrForbidden)

	_, err = f.svc.AwardApplication(ctx, f.company, app.ID)
	require.NoError(t, err)

	_, err = f.svc.SubmitDeliverable(ctx, newClub(f.store), app.ID, upload())
	assert.ErrorIs(t, err, port.ErrNotApplicationOwner)

	d, err := f.svc.SubmitDeliverable(ctx, f.club, app.ID, upload())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(d.FileRef, "memory://deliverables/"+app.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(d.FileRef, "-recap.pdf"))
	assert.Equal(t, 1, f.files.Len())

	// no automatic completion
	stored, err := f.store.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignInProgress, stored.Status)

	list, err := f.svc.ListDeliverables(ctx, f.company, app.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListCampaignsScopesByRole(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.TierPro, nil)
	f.createCampaign(t)
	other := newCompany(f.store, domain.TierPro, domain.VerificationVerified)
	_, err := f.svc.CreateCampaign(ctx, other, port.CreateCampaignInput{
		Title: "Other", Description: "Other", Type: domain.CampaignTalentBounty, Budget: decimal.NewFromInt(1), Draft: true,
	})
	require.NoError(t, err)

	mine, err := f.svc.ListCampaigns(ctx, f.company, port.CampaignFilter{})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	open, err := f.svc.ListCampaigns(ctx, f.club, port.CampaignFilter{Status: domain.CampaignDraft})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, domain.CampaignOpen, open[0].Status)

	_, err = f.svc.ListCampaigns(ctx, f.club, port.CampaignFilter{Status: "NOPE"})
	assert.ErrorIs(t, err, port.ErrInvalidArgument)
}
