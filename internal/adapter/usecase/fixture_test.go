package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"unipact/internal/adapter/memory"
	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// stubReports renders nothing and returns a predictable reference.
type stubReports struct{}

func (stubReports) Generate(_ context.Context, in port.ReportInput) (string, error) {
	return fmt.Sprintf("memory://reports/%s.pdf", in.Campaign.ID), nil
}

type fixture struct {
	store *memory.Store
	files *memory.Files
	svc   *CampaignUseCase

	company domain.Caller
	club    domain.Caller
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFixture(t *testing.T, tier domain.Tier, reports port.ReportGenerator) *fixture {
	t.Helper()
	if reports == nil {
		reports = stubReports{}
	}
	store := memory.NewStore()
	files := memory.NewFiles()

	f := &fixture{
		store:   store,
		files:   files,
		company: newCompany(store, tier, domain.VerificationVerified),
		club:    newClub(store),
	}
	f.svc = NewCampaignUseCase(store, store, store, files, reports,
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return testNow }),
	)
	return f
}

func newCompany(store *memory.Store, tier domain.Tier, status domain.VerificationStatus) domain.Caller {
	id := uuid.New()
	store.PutCompany(domain.CompanyProfile{ID: id, Name: "Acme " + id.String()[:4], Tier: tier, VerificationStatus: status})
	return domain.Caller{UserID: uuid.New(), Role: domain.RoleCompany, ProfileID: id}
}

func newClub(store *memory.Store) domain.Caller {
	id := uuid.New()
	store.PutClub(domain.ClubProfile{ID: id, Name: "Robotics " + id.String()[:4], University: "UM"})
	return domain.Caller{UserID: uuid.New(), Role: domain.RoleClub, ProfileID: id}
}

func (f *fixture) createCampaign(t *testing.T) *domain.Campaign {
	t.Helper()
	c, err := f.svc.CreateCampaign(context.Background(), f.company, port.CreateCampaignInput{
		Title:        "Hackathon sponsor",
		Description:  "Run a weekend hackathon with our API",
		Type:         domain.CampaignTalentBounty,
		Budget:       decimal.NewFromInt(500),
		Requirements: []string{"logo on banner", " ", "post-event report"},
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) apply(t *testing.T, campaignID uuid.UUID, club domain.Caller) *domain.Application {
	t.Helper()
	app, err := f.svc.SubmitApplication(context.Background(), club, campaignID, "pick us")
	require.NoError(t, err)
	return app
}

func (f *fixture) payFindersFee(t *testing.T, campaignID uuid.UUID) {
	t.Helper()
	require.NoError(t, f.store.CreateTransaction(context.Background(), &domain.Transaction{
		ID:         uuid.New(),
		CompanyID:  f.company.ProfileID,
		Amount:     decimal.NewFromInt(100),
		Type:       domain.TransactionFindersFee,
		Status:     domain.TransactionSuccess,
		CampaignID: &campaignID,
		CreatedAt:  testNow,
	}))
}
