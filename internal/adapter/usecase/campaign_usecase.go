package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

const (
	maxTitleLen     = 255
	defaultPageSize = 50
	maxPageSize     = 100
)

// CampaignUseCase implements port.CampaignUseCase. It owns the campaign state
// machine and consults the monetization gate before every award.
type CampaignUseCase struct {
	common

	repo     port.CampaignRepository
	profiles port.ProfileRepository
	ledger   port.LedgerRepository
	files    port.FileStorage
	reports  port.ReportGenerator
}

// NewCampaignUseCase wires the workflow to its repositories and
// collaborators.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	profiles port.ProfileRepository,
	ledger port.LedgerRepository,
	files port.FileStorage,
	reports port.ReportGenerator,
	opts ...Option,
) *CampaignUseCase {
	return &CampaignUseCase{
		common:   newCommon(opts),
		repo:     repo,
		profiles: profiles,
		ledger:   ledger,
		files:    files,
		reports:  reports,
	}
}

// CreateCampaign posts a campaign for the calling company. Companies flagged
// high risk cannot post.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, caller domain.Caller, in port.CreateCampaignInput) (_ *domain.Campaign, err error) {
	ctx, span := tracer.Start(ctx, "CampaignUseCase.CreateCampaign")
	defer func() { finish(span, err) }()

	if !caller.IsCompany() {
		return nil, port.ErrNotCompany
	}
	company, err := u.profiles.GetCompany(ctx, caller.ProfileID)
	if err != nil {
		return nil, err
	}
	if company.VerificationStatus == domain.VerificationHighRisk {
		return nil, port.ErrHighRiskCompany
	}

	campaign, err := u.buildCampaign(company.ID, in)
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	u.metrics.Transition("create")
	u.logger.Info("campaign created",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("company_id", company.ID.String()),
		slog.String("status", string(campaign.Status)),
	)
	return campaign, nil
}

func (u *CampaignUseCase) buildCampaign(companyID uuid.UUID, in port.CreateCampaignInput) (*domain.Campaign, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || len(title) > maxTitleLen || description == "" || !in.Type.Valid() {
		return nil, port.ErrInvalidCampaignInput
	}
	if !domain.ValidAmount(in.Budget) {
		return nil, port.ErrInvalidBudget
	}

	requirements := make([]string, 0, len(in.Requirements))
	for _, r := range in.Requirements {
		if r = strings.TrimSpace(r); r != "" {
			requirements = append(requirements, r)
		}
	}

	var deadline *time.Time
	if in.Deadline != nil {
		d := in.Deadline.UTC().Truncate(24 * time.Hour)
		deadline = &d
	}

	status := domain.CampaignOpen
	if in.Draft {
		status = domain.CampaignDraft
	}
	now := u.now().UTC()
	return &domain.Campaign{
		ID:           uuid.New(),
		CompanyID:    companyID,
		Title:        title,
		Description:  description,
		Type:         in.Type,
		Budget:       in.Budget.Round(2),
		Requirements: requirements,
		Deadline:     deadline,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// PublishCampaign moves the caller's draft campaign to Open.
func (u *CampaignUseCase) PublishCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (_ *domain.Campaign, err error) {
	ctx, span := tracer.Start(ctx, "CampaignUseCase.PublishCampaign", trace.WithAttributes(
		attribute.String("campaign_id", campaignID.String()),
	))
	defer func() { finish(span, err) }()

	campaign, err := u.ownedCampaign(ctx, caller, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignDraft {
		return nil, port.ErrCampaignNotDraft
	}
	if err = u.repo.TransitionCampaign(ctx, campaign.ID, domain.CampaignDraft, domain.CampaignOpen); err != nil {
		if errors.Is(err, port.ErrStatusChanged) {
			return nil, port.ErrCampaignNotDraft
		}
		return nil, err
	}
	campaign.Status = domain.CampaignOpen
	u.metrics.Transition("publish")
	return campaign, nil
}

// ArchiveCampaign takes a non-terminal campaign out of the active listings.
// The owning company or an admin may do so; there are no other side effects.
func (u *CampaignUseCase) ArchiveCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (_ *domain.Campaign, err error) {
	ctx, span := tracer.Start(ctx, "CampaignUseCase.ArchiveCampaign", trace.WithAttributes(
		attribute.String("campaign_id", campaignID.String()),
	))
	defer func() { finish(span, err) }()

	if !caller.IsCompany() && !caller.IsAdmin() {
		return nil, port.ErrForbidden
	}
	campaign, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if caller.IsCompany() && !campaign.OwnedBy(caller.ProfileID) {
		return nil, port.ErrNotCampaignOwner
	}
	if !campaign.Status.CanTransition(domain.CampaignArchived) {
		return nil, port.ErrCampaignTerminal
	}
	if err = u.repo.TransitionCampaign(ctx, campaign.ID, campaign.Status, domain.CampaignArchived); err != nil {
		return nil, err
	}
	campaign.Status = domain.CampaignArchived
	u.metrics.Transition("archive")
	u.logger.Info("campaign archived",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("by_role", string(caller.Role)),
	)
	return campaign, nil
}

// GetCampaign returns a campaign. Drafts are only visible to their owner and
// admins, and so are the applications.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (*port.CampaignDetail, error) {
	campaign, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	privileged := caller.IsAdmin() || (caller.IsCompany() && campaign.OwnedBy(caller.ProfileID))
	if campaign.Status == domain.CampaignDraft && !privileged {
		return nil, port.ErrCampaignNotFound
	}

	detail := &port.CampaignDetail{Campaign: *campaign}
	if privileged {
		if detail.Applications, err = u.repo.ListApplications(ctx, campaign.ID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// ListCampaigns lists campaigns visible to the caller. Companies see their
// own campaigns; clubs browse open ones unless they ask for another
// non-draft status.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, caller domain.Caller, filter port.CampaignFilter) ([]domain.Campaign, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, port.ErrInvalidArgument
	}
	if filter.Offset < 0 || filter.Limit < 0 {
		return nil, port.ErrInvalidArgument
	}
	if filter.Limit == 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	switch caller.Role {
	case domain.RoleCompany:
		id := caller.ProfileID
		filter.CompanyID = &id
	case domain.RoleClub:
		filter.CompanyID = nil
		if filter.Status == "" || filter.Status == domain.CampaignDraft {
			filter.Status = domain.CampaignOpen
		}
	}
	return u.repo.ListCampaigns(ctx, filter)
}

// SubmitApplication records a pending bid of the calling club. The campaign
// must be open and the club must not have applied before; the second rule is
// enforced by the store.
func (u *CampaignUseCase) SubmitApplication(ctx context.Context, caller domain.Caller, campaignID uuid.UUID, message string) (_ *domain.Application, err error) {
	ctx, span := tracer.Start(ctx, "CampaignUseCase.SubmitApplication", trace.WithAttributes(
		attribute.String("campaign_id", campaignID.String()),
	))
	defer func() { finish(span, err) }()

	if !caller.IsClub() {
		return nil, port.ErrNotClub
	}
	campaign, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignOpen {
		return nil, port.ErrCampaignNotAccepting
	}

	app := &domain.Application{
		ID:          uuid.New(),
		CampaignID:  campaign.ID,
		ClubID:      caller.ProfileID,
		Message:     strings.TrimSpace(message),
		Status:      domain.ApplicationPending,
		SubmittedAt: u.now().UTC(),
	}
	if err = u.repo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	u.publish(ctx, domain.NewEvent(domain.EventApplicationSubmitted, campaign.ID, app.SubmittedAt, map[string]string{
		"application_id": app.ID.String(),
		"club_id":        app.ClubID.String(),
		"company_id":     campaign.CompanyID.String(),
	}))
	return app, nil
}

// ListMyApplications returns the calling club's applications.
func (u *CampaignUseCase) ListMyApplications(ctx context.Context, caller domain.Caller) ([]domain.Application, error) {
	if !caller.IsClub() {
		return nil, port.ErrNotClub
	}
	return u.repo.ListApplicationsByClub(ctx, caller.ProfileID)
}

// AwardApplication selects the winning application of a campaign.
//
// Preconditions are checked in a fixed order: the caller owns the campaign,
// the monetization gate passes, the campaign is open. The award itself is a
// single atomic store operation that re-checks the campaign under lock, so at
// most one award per campaign ever succeeds.
func (u *CampaignUseCase) AwardApplication(ctx context.Context, caller domain.Caller, applicationID uuid.UUID) (_ *domain.Application, err error) {
	ctx, span := tracer.Start(ctx, "CampaignUseCase.AwardApplication", trace.WithAttributes(
		attribute.String("application_id", applicationID.String()),
	))
	defer func() { finish(span, err) }()

	if !caller.IsCompany() {
		return nil, port.ErrNotCompany
	}
	app, err := u.repo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	campaign, err := u.repo.GetCampaign(ctx, app.CampaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.OwnedBy(caller.ProfileID) {
		return nil, port.ErrNotCampaignOwner
	}

	company, err := u.profiles.GetCompany(ctx, caller.ProfileID)
	if err != nil {
		return nil, err
	}
	allowed, err := CanAward(ctx, company.Tier, company.ID, campaign.ID, u.ledger)
	if err != nil {
		return nil, fmt.Errorf("monetization gate: %w", err)
	}
	if !allowed {
		u.metrics.GateDenied()
		u.logger.Info("award blocked by monetization gate",
			slog.String("campaign_id", campaign.ID.String()),
			slog.String("company_id", company.ID.String()),
		)
		return nil, port.ErrPaymentRequired
	}

	if campaign.Status != domain.CampaignOpen {
		return nil, port.ErrCampaignNotOpen
	}
	if err = u.repo.AwardApplication(ctx, campaign.ID, app.ID); err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationAwarded

	u.metrics.Transition("award")
	u.logger.Info("application awarded",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("application_id", app.ID.String()),
		slog.String("club_id", app.ClubID.String()),
	)
	u.publish(ctx, domain.NewEvent(domain.EventApplicationAwarded, campaign.ID, u.now(), map[string]string{
		"application_id": app.ID.String(),
		"club_id":        app.ClubID.String(),
		"company_id":     company.ID.String(),
	}))
	return app, nil
}

// SubmitDeliverable stores a file against the caller's awarded application.
// It does not move the campaign; completion is the company's call.
func (u *CampaignUseCase) SubmitDeliverable(ctx context.Context, caller domain.Caller, applicationID uuid.UUID, file port.FileUpload) (_ *domain.Deliverable, err error) {
	ctx, span := tracer.Start(ctx, "CampaignUseCase.SubmitDeliverable", trace.WithAttributes(
		attribute.String("application_id", applicationID.String()),
	))
	defer func() { finish(span, err) }()

	if !caller.IsClub() {
		return nil, port.ErrNotClub
	}
	app, err := u.repo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ClubID != caller.ProfileID {
		return nil, port.ErrNotApplicationOwner
	}
	if app.Status != domain.ApplicationAwarded {
		return nil, port.ErrApplicationNotAwarded
	}

	id := uuid.New()
	key := fmt.Sprintf("deliverables/%s/%s-%s", app.ID, id, cleanFileName(file.Name))
	ref, err := u.files.Put(ctx, key, file.ContentType, file.Body)
	if err != nil {
		return nil, fmt.Errorf("store deliverable: %w", err)
	}

	d := &domain.Deliverable{
		ID:            id,
		ApplicationID: app.ID,
		FileRef:       ref,
		UploadedAt:    u.now().UTC(),
	}
	if err = u.repo.CreateDeliverable(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListDeliverables returns the deliverables of an application to the club
// that owns it, the company that owns the campaign, or an admin.
func (u *CampaignUseCase) ListDeliverables(ctx context.Context, caller domain.Caller, applicationID uuid.UUID) ([]domain.Deliverable, error) {
	app, err := u.repo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	switch caller.Role {
	case domain.RoleClub:
		if app.ClubID != caller.ProfileID {
			return nil, port.ErrNotApplicationOwner
		}
	case domain.RoleCompany:
		campaign, err := u.repo.GetCampaign(ctx, app.CampaignID)
		if err != nil {
			return nil, err
		}
		if !campaign.OwnedBy(caller.ProfileID) {
			return nil, port.ErrNotCampaignOwner
		}
	case domain.RoleAdmin:
	default:
		return nil, port.ErrForbidden
	}
	return u.repo.ListDeliverables(ctx, app.ID)
}

// CompleteCampaign marks the caller's in-progress campaign completed and then
// tries to produce its report. Report problems are logged and reported as a
// nil ReportURL; the transition stands either way.
func (u *CampaignUseCase) CompleteCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (_ *port.CompletionResult, err error) {
	ctx, span := tracer.Start(ctx, "CampaignUseCase.CompleteCampaign", trace.WithAttributes(
		attribute.String("campaign_id", campaignID.String()),
	))
	defer func() { finish(span, err) }()

	campaign, err := u.ownedCampaign(ctx, caller, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignInProgress {
		return nil, port.ErrCampaignNotInProgress
	}
	err = u.repo.TransitionCampaign(ctx, campaign.ID, domain.CampaignInProgress, domain.CampaignCompleted)
	if errors.Is(err, port.ErrStatusChanged) {
		return nil, port.ErrCampaignNotInProgress
	}
	if err != nil {
		return nil, err
	}
	campaign.Status = domain.CampaignCompleted
	campaign.UpdatedAt = u.now().UTC()
	u.metrics.Transition("complete")

	result := &port.CompletionResult{Campaign: *campaign}
	if url, rerr := u.generateReport(ctx, *campaign); rerr != nil {
		u.metrics.ReportFailed()
		u.logger.Warn("report generation failed",
			slog.String("campaign_id", campaign.ID.String()),
			slog.Any("error", rerr),
		)
		span.AddEvent("report unavailable")
	} else {
		result.ReportURL = &url
	}

	attrs := map[string]string{"company_id": campaign.CompanyID.String()}
	if result.ReportURL != nil {
		attrs["report_url"] = *result.ReportURL
	}
	u.publish(ctx, domain.NewEvent(domain.EventCampaignCompleted, campaign.ID, campaign.UpdatedAt, attrs))
	return result, nil
}

func (u *CampaignUseCase) generateReport(ctx context.Context, campaign domain.Campaign) (string, error) {
	company, err := u.profiles.GetCompany(ctx, campaign.CompanyID)
	if err != nil {
		return "", err
	}
	in := port.ReportInput{Campaign: campaign, Company: *company}

	awarded, err := u.repo.AwardedApplication(ctx, campaign.ID)
	if err != nil {
		return "", err
	}
	if awarded != nil {
		in.Awarded = awarded
		if in.Club, err = u.profiles.GetClub(ctx, awarded.ClubID); err != nil {
			return "", err
		}
		if in.Deliverables, err = u.repo.ListDeliverables(ctx, awarded.ID); err != nil {
			return "", err
		}
	}

	url, err := u.reports.Generate(ctx, in)
	if err != nil {
		return "", fmt.Errorf("%w: %w", port.ErrUnavailable, err)
	}
	if err = u.repo.SaveReport(ctx, &domain.Report{
		CampaignID: campaign.ID,
		URL:        url,
		CreatedAt:  u.now().UTC(),
	}); err != nil {
		return "", err
	}
	return url, nil
}

// GetReport returns the completion report of a campaign to its owner or an
// admin.
func (u *CampaignUseCase) GetReport(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (*domain.Report, error) {
	if !caller.IsAdmin() {
		if _, err := u.ownedCampaign(ctx, caller, campaignID); err != nil {
			return nil, err
		}
	}
	return u.repo.GetReport(ctx, campaignID)
}

// ownedCampaign loads a campaign and checks the caller is the company that
// owns it.
func (u *CampaignUseCase) ownedCampaign(ctx context.Context, caller domain.Caller, campaignID uuid.UUID) (*domain.Campaign, error) {
	if !caller.IsCompany() {
		return nil, port.ErrNotCompany
	}
	campaign, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.OwnedBy(caller.ProfileID) {
		return nil, port.ErrNotCampaignOwner
	}
	return campaign, nil
}

// cleanFileName keeps the base name of an uploaded file and drops anything
// that would escape the storage prefix.
func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}
