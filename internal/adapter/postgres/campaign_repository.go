package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository on PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, company_id, title, description, type, budget::text, requirements, deadline, status, created_at, updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c            domain.Campaign
		budget       string
		requirements []byte
	)
	err := row.Scan(&c.ID, &c.CompanyID, &c.Title, &c.Description, &c.Type, &budget, &requirements, &c.Deadline, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	if c.Budget, err = parseMoney(budget); err != nil {
		return c, fmt.Errorf("campaign %s budget: %w", c.ID, err)
	}
	if err = json.Unmarshal(requirements, &c.Requirements); err != nil {
		return c, fmt.Errorf("campaign %s requirements: %w", c.ID, err)
	}
	return c, nil
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	requirements := c.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	reqJSON, err := json.Marshal(requirements)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, company_id, title, description, type, budget, requirements, deadline, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6::numeric,$7,$8,$9,$10,$11)`,
		c.ID, c.CompanyID, c.Title, c.Description, c.Type, moneyArg(c.Budget), reqJSON, c.Deadline, c.Status, c.CreatedAt, c.UpdatedAt)
	if isForeignKeyViolation(err) {
		return port.ErrCompanyNotFound
	}
	return err
}

func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, port.ErrCampaignNotFound)
	}
	return &c, nil
}

func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		where = append(where, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func (r *CampaignRepository) TransitionCampaign(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return port.ErrCampaignNotFound
	}
	return port.ErrStatusChanged
}

const applicationColumns = `id, campaign_id, club_id, message, status, submitted_at`

func scanApplication(row pgx.Row) (domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.CampaignID, &a.ClubID, &a.Message, &a.Status, &a.SubmittedAt)
	return a, err
}

func (r *CampaignRepository) CreateApplication(ctx context.Context, a *domain.Application) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO applications (id, campaign_id, club_id, message, status, submitted_at)
VALUES ($1,$2,$3,$4,$5,$6)`, a.ID, a.CampaignID, a.ClubID, a.Message, a.Status, a.SubmittedAt)
	switch {
	case isUniqueViolation(err):
		return port.ErrDuplicateApplication
	case isForeignKeyViolation(err):
		return port.ErrClubNotFound
	}
	return err
}

func (r *CampaignRepository) GetApplication(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	a, err := scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, port.ErrApplicationNotFound)
	}
	return &a, nil
}

func (r *CampaignRepository) ListApplications(ctx context.Context, campaignID uuid.UUID) ([]domain.Application, error) {
	return r.listApplications(ctx, `campaign_id = $1`, campaignID)
}

func (r *CampaignRepository) ListApplicationsByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Application, error) {
	return r.listApplications(ctx, `club_id = $1`, clubID)
}

func (r *CampaignRepository) listApplications(ctx context.Context, cond string, arg any) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+applicationColumns+` FROM applications WHERE `+cond+` ORDER BY submitted_at, id`, arg)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
}

func (r *CampaignRepository) AwardedApplication(ctx context.Context, campaignID uuid.UUID) (*domain.Application, error) {
	a, err := scanApplication(r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE campaign_id = $1 AND status = 'AWARDED'`, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AwardApplication locks the campaign row, so concurrent awards on the same
// campaign queue up and every one after the first finds it no longer open.
// The partial unique index on awarded applications backs this up.
func (r *CampaignRepository) AwardApplication(ctx context.Context, campaignID, applicationID uuid.UUID) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var status domain.CampaignStatus
	err = tx.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).Scan(&status)
	if err != nil {
		err = notFound(err, port.ErrCampaignNotFound)
		return err
	}
	if status != domain.CampaignOpen {
		err = port.ErrCampaignNotOpen
		return err
	}

	var belongs bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM applications WHERE id = $1 AND campaign_id = $2)`, applicationID, campaignID).Scan(&belongs)
	if err != nil {
		return err
	}
	if !belongs {
		err = port.ErrApplicationNotFound
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE applications
SET status = CASE WHEN id = $2 THEN 'AWARDED' ELSE 'NOT_SELECTED' END
WHERE campaign_id = $1`, campaignID, applicationID)
	if isUniqueViolation(err) {
		err = port.ErrCampaignNotOpen
		return err
	}
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`, campaignID, domain.CampaignInProgress)
	return err
}

func (r *CampaignRepository) CreateDeliverable(ctx context.Context, d *domain.Deliverable) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO deliverables (id, application_id, file_ref, uploaded_at) VALUES ($1,$2,$3,$4)`,
		d.ID, d.ApplicationID, d.FileRef, d.UploadedAt)
	if isForeignKeyViolation(err) {
		return port.ErrApplicationNotFound
	}
	return err
}

func (r *CampaignRepository) ListDeliverables(ctx context.Context, applicationID uuid.UUID) ([]domain.Deliverable, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, application_id, file_ref, uploaded_at FROM deliverables
WHERE application_id = $1 ORDER BY uploaded_at, id`, applicationID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Deliverable, error) {
		var d domain.Deliverable
		err := row.Scan(&d.ID, &d.ApplicationID, &d.FileRef, &d.UploadedAt)
		return d, err
	})
}

func (r *CampaignRepository) SaveReport(ctx context.Context, rep *domain.Report) error {
	createdAt := rep.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO campaign_reports (campaign_id, url, created_at) VALUES ($1,$2,$3)
ON CONFLICT (campaign_id) DO UPDATE SET url = EXCLUDED.url, created_at = EXCLUDED.created_at`,
		rep.CampaignID, rep.URL, createdAt)
	return err
}

func (r *CampaignRepository) GetReport(ctx context.Context, campaignID uuid.UUID) (*domain.Report, error) {
	var rep domain.Report
	err := r.pool.QueryRow(ctx, `SELECT campaign_id, url, created_at FROM campaign_reports WHERE campaign_id = $1`, campaignID).
		Scan(&rep.CampaignID, &rep.URL, &rep.CreatedAt)
	if err != nil {
		return nil, notFound(err, port.ErrReportNotFound)
	}
	return &rep, nil
}
