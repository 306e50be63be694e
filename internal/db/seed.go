package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"unipact/internal/core/domain"
)

// Fixed ids of the demo profiles, so tokens can be minted for them.
var (
	DemoFreeCompanyID  = uuid.MustParse("0b6a3c1e-5f2d-4c61-9a57-1f0f6a3d9e01")
	DemoProCompanyID   = uuid.MustParse("0b6a3c1e-5f2d-4c61-9a57-1f0f6a3d9e02")
	DemoRiskyCompanyID = uuid.MustParse("0b6a3c1e-5f2d-4c61-9a57-1f0f6a3d9e03")
)

// DemoData is the demo dataset. Seed writes it to Postgres; the memory
// backend loads it directly.
type DemoData struct {
	Companies []domain.CompanyProfile
	Clubs     []domain.ClubProfile
	Campaigns []domain.Campaign
	Reviews   []domain.Review
}

// Demo builds the demo dataset relative to now: three companies, a handful of
// clubs with reviews spread over the last two years, and open campaigns.
func Demo(now time.Time) DemoData {
	r := rand.New(rand.NewSource(42))
	now = now.UTC()

	d := DemoData{
		Companies: []domain.CompanyProfile{
			{ID: DemoFreeCompanyID, Name: "Kopi Labs", Tier: domain.TierFree, VerificationStatus: domain.VerificationVerified},
			{ID: DemoProCompanyID, Name: "Lembah Digital Works", Tier: domain.TierPro, VerificationStatus: domain.VerificationVerified},
			{ID: DemoRiskyCompanyID, Name: "QuickCash Sdn Bhd", Tier: domain.TierFree, VerificationStatus: domain.VerificationHighRisk},
		},
	}

	universities := []string{"Universiti Malaya", "UTM", "USM", "Taylor's University"}
	clubs := []string{"Robotics Society", "Debate Club", "Google Developer Student Club", "Photography Club", "Entrepreneurship Society"}
	for i, name := range clubs {
		d.Clubs = append(d.Clubs, domain.ClubProfile{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("unipact-club-%d", i))),
			Name:       name,
			University: universities[i%len(universities)],
			Rank:       domain.RankC,
		})
	}

	titles := []string{"Campus hackathon sponsor", "Brand ambassador programme", "Orientation week booth", "Case competition partner"}
	for i, title := range titles {
		company := d.Companies[i%2]
		typ := domain.CampaignTalentBounty
		if i%2 == 1 {
			typ = domain.CampaignBrandAmbassador
		}
		deadline := now.AddDate(0, 1, i).Truncate(24 * time.Hour)
		d.Campaigns = append(d.Campaigns, domain.Campaign{
			ID:           uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("unipact-campaign-%d", i))),
			CompanyID:    company.ID,
			Title:        title,
			Description:  fmt.Sprintf("%s looking for a student club partner.", company.Name),
			Type:         typ,
			Budget:       decimal.NewFromInt(int64(500 + 250*i)),
			Requirements: []string{"logo placement", "post-event report"},
			Deadline:     &deadline,
			Status:       domain.CampaignOpen,
			CreatedAt:    now.Add(-time.Duration(i) * time.Hour),
			UpdatedAt:    now.Add(-time.Duration(i) * time.Hour),
		})
	}

	// Reviews of fictional past campaigns; some fall outside the window.
	for _, club := range d.Clubs {
		for j := 0; j < 3; j++ {
			d.Reviews = append(d.Reviews, domain.Review{
				ID:         uuid.New(),
				ReviewerID: d.Companies[j%2].ID,
				RevieweeID: club.ID,
				CampaignID: uuid.New(),
				Rating:     1 + r.Intn(domain.MaxRating),
				Comment:    "seeded",
				CreatedAt:  now.AddDate(0, 0, -r.Intn(730)),
			})
		}
	}
	return d
}

// Seed inserts the demo profiles and campaigns into the unipact database.
// It is idempotent for profiles and campaigns. Reviews in Postgres must
// point at real campaigns, so they are not seeded there.
func Seed(ctx context.Context, db *pgxpool.Pool, d DemoData) error {
	for _, c := range d.Companies {
		_, err := db.Exec(ctx, `INSERT INTO company_profiles (id, name, tier, verification_status)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, c.ID, c.Name, c.Tier, c.VerificationStatus)
		if err != nil {
			return fmt.Errorf("seed company %s: %w", c.Name, err)
		}
	}
	for _, c := range d.Clubs {
		_, err := db.Exec(ctx, `INSERT INTO club_profiles (id, name, university, rank)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, c.ID, c.Name, c.University, c.Rank)
		if err != nil {
			return fmt.Errorf("seed club %s: %w", c.Name, err)
		}
	}
	for _, c := range d.Campaigns {
		reqJSON, _ := json.Marshal(c.Requirements)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, company_id, title, description, type, budget, requirements, deadline, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6::numeric,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
			c.ID, c.CompanyID, c.Title, c.Description, c.Type, c.Budget.StringFixed(2), reqJSON, c.Deadline, c.Status, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", c.Title, err)
		}
	}
	return nil
}
