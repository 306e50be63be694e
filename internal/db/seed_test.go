package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"unipact/internal/core/domain"
)

func TestDemoIsConsistent(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	d := Demo(now)

	companies := map[string]bool{}
	for _, c := range d.Companies {
		companies[c.ID.String()] = true
	}
	clubs := map[string]bool{}
	for _, c := range d.Clubs {
		clubs[c.ID.String()] = true
	}

	for _, c := range d.Campaigns {
		assert.True(t, companies[c.CompanyID.String()], "campaign %s has unknown owner", c.Title)
		assert.Equal(t, domain.CampaignOpen, c.Status)
		assert.True(t, domain.ValidAmount(c.Budget))
	}
	for _, r := range d.Reviews {
		assert.True(t, clubs[r.RevieweeID.String()])
		assert.GreaterOrEqual(t, r.Rating, domain.MinRating)
		assert.LessOrEqual(t, r.Rating, domain.MaxRating)
		assert.False(t, r.CreatedAt.After(now))
	}

	// ids are stable across runs
	assert.Equal(t, d.Clubs[0].ID, Demo(now.Add(time.Hour)).Clubs[0].ID)
}

func TestDemoCompanies(t *testing.T) {
	d := Demo(time.Now())

	names := map[string]string{}
	for _, c := range d.Companies {
		names[c.ID.String()] = c.Name
	}
	assert.Equal(t, map[string]string{
		DemoFreeCompanyID.String():  "Kopi Labs",
		DemoProCompanyID.String():   "Lembah Digital Works",
		DemoRiskyCompanyID.String(): "QuickCash Sdn Bhd",
	}, names)
}
