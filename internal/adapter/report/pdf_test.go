package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unipact/internal/adapter/memory"
	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

func TestPDFGenerate(t *testing.T) {
	files := memory.NewFiles()
	gen := NewPDF(files)
	campaignID := uuid.New()
	deadline := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	in := port.ReportInput{
		Campaign: domain.Campaign{
			ID:       campaignID,
			Title:    "Hackathon sponsor – 2026",
			Type:     domain.CampaignTalentBounty,
			Budget:   decimal.RequireFromString("1500"),
			Deadline: &deadline,
			Status:   domain.CampaignCompleted,
		},
		Company: domain.CompanyProfile{Name: "Kopi Labs"},
		Awarded: &domain.Application{ID: uuid.New()},
		Club:    &domain.ClubProfile{Name: "Robotics Society", University: "UM", Rank: domain.RankA},
		Deliverables: []domain.Deliverable{
			{FileRef: "memory://deliverables/x/recap.pdf", UploadedAt: deadline},
		},
	}

	ref, err := gen.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "memory://reports/"+campaignID.String()+".pdf", ref)

	data, contentType, ok := files.Get("reports/" + campaignID.String() + ".pdf")
	require.True(t, ok)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	// regenerating overwrites
	_, err = gen.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, files.Len())
}

func TestPDFGenerateWithoutAward(t *testing.T) {
	gen := NewPDF(memory.NewFiles())
	_, err := gen.Generate(context.Background(), port.ReportInput{
		Campaign: domain.Campaign{ID: uuid.New(), Title: "Empty"},
	})
	require.NoError(t, err)
}
