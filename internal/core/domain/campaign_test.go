package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCampaignStatusTransitions(t *testing.T) {
	assert.True(t, CampaignDraft.CanTransition(CampaignOpen))
	assert.True(t, CampaignOpen.CanTransition(CampaignInProgress))
	assert.True(t, CampaignInProgress.CanTransition(CampaignCompleted))
	assert.True(t, CampaignDraft.CanTransition(CampaignArchived))
	assert.True(t, CampaignInProgress.CanTransition(CampaignArchived))

	assert.False(t, CampaignOpen.CanTransition(CampaignCompleted))
	assert.False(t, CampaignDraft.CanTransition(CampaignInProgress))
	assert.False(t, CampaignInProgress.CanTransition(CampaignOpen))

	for _, terminal := range []CampaignStatus{CampaignCompleted, CampaignArchived} {
		for _, next := range []CampaignStatus{CampaignDraft, CampaignOpen, CampaignInProgress, CampaignCompleted, CampaignArchived} {
			assert.False(t, terminal.CanTransition(next), "%s -> %s", terminal, next)
		}
	}
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(decimal.RequireFromString("0")))
	assert.True(t, ValidAmount(decimal.RequireFromString("500")))
	assert.True(t, ValidAmount(decimal.RequireFromString("19.99")))
	assert.True(t, ValidAmount(decimal.RequireFromString("19.90")))
	assert.False(t, ValidAmount(decimal.RequireFromString("19.999")))
	assert.False(t, ValidAmount(decimal.RequireFromString("-1")))
	assert.True(t, ValidAmount(MaxAmount))
	assert.False(t, ValidAmount(decimal.RequireFromString("10000000000")))
}
