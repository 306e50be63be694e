package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProcessorLifecycle(t *testing.T) {
	ctx := context.Background()
	p := NewMockProcessor()

	in, err := p.CreateIntent(ctx, decimal.NewFromInt(100), "myr")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(in.Ref, "pi_mock_"))
	assert.True(t, strings.HasPrefix(in.ClientSecret, in.Ref+"_secret_"))

	paid, err := p.Confirm(ctx, in.Ref)
	require.NoError(t, err)
	assert.True(t, paid)

	declined, err := p.CreateIntent(ctx, decimal.NewFromInt(5), "myr")
	require.NoError(t, err)
	require.NoError(t, p.Decline(declined.Ref))
	paid, err = p.Confirm(ctx, declined.Ref)
	require.NoError(t, err)
	assert.False(t, paid)
}

func TestMockProcessorIsolation(t *testing.T) {
	ctx := context.Background()
	a, b := NewMockProcessor(), NewMockProcessor()

	in, err := a.CreateIntent(ctx, decimal.NewFromInt(1), "myr")
	require.NoError(t, err)

	_, err = b.Confirm(ctx, in.Ref)
	assert.ErrorIs(t, err, ErrUnknownIntent)

	_, err = a.CreateIntent(ctx, decimal.Zero, "myr")
	assert.Error(t, err)
}
