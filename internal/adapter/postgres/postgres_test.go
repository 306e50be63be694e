package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unipact/internal/core/port"
)

func TestViolationClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "reviews_reviewer_campaign_key"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isForeignKeyViolation(errors.New("23503")))
	assert.False(t, isUniqueViolation(nil))
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(pgx.ErrNoRows, port.ErrCampaignNotFound), port.ErrCampaignNotFound)

	boom := errors.New("conn closed")
	assert.Equal(t, boom, notFound(boom, port.ErrCampaignNotFound))
}

func TestMoneyRoundTrip(t *testing.T) {
	in := decimal.RequireFromString("499")
	assert.Equal(t, "499.00", moneyArg(in))

	out, err := parseMoney("1234.50")
	require.NoError(t, err)
	assert.True(t, out.Equal(decimal.RequireFromString("1234.5")))

	_, err = parseMoney("abc")
	assert.Error(t, err)
}
