package queries_test

import (
	"testing"
	"time"

	"escrowship/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDueDisputeWindowsQuery_Valid(t *testing.T) {
	asOf := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	query := queries.NewGetDueDisputeWindowsQuery(asOf)
	require.NoError(t, query.Validate())
	assert.Equal(t, asOf, query.AsOf())
}

func TestNewGetDueDisputeWindowsQuery_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	asOf := time.Date(2025, time.March, 15, 15, 0, 0, 0, loc)

	query := queries.NewGetDueDisputeWindowsQuery(asOf)

	assert.Equal(t, time.UTC, query.AsOf().Location())
	assert.True(t, query.AsOf().Equal(asOf))
}

func TestGetDueDisputeWindowsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDueDisputeWindowsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDueDisputeWindowsQueryIsNotConstructed)
}
