package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-automation/internal/domain"
)

func TestGetEarningsBySource(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEarningsRepository(db)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions t WHERE t.creator_id = $1 AND t.status = $2 AND t.created_at >= $3 AND t.created_at < $4 GROUP BY t.type")).
		WithArgs("cr-1", "completed", start, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"type", "sum", "count"}).
			AddRow("subscription", 450.0, 45).
			AddRow("tip", 120.5, 8))

	sources, err := repo.GetEarningsBySource(context.Background(), "cr-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, []domain.RevenueSource{
		{Source: "subscription", Amount: 450.0, Count: 45},
		{Source: "tip", Amount: 120.5, Count: 8},
	}, sources)
}
