package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-automation/internal/domain"
)

func TestUpsertDailySnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlatformMetricsRepository(db)

	snapshot := &domain.DailyMetricsSnapshot{
		PlatformConnectionID: "cp-1",
		Date:                 "2024-03-15",
		Followers:            1000,
		EngagementRate:       2.5,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO platform_metrics (platform_connection_id,date,followers")).
		WithArgs("cp-1", "2024-03-15", int64(1000), int64(0), int64(0), 0.0, 0.0, 0.0, 0.0, 2.5, int64(0), int64(0), int64(0)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.UpsertDailySnapshot(context.Background(), snapshot))
}

func TestUpsertDailySnapshotUsesConflictKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlatformMetricsRepository(db)

	mock.ExpectExec(`ON CONFLICT \(platform_connection_id, date\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertDailySnapshot(context.Background(), &domain.DailyMetricsSnapshot{PlatformConnectionID: "cp-1", Date: "2024-03-15"}))
}

func TestUpsertDailySnapshotPropagatesOtherConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlatformMetricsRepository(db)

	mock.ExpectExec("INSERT INTO platform_metrics").
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.UpsertDailySnapshot(context.Background(), &domain.DailyMetricsSnapshot{PlatformConnectionID: "gone", Date: "2024-03-15"})
	require.Error(t, err)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("23503"), pqErr.Code)
}

func TestListCreatorSnapshots(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlatformMetricsRepository(db)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	columns := []string{
		"id", "platform_connection_id", "creator_id", "platform", "date", "followers", "following",
		"posts_count", "avg_likes", "avg_comments", "avg_shares", "avg_views", "engagement_rate",
		"reach", "impressions", "profile_views", "created_at",
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE cp.creator_id = $1 AND pm.date >= $2 AND pm.date <= $3")).
		WithArgs("cr-1", "2024-02-01", "2024-02-29").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "cp-1", "cr-1", "instagram", start, 100, 0, 10, 5.0, 1.0, 0.0, 0.0, 1.2, 50, 80, 3, start).
			AddRow(2, "cp-1", "cr-1", "instagram", end, 130, 0, 12, 6.0, 1.5, 0.0, 0.0, 1.4, 60, 90, 4, end))

	snapshots, err := repo.ListCreatorSnapshots(context.Background(), "cr-1", start, end)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "2024-02-01", snapshots[0].Date)
	assert.Equal(t, "2024-02-29", snapshots[1].Date)
	assert.Equal(t, domain.PlatformInstagram, snapshots[1].Platform)
	assert.Equal(t, int64(130), snapshots[1].Followers)
}
