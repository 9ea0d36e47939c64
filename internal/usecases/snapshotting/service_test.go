package snapshotting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-automation/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-automation/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller, now time.Time) (*Service, *mocks.MockPlatformMetricsRepository, *mocks.MockAnalyticsRepository) {
	metricsRepo := mocks.NewMockPlatformMetricsRepository(ctrl)
	analyticsRepo := mocks.NewMockAnalyticsRepository(ctrl)

	service := NewService(metricsRepo, analyticsRepo)
	service.now = func() time.Time { return now }

	return service, metricsRepo, analyticsRepo
}

func TestStoreDailyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	service, metricsRepo, _ := newTestService(ctrl, now)

	metrics := &domain.PlatformMetrics{Followers: 1500, AvgLikes: 42.5, EngagementRate: 3.1}

	metricsRepo.EXPECT().
		UpsertDailySnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *domain.DailyMetricsSnapshot) error {
			assert.Equal(t, "cp-1", snapshot.PlatformConnectionID)
			assert.Equal(t, "2024-03-15", snapshot.Date)
			assert.Equal(t, int64(1500), snapshot.Followers)
			assert.Equal(t, 42.5, snapshot.AvgLikes)
			assert.Zero(t, snapshot.Reach)
			return nil
		})

	require.NoError(t, service.StoreDailyMetrics(context.Background(), "cp-1", metrics))
}

func TestStoreDailyMetricsTwiceSameDayUsesSameKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)
	service, metricsRepo, _ := newTestService(ctrl, now)

	var stored []*domain.DailyMetricsSnapshot
	metricsRepo.EXPECT().
		UpsertDailySnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *domain.DailyMetricsSnapshot) error {
			stored = append(stored, snapshot)
			return nil
		}).
		Times(2)

	require.NoError(t, service.StoreDailyMetrics(context.Background(), "cp-1", &domain.PlatformMetrics{Followers: 100}))

	service.now = func() time.Time { return now.Add(12 * time.Hour) }
	require.NoError(t, service.StoreDailyMetrics(context.Background(), "cp-1", &domain.PlatformMetrics{Followers: 110}))

	require.Len(t, stored, 2)
	assert.Equal(t, stored[0].Date, stored[1].Date)
	assert.Equal(t, stored[0].PlatformConnectionID, stored[1].PlatformConnectionID)
	assert.Equal(t, int64(110), stored[1].Followers)
}

func TestStoreDailyMetricsNilMetricsWritesZeros(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, metricsRepo, _ := newTestService(ctrl, time.Now())

	metricsRepo.EXPECT().
		UpsertDailySnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *domain.DailyMetricsSnapshot) error {
			assert.Zero(t, snapshot.Followers)
			assert.Zero(t, snapshot.EngagementRate)
			return nil
		})

	require.NoError(t, service.StoreDailyMetrics(context.Background(), "cp-1", nil))
}

func TestStoreDailyMetricsPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, metricsRepo, _ := newTestService(ctrl, time.Now())

	repoErr := errors.New("erro no banco de dados")
	metricsRepo.EXPECT().UpsertDailySnapshot(gomock.Any(), gomock.Any()).Return(repoErr)

	err := service.StoreDailyMetrics(context.Background(), "cp-1", &domain.PlatformMetrics{})
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUpdateCreatorPerformanceScoreSwallowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, _, analyticsRepo := newTestService(ctrl, time.Now())

	analyticsRepo.EXPECT().
		UpdateCreatorPerformanceScore(gomock.Any(), "cr-1").
		Return(errors.New("function update_creator_performance_score does not exist"))

	assert.NotPanics(t, func() {
		service.UpdateCreatorPerformanceScore(context.Background(), "cr-1")
	})
}
