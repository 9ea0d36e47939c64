package syncing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/creator-automation/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-automation/internal/domain"
	snapshotmocks "github.com/vfg2006/creator-automation/internal/usecases/snapshotting/mocks"
	"github.com/vfg2006/creator-automation/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	creators    *repomocks.MockCreatorRepository
	connections *repomocks.MockPlatformConnectionRepository
	executions  *repomocks.MockAutomationExecutionRepository
	analytics   *repomocks.MockAnalyticsRepository
	snapshots   *snapshotmocks.MockSnapshotter
	instagram   *mocks.MockPlatformAdapter
	tiktok      *mocks.MockPlatformAdapter
	sleeps      []time.Duration
}

func newTestService(t *testing.T, opts Options) (*Service, *testDeps) {
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		creators:    repomocks.NewMockCreatorRepository(ctrl),
		connections: repomocks.NewMockPlatformConnectionRepository(ctrl),
		executions:  repomocks.NewMockAutomationExecutionRepository(ctrl),
		analytics:   repomocks.NewMockAnalyticsRepository(ctrl),
		snapshots:   snapshotmocks.NewMockSnapshotter(ctrl),
		instagram:   mocks.NewMockPlatformAdapter(ctrl),
		tiktok:      mocks.NewMockPlatformAdapter(ctrl),
	}

	registry := Registry{
		domain.PlatformInstagram: deps.instagram,
		domain.PlatformTikTok:    deps.tiktok,
	}

	service := NewService(opts, deps.creators, deps.connections, deps.executions, deps.analytics, deps.snapshots, registry)
	service.now = func() time.Time { return fixedNow }

	var mu sync.Mutex
	service.sleep = func(_ context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		deps.sleeps = append(deps.sleeps, d)
		return nil
	}

	return service, deps
}

func defaultOptions() Options {
	return Options{BatchSize: 10, BatchDelay: 2 * time.Second, FreshnessHours: 6}
}

func syncedAgo(d time.Duration) *time.Time {
	at := fixedNow.Add(-d)
	return &at
}

func newCreator(id string, connections ...*domain.PlatformConnection) *domain.Creator {
	for _, conn := range connections {
		conn.CreatorID = id
	}
	return &domain.Creator{ID: id, Username: "user-" + id, Status: domain.CreatorStatusActive, Platforms: connections}
}

func newConnection(id string, platform domain.Platform, lastSync *time.Time) *domain.PlatformConnection {
	return &domain.PlatformConnection{
		ID:          id,
		Platform:    platform,
		AccessToken: "token-" + id,
		IsConnected: true,
		LastSyncAt:  lastSync,
		SyncStatus:  domain.SyncStatusCompleted,
	}
}

func TestSyncCreatorFreshness(t *testing.T) {
	tests := []struct {
		name        string
		lastSync    *time.Time
		force       bool
		expectFetch bool
		wantState   domain.ConnectionSyncState
	}{
		{
			name:        "sincronizada há 3 horas é pulada",
			lastSync:    syncedAgo(3 * time.Hour),
			expectFetch: false,
			wantState:   domain.ConnectionSkipped,
		},
		{
			name:        "sincronizada há 7 horas chama o adapter",
			lastSync:    syncedAgo(7 * time.Hour),
			expectFetch: true,
			wantState:   domain.ConnectionSynced,
		},
		{
			name:        "nunca sincronizada chama o adapter",
			lastSync:    nil,
			expectFetch: true,
			wantState:   domain.ConnectionSynced,
		},
		{
			name:        "force ignora o cache de 6 horas",
			lastSync:    syncedAgo(time.Hour),
			force:       true,
			expectFetch: true,
			wantState:   domain.ConnectionSynced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t, defaultOptions())

			conn := newConnection("cp-1", domain.PlatformInstagram, tt.lastSync)
			creator := newCreator("cr-1", conn)

			deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(creator, nil)
			deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), "cr-1")

			if tt.expectFetch {
				metrics := &domain.PlatformMetrics{Followers: 500}
				deps.instagram.EXPECT().FetchMetrics(gomock.Any(), conn).Return(metrics, nil)
				deps.snapshots.EXPECT().StoreDailyMetrics(gomock.Any(), "cp-1", metrics).Return(nil)
				deps.connections.EXPECT().MarkCompleted(gomock.Any(), "cp-1", metrics, fixedNow).Return(nil)
			}

			outcome, err := service.SyncCreator(context.Background(), "cr-1", tt.force)
			require.NoError(t, err)
			require.Len(t, outcome.Connections, 1)
			assert.Equal(t, tt.wantState, outcome.Connections[0].State)
		})
	}
}

func TestSyncCreatorAdapterFailureIsRecordedOnConnection(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	ig := newConnection("cp-ig", domain.PlatformInstagram, nil)
	tt := newConnection("cp-tt", domain.PlatformTikTok, nil)
	creator := newCreator("cr-1", ig, tt)

	adapterErr := domain.NewPlatformError(domain.PlatformInstagram, "profile", errors.New("token expired"))
	metrics := &domain.PlatformMetrics{Followers: 80}

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(creator, nil)
	deps.instagram.EXPECT().FetchMetrics(gomock.Any(), ig).Return(nil, adapterErr)
	deps.connections.EXPECT().MarkFailed(gomock.Any(), "cp-ig", "instagram: profile: token expired").Return(nil)
	deps.tiktok.EXPECT().FetchMetrics(gomock.Any(), tt).Return(metrics, nil)
	deps.snapshots.EXPECT().StoreDailyMetrics(gomock.Any(), "cp-tt", metrics).Return(nil)
	deps.connections.EXPECT().MarkCompleted(gomock.Any(), "cp-tt", metrics, fixedNow).Return(nil)
	deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), "cr-1")

	outcome, err := service.SyncCreator(context.Background(), "cr-1", false)
	require.NoError(t, err)
	assert.True(t, outcome.OK())
	require.Len(t, outcome.Connections, 2)
	assert.Equal(t, domain.ConnectionFailed, outcome.Connections[0].State)
	assert.Equal(t, "instagram: profile: token expired", outcome.Connections[0].Error)
	assert.Equal(t, domain.ConnectionSynced, outcome.Connections[1].State)
}

func TestSyncCreatorUnconfiguredPlatform(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	yt := newConnection("cp-yt", domain.PlatformYouTube, nil)
	creator := newCreator("cr-1", yt)

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(creator, nil)
	deps.connections.EXPECT().
		MarkFailed(gomock.Any(), "cp-yt", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message string) error {
			assert.Contains(t, message, domain.ErrPlatformNotConfigured.Error())
			return nil
		})
	deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), "cr-1")

	outcome, err := service.SyncCreator(context.Background(), "cr-1", false)
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionFailed, outcome.Connections[0].State)
}

func TestSyncCreatorNotFound(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "missing").Return(nil, nil)

	_, err := service.SyncCreator(context.Background(), "missing", false)
	assert.ErrorIs(t, err, domain.ErrCreatorNotFound)
}

func TestSyncCreatorSnapshotFailureIsReturned(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	conn := newConnection("cp-1", domain.PlatformInstagram, nil)
	creator := newCreator("cr-1", conn)
	metrics := &domain.PlatformMetrics{}
	storeErr := errors.New("erro ao gravar snapshot")

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(creator, nil)
	deps.instagram.EXPECT().FetchMetrics(gomock.Any(), conn).Return(metrics, nil)
	deps.snapshots.EXPECT().StoreDailyMetrics(gomock.Any(), "cp-1", metrics).Return(storeErr)
	deps.connections.EXPECT().MarkFailed(gomock.Any(), "cp-1", "erro ao gravar snapshot").Return(nil)
	deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), "cr-1")
	deps.executions.EXPECT().
		LogSyncError(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.SyncErrorLog) error {
			assert.Equal(t, "cr-1", entry.CreatorID)
			assert.Contains(t, entry.ErrorMessage, "erro ao gravar snapshot")
			return nil
		})

	outcome, err := service.SyncCreator(context.Background(), "cr-1", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, outcome.OK())
}

func TestSyncCreatorMarkCompletedFailureMarksConnectionFailed(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	conn := newConnection("cp-1", domain.PlatformTikTok, nil)
	creator := newCreator("cr-1", conn)
	metrics := &domain.PlatformMetrics{Followers: 10}
	writeErr := errors.New("connection reset")

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(creator, nil)
	deps.tiktok.EXPECT().FetchMetrics(gomock.Any(), conn).Return(metrics, nil)
	deps.snapshots.EXPECT().StoreDailyMetrics(gomock.Any(), "cp-1", metrics).Return(nil)
	deps.connections.EXPECT().MarkCompleted(gomock.Any(), "cp-1", metrics, fixedNow).Return(writeErr)
	deps.connections.EXPECT().
		MarkFailed(gomock.Any(), "cp-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message string) error {
			assert.Contains(t, message, "connection reset")
			return errors.New("still down")
		})
	deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), "cr-1")
	deps.executions.EXPECT().LogSyncError(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := service.SyncCreator(context.Background(), "cr-1", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)
	require.Len(t, outcome.Connections, 1)
	assert.Equal(t, domain.ConnectionFailed, outcome.Connections[0].State)
}

func TestSyncAllCreatorsBatchIsolation(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	connA := newConnection("cp-a", domain.PlatformInstagram, nil)
	connB := newConnection("cp-b", domain.PlatformInstagram, nil)
	connC := newConnection("cp-c", domain.PlatformTikTok, nil)

	creatorA := newCreator("a", connA)
	creatorB := newCreator("b", connB)
	creatorC := newCreator("c", connC)

	metricsA := &domain.PlatformMetrics{Followers: 10}

	deps.creators.EXPECT().
		ListCreatorsWithConnectedPlatforms(gomock.Any()).
		Return([]*domain.Creator{creatorA, creatorB, creatorC}, nil)

	deps.instagram.EXPECT().FetchMetrics(gomock.Any(), connA).Return(metricsA, nil)
	deps.snapshots.EXPECT().StoreDailyMetrics(gomock.Any(), "cp-a", metricsA).Return(nil)
	deps.connections.EXPECT().MarkCompleted(gomock.Any(), "cp-a", metricsA, fixedNow).Return(nil)

	deps.instagram.EXPECT().FetchMetrics(gomock.Any(), connB).Return(nil, errors.New("rate limited"))
	deps.connections.EXPECT().MarkFailed(gomock.Any(), "cp-b", "rate limited").Return(errors.New("connection refused"))

	deps.tiktok.EXPECT().FetchMetrics(gomock.Any(), connC).Return(nil, errors.New("invalid token"))
	deps.connections.EXPECT().MarkFailed(gomock.Any(), "cp-c", "invalid token").Return(nil)

	deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), gomock.Any()).Times(3)

	deps.executions.EXPECT().
		LogSyncError(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.SyncErrorLog) error {
			assert.Equal(t, "b", entry.CreatorID)
			assert.Equal(t, domain.AutomationTypeMetricsSync, entry.AutomationType)
			assert.Contains(t, entry.ErrorMessage, "connection refused")
			return nil
		})

	deps.analytics.EXPECT().RefreshGlobalAnalytics(gomock.Any()).Return(nil)

	summary, err := service.SyncAllCreators(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Creators)
	assert.Equal(t, []string{"user-a", "user-c"}, summary.Succeeded)
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "user-b", summary.Failed[0].Username)
	assert.Equal(t, 1, summary.ConnectionsSynced)
	assert.Equal(t, 2, summary.ConnectionsFailed)
	assert.Empty(t, deps.sleeps)
}

func TestSyncAllCreatorsRecoversPanic(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	connA := newConnection("cp-a", domain.PlatformInstagram, nil)
	connB := newConnection("cp-b", domain.PlatformTikTok, nil)
	creatorA := newCreator("a", connA)
	creatorB := newCreator("b", connB)

	metricsB := &domain.PlatformMetrics{Followers: 3}

	deps.creators.EXPECT().
		ListCreatorsWithConnectedPlatforms(gomock.Any()).
		Return([]*domain.Creator{creatorA, creatorB}, nil)

	deps.instagram.EXPECT().
		FetchMetrics(gomock.Any(), connA).
		DoAndReturn(func(context.Context, *domain.PlatformConnection) (*domain.PlatformMetrics, error) {
			panic("nil map")
		})

	deps.tiktok.EXPECT().FetchMetrics(gomock.Any(), connB).Return(metricsB, nil)
	deps.snapshots.EXPECT().StoreDailyMetrics(gomock.Any(), "cp-b", metricsB).Return(nil)
	deps.connections.EXPECT().MarkCompleted(gomock.Any(), "cp-b", metricsB, fixedNow).Return(nil)
	deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), "b")

	deps.executions.EXPECT().
		LogSyncError(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.SyncErrorLog) error {
			assert.Equal(t, "a", entry.CreatorID)
			assert.Contains(t, entry.ErrorMessage, "panic")
			return nil
		})

	deps.analytics.EXPECT().RefreshGlobalAnalytics(gomock.Any()).Return(nil)

	summary, err := service.SyncAllCreators(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-b"}, summary.Succeeded)
	require.Len(t, summary.Failed, 1)
	assert.Contains(t, summary.Failed[0].Error, "nil map")
}

func TestSyncAllCreatorsBatchesWithDelay(t *testing.T) {
	opts := defaultOptions()
	opts.BatchSize = 5
	service, deps := newTestService(t, opts)

	creators := make([]*domain.Creator, 12)
	for i := range creators {
		creators[i] = newCreator(fmt.Sprintf("cr-%02d", i))
	}

	deps.creators.EXPECT().ListCreatorsWithConnectedPlatforms(gomock.Any()).Return(creators, nil)
	deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), gomock.Any()).Times(12)
	deps.analytics.EXPECT().RefreshGlobalAnalytics(gomock.Any()).Return(nil).Times(1)

	summary, err := service.SyncAllCreators(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 12, summary.Creators)
	assert.Len(t, summary.Succeeded, 12)
	assert.Equal(t, "user-cr-00", summary.Succeeded[0])
	assert.Equal(t, "user-cr-11", summary.Succeeded[11])
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, deps.sleeps)
}

func TestSyncAllCreatorsRefreshFailureIsNotFatal(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	deps.creators.EXPECT().ListCreatorsWithConnectedPlatforms(gomock.Any()).Return([]*domain.Creator{}, nil)
	deps.analytics.EXPECT().RefreshGlobalAnalytics(gomock.Any()).Return(errors.New("function does not exist"))

	summary, err := service.SyncAllCreators(context.Background(), true)
	require.NoError(t, err)
	assert.Zero(t, summary.Creators)
}

func TestSyncAllCreatorsLoadFailure(t *testing.T) {
	service, deps := newTestService(t, defaultOptions())

	deps.creators.EXPECT().ListCreatorsWithConnectedPlatforms(gomock.Any()).Return(nil, errors.New("db down"))

	summary, err := service.SyncAllCreators(context.Background(), false)
	require.Error(t, err)
	assert.Nil(t, summary)
}

func TestSyncAllCreatorsStopsWhenCancelledBetweenBatches(t *testing.T) {
	opts := defaultOptions()
	opts.BatchSize = 1
	service, deps := newTestService(t, opts)
	service.sleep = func(context.Context, time.Duration) error { return context.Canceled }

	deps.creators.EXPECT().
		ListCreatorsWithConnectedPlatforms(gomock.Any()).
		Return([]*domain.Creator{newCreator("a"), newCreator("b")}, nil)
	deps.snapshots.EXPECT().UpdateCreatorPerformanceScore(gomock.Any(), "a")

	summary, err := service.SyncAllCreators(context.Background(), false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, summary.Creators)
}

func TestRegistryAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockPlatformAdapter(ctrl)
	adapter.EXPECT().Platform().Return(domain.PlatformTikTok)

	registry := NewRegistry(adapter)

	got, err := registry.Adapter(domain.PlatformTikTok)
	require.NoError(t, err)
	assert.Equal(t, adapter, got)

	_, err = registry.Adapter(domain.PlatformYouTube)
	assert.ErrorIs(t, err, domain.ErrPlatformNotConfigured)

	_, err = registry.Adapter(domain.Platform("myspace"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}
