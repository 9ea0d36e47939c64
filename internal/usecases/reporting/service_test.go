package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/creator-automation/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

var reportNow = time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)

type reportDeps struct {
	creators  *repomocks.MockCreatorRepository
	snapshots *repomocks.MockPlatformMetricsRepository
	earnings  *repomocks.MockEarningsRepository
	reports   *repomocks.MockAnalyticsReportRepository
	store     *mocks.MockArtifactStore
	notifier  *mocks.MockNotifier
	sleeps    []time.Duration
}

func newReportService(t *testing.T, withDelivery bool) (*Service, *reportDeps) {
	ctrl := gomock.NewController(t)

	deps := &reportDeps{
		creators:  repomocks.NewMockCreatorRepository(ctrl),
		snapshots: repomocks.NewMockPlatformMetricsRepository(ctrl),
		earnings:  repomocks.NewMockEarningsRepository(ctrl),
		reports:   repomocks.NewMockAnalyticsReportRepository(ctrl),
		store:     mocks.NewMockArtifactStore(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
	}

	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	service := NewService(deps.creators, deps.snapshots, deps.earnings, deps.reports, renderer, time.Second)
	if withDelivery {
		service.WithDelivery(deps.store, deps.notifier)
	}

	service.now = func() time.Time { return reportNow }
	service.newID = func() string { return "rep-1" }
	service.sleep = func(_ context.Context, d time.Duration) error {
		deps.sleeps = append(deps.sleeps, d)
		return nil
	}

	return service, deps
}

func sampleCreator(id string) *domain.Creator {
	email := id + "@example.com"
	return &domain.Creator{
		ID:       id,
		Username: "user-" + id,
		Email:    &email,
		Status:   domain.CreatorStatusActive,
		Platforms: []*domain.PlatformConnection{
			{
				ID:          "cp-" + id,
				CreatorID:   id,
				Platform:    domain.PlatformInstagram,
				IsConnected: true,
				Metrics:     &domain.PlatformMetrics{TopHashtags: []string{"#fitness", "#gym"}},
			},
		},
	}
}

func sampleSnapshots(creatorID string) []*domain.DailyMetricsSnapshot {
	return []*domain.DailyMetricsSnapshot{
		{PlatformConnectionID: "cp-" + creatorID, Platform: domain.PlatformInstagram, Date: "2024-02-01", Followers: 1000, EngagementRate: 3, PostsCount: 40},
		{PlatformConnectionID: "cp-" + creatorID, Platform: domain.PlatformInstagram, Date: "2024-02-29", Followers: 1100, EngagementRate: 5, PostsCount: 48},
	}
}

func TestGenerateCreatorReport(t *testing.T) {
	service, deps := newReportService(t, true)
	creator := sampleCreator("cr-1")

	periodStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	url := "https://reports.example.com/reports/cr-1/rep-1.html"

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(creator, nil)
	deps.snapshots.EXPECT().ListCreatorSnapshots(gomock.Any(), "cr-1", periodStart, periodEnd).Return(sampleSnapshots("cr-1"), nil)
	deps.earnings.EXPECT().GetEarningsBySource(gomock.Any(), "cr-1", periodStart, periodEnd).
		Return([]domain.RevenueSource{{Source: "subscription", Amount: 300, Count: 30}}, nil)

	deps.reports.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *domain.AnalyticsReport) error {
			assert.Equal(t, domain.ReportStatusCompleted, report.Status)
			assert.Equal(t, "2024-02-01", report.PeriodStart)
			assert.Equal(t, "2024-02-29", report.PeriodEnd)
			assert.NotEmpty(t, report.Recommendations)
			return nil
		})

	deps.store.EXPECT().
		Upload(gomock.Any(), "reports/cr-1/rep-1.html", reportContentType, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, body []byte) (string, error) {
			assert.Contains(t, string(body), "user-cr-1")
			assert.Contains(t, string(body), "#fitness")
			return url, nil
		})
	deps.reports.EXPECT().AttachFileURL(gomock.Any(), "rep-1", url).Return(nil)

	deps.notifier.EXPECT().
		Send(gomock.Any(), "cr-1@example.com", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, subject, body string) error {
			assert.Contains(t, subject, "monthly")
			assert.Contains(t, body, url)
			return nil
		})

	report, err := service.GenerateCreatorReport(context.Background(), "cr-1", domain.ReportTypeMonthly)
	require.NoError(t, err)

	assert.Equal(t, "rep-1", report.ID)
	assert.Equal(t, int64(100), report.Metrics.FollowerGrowth.NetGrowth)
	assert.Equal(t, 10.0, report.Metrics.FollowerGrowth.GrowthRate)
	assert.Equal(t, 300.0, report.Metrics.Revenue.Total)
	require.NotNil(t, report.FileURL)
	assert.Equal(t, url, *report.FileURL)
}

func TestGenerateCreatorReportGatheringFailureIsRecorded(t *testing.T) {
	service, deps := newReportService(t, true)
	gatherErr := errors.New("canceling statement due to statement timeout")

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(sampleCreator("cr-1"), nil)
	deps.snapshots.EXPECT().ListCreatorSnapshots(gomock.Any(), "cr-1", gomock.Any(), gomock.Any()).Return(nil, gatherErr)

	deps.reports.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *domain.AnalyticsReport) error {
			assert.Equal(t, domain.ReportStatusFailed, report.Status)
			assert.Equal(t, "rep-1", report.ID)
			require.NotNil(t, report.ErrorMessage)
			assert.Contains(t, *report.ErrorMessage, "statement timeout")
			assert.Nil(t, report.Metrics)
			return nil
		})

	report, err := service.GenerateCreatorReport(context.Background(), "cr-1", domain.ReportTypeMonthly)
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, gatherErr)
	assert.True(t, IsReportError(err))
}

func TestGenerateCreatorReportSaveFailureRecordsFailedRow(t *testing.T) {
	service, deps := newReportService(t, false)
	saveErr := errors.New("connection reset after commit")

	ids := []string{"rep-completed", "rep-failed"}
	service.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(sampleCreator("cr-1"), nil)
	deps.snapshots.EXPECT().ListCreatorSnapshots(gomock.Any(), "cr-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.earnings.EXPECT().GetEarningsBySource(gomock.Any(), "cr-1", gomock.Any(), gomock.Any()).Return(nil, nil)

	gomock.InOrder(
		deps.reports.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, report *domain.AnalyticsReport) error {
				assert.Equal(t, "rep-completed", report.ID)
				return saveErr
			}),
		deps.reports.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, report *domain.AnalyticsReport) error {
				assert.Equal(t, domain.ReportStatusFailed, report.Status)
				assert.Equal(t, "rep-failed", report.ID)
				return nil
			}),
	)

	_, err := service.GenerateCreatorReport(context.Background(), "cr-1", domain.ReportTypeWeekly)
	assert.ErrorIs(t, err, saveErr)

	var reportErr *ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, "rep-failed", reportErr.ReportID)
}

func TestGenerateCreatorReportNotFound(t *testing.T) {
	service, deps := newReportService(t, false)

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "missing").Return(nil, nil)

	_, err := service.GenerateCreatorReport(context.Background(), "missing", domain.ReportTypeMonthly)
	assert.ErrorIs(t, err, domain.ErrCreatorNotFound)
}

func TestGenerateCreatorReportInvalidType(t *testing.T) {
	service, _ := newReportService(t, false)

	_, err := service.GenerateCreatorReport(context.Background(), "cr-1", domain.ReportType("yearly"))
	assert.ErrorIs(t, err, domain.ErrInvalidReportType)
}

func TestGenerateCreatorReportDeliveryFailuresAreNotFatal(t *testing.T) {
	service, deps := newReportService(t, true)

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(sampleCreator("cr-1"), nil)
	deps.snapshots.EXPECT().ListCreatorSnapshots(gomock.Any(), "cr-1", gomock.Any(), gomock.Any()).Return(sampleSnapshots("cr-1"), nil)
	deps.earnings.EXPECT().GetEarningsBySource(gomock.Any(), "cr-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.reports.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	deps.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("AccessDenied"))
	deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("MessageRejected"))

	report, err := service.GenerateCreatorReport(context.Background(), "cr-1", domain.ReportTypeMonthly)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportStatusCompleted, report.Status)
	assert.Nil(t, report.FileURL)
}

func TestGenerateCreatorReportSkipsEmailWithoutAddress(t *testing.T) {
	service, deps := newReportService(t, true)
	creator := sampleCreator("cr-1")
	creator.Email = nil

	deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), "cr-1").Return(creator, nil)
	deps.snapshots.EXPECT().ListCreatorSnapshots(gomock.Any(), "cr-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.earnings.EXPECT().GetEarningsBySource(gomock.Any(), "cr-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.reports.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	deps.store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/r.html", nil)
	deps.reports.EXPECT().AttachFileURL(gomock.Any(), "rep-1", "https://cdn/r.html").Return(nil)

	report, err := service.GenerateCreatorReport(context.Background(), "cr-1", domain.ReportTypeQuarterly)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Recommendations)
}

func TestGenerateAllReportsCollectsFailures(t *testing.T) {
	service, deps := newReportService(t, false)

	creators := []*domain.Creator{sampleCreator("c1"), sampleCreator("c2"), sampleCreator("c3")}
	deps.creators.EXPECT().ListActiveCreators(gomock.Any()).Return(creators, nil)

	for _, creator := range creators {
		deps.creators.EXPECT().GetCreatorWithPlatforms(gomock.Any(), creator.ID).Return(creator, nil)
	}

	deps.snapshots.EXPECT().ListCreatorSnapshots(gomock.Any(), "c1", gomock.Any(), gomock.Any()).Return(sampleSnapshots("c1"), nil)
	deps.snapshots.EXPECT().ListCreatorSnapshots(gomock.Any(), "c2", gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	deps.snapshots.EXPECT().ListCreatorSnapshots(gomock.Any(), "c3", gomock.Any(), gomock.Any()).Return(sampleSnapshots("c3"), nil)
	deps.earnings.EXPECT().GetEarningsBySource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	var statuses []domain.ReportStatus
	deps.reports.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *domain.AnalyticsReport) error {
			statuses = append(statuses, report.Status)
			return nil
		}).
		Times(3)

	result, err := service.GenerateAllReports(context.Background(), domain.ReportTypeMonthly)
	require.NoError(t, err)

	assert.Equal(t, []string{"user-c1", "user-c3"}, result.Success)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "user-c2", result.Failed[0].Username)
	assert.Contains(t, result.Failed[0].Error, "boom")
	assert.Equal(t, []domain.ReportStatus{domain.ReportStatusCompleted, domain.ReportStatusFailed, domain.ReportStatusCompleted}, statuses)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, deps.sleeps)
}

func TestGenerateAllReportsLoadFailure(t *testing.T) {
	service, deps := newReportService(t, false)

	deps.creators.EXPECT().ListActiveCreators(gomock.Any()).Return(nil, errors.New("db down"))

	result, err := service.GenerateAllReports(context.Background(), domain.ReportTypeWeekly)
	require.Error(t, err)
	assert.Nil(t, result)
}
