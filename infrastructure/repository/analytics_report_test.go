package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-automation/internal/domain"
)

func TestSaveReport(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsReportRepository(db)

	generatedAt := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	report := &domain.AnalyticsReport{
		ID:              "rep-1",
		CreatorID:       "cr-1",
		ReportType:      domain.ReportTypeMonthly,
		PeriodStart:     "2024-02-01",
		PeriodEnd:       "2024-02-29",
		Metrics:         &domain.ReportMetrics{SnapshotCount: 3},
		Insights:        &domain.ReportInsights{TopHashtags: []string{"#a"}},
		Recommendations: []string{"Post more"},
		Status:          domain.ReportStatusCompleted,
		GeneratedAt:     generatedAt,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analytics_reports (id,creator_id,report_type,period_start,period_end,metrics,insights,recommendations,status,error_message,file_url,generated_at)")).
		WithArgs("rep-1", "cr-1", domain.ReportTypeMonthly, "2024-02-01", "2024-02-29",
			sqlmock.AnyArg(), sqlmock.AnyArg(), pq.Array([]string{"Post more"}),
			domain.ReportStatusCompleted, nil, nil, generatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), report))
}

func TestSaveFailedReportWithoutMetrics(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsReportRepository(db)

	mock.ExpectExec("INSERT INTO analytics_reports").
		WithArgs("rep-2", "cr-1", domain.ReportTypeWeekly, "2024-03-08", "2024-03-15",
			nil, nil, pq.Array([]string{}), domain.ReportStatusFailed, strPtr("db down"), nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), &domain.AnalyticsReport{
		ID:           "rep-2",
		CreatorID:    "cr-1",
		ReportType:   domain.ReportTypeWeekly,
		PeriodStart:  "2024-03-08",
		PeriodEnd:    "2024-03-15",
		Status:       domain.ReportStatusFailed,
		ErrorMessage: strPtr("db down"),
	}))
}

func TestAttachFileURL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsReportRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE analytics_reports SET file_url = $1 WHERE id = $2")).
		WithArgs("https://cdn/reports/cr-1/rep-1.html", "rep-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AttachFileURL(context.Background(), "rep-1", "https://cdn/reports/cr-1/rep-1.html"))

	mock.ExpectExec("UPDATE analytics_reports").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.Error(t, repo.AttachFileURL(context.Background(), "missing", "x"))
}

func TestListRecentReports(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsReportRepository(db)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY ar.generated_at DESC LIMIT 10")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "creator_id", "username", "report_type", "period_start", "period_end", "recommendations", "status", "error_message", "file_url", "generated_at"}).
			AddRow("rep-1", "cr-1", "alice", "monthly", start, end, []byte(`{"Keep posting","Use reels"}`), "completed", nil, "https://cdn/rep-1.html", end))

	reports, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "alice", reports[0].Username)
	assert.Equal(t, "2024-02-01", reports[0].PeriodStart)
	assert.Equal(t, []string{"Keep posting", "Use reels"}, reports[0].Recommendations)
	assert.Equal(t, "https://cdn/rep-1.html", *reports[0].FileURL)
	assert.Nil(t, reports[0].ErrorMessage)
}
