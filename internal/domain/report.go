package domain

import (
	"time"
)

type ReportType string

const (
	ReportTypeDaily     ReportType = "daily"
	ReportTypeWeekly    ReportType = "weekly"
	ReportTypeMonthly   ReportType = "monthly"
	ReportTypeQuarterly ReportType = "quarterly"
)

func IsValidReportType(t string) bool {
	switch ReportType(t) {
	case ReportTypeDaily, ReportTypeWeekly, ReportTypeMonthly, ReportTypeQuarterly:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusCompleted ReportStatus = "completed"
	ReportStatusFailed    ReportStatus = "failed"
)

// ReportPeriod é a janela de calendário coberta por um relatório. As datas são inclusivas.
type ReportPeriod struct {
	Start time.Time
	End   time.Time
}

func (p ReportPeriod) StartDate() string {
	return p.Start.Format(time.DateOnly)
}

func (p ReportPeriod) EndDate() string {
	return p.End.Format(time.DateOnly)
}

type FollowerGrowth struct {
	StartFollowers int64   `json:"start_followers"`
	EndFollowers   int64   `json:"end_followers"`
	NetGrowth      int64   `json:"net_growth"`
	GrowthRate     float64 `json:"growth_rate"`
}

type EngagementSummary struct {
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	AvgLikes          float64 `json:"avg_likes"`
	AvgComments       float64 `json:"avg_comments"`
	AvgShares         float64 `json:"avg_shares"`
	TotalReach        int64   `json:"total_reach"`
	TotalImpressions  int64   `json:"total_impressions"`
	TotalProfileViews int64   `json:"total_profile_views"`
}

type PlatformContent struct {
	Platform       Platform `json:"platform"`
	PostsCount     int64    `json:"posts_count"`
	AvgViews       float64  `json:"avg_views"`
	EngagementRate float64  `json:"engagement_rate"`
}

type ContentPerformance struct {
	TotalPosts   int64             `json:"total_posts"`
	BestPlatform *Platform         `json:"best_platform"`
	Platforms    []PlatformContent `json:"platforms"`
}

type RevenueSource struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

type RevenueBreakdown struct {
	Total    float64         `json:"total"`
	BySource []RevenueSource `json:"by_source"`
}

// ReportMetrics é o payload de métricas persistido em analytics_reports.metrics
type ReportMetrics struct {
	FollowerGrowth     FollowerGrowth     `json:"follower_growth"`
	Engagement         EngagementSummary  `json:"engagement"`
	ContentPerformance ContentPerformance `json:"content_performance"`
	Revenue            RevenueBreakdown   `json:"revenue"`
	SnapshotCount      int                `json:"snapshot_count"`
}

func (m *ReportMetrics) HasData() bool {
	return m != nil && m.SnapshotCount > 0
}

type ReportInsights struct {
	BestPostingTimes  []string `json:"best_posting_times"`
	TopHashtags       []string `json:"top_hashtags"`
	GrowthOpportunity string   `json:"growth_opportunity"`
}

type AnalyticsReport struct {
	ID              string          `json:"id"`
	CreatorID       string          `json:"creator_id"`
	Username        string          `json:"username,omitempty"`
	ReportType      ReportType      `json:"report_type"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	Metrics         *ReportMetrics  `json:"metrics"`
	Insights        *ReportInsights `json:"insights"`
	Recommendations []string        `json:"recommendations"`
	Status          ReportStatus    `json:"status"`
	ErrorMessage    *string         `json:"error_message"`
	FileURL         *string         `json:"file_url"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

type ReportFailure struct {
	Username string `json:"username"`
	Error    string `json:"error"`
}

// ReportBatchResult é o retorno de GenerateAllReports: falhas individuais são dados, não erros
type ReportBatchResult struct {
	Success []string        `json:"success"`
	Failed  []ReportFailure `json:"failed"`
}
