package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-automation/internal/domain"
)

func TestTemplateRenderer(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	displayName := "Alice <script>"
	best := domain.PlatformTikTok
	fileURL := "https://cdn.example.com/reports/cr-1/rep-1.html"

	creator := &domain.Creator{ID: "cr-1", Username: "alice", DisplayName: &displayName}
	report := &domain.AnalyticsReport{
		ID:          "rep-1",
		CreatorID:   "cr-1",
		ReportType:  domain.ReportTypeMonthly,
		PeriodStart: "2024-02-01",
		PeriodEnd:   "2024-02-29",
		GeneratedAt: time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC),
		FileURL:     &fileURL,
		Metrics: &domain.ReportMetrics{
			SnapshotCount:  2,
			FollowerGrowth: domain.FollowerGrowth{StartFollowers: 100, EndFollowers: 120, NetGrowth: 20, GrowthRate: 20},
			ContentPerformance: domain.ContentPerformance{
				TotalPosts:   12,
				BestPlatform: &best,
				Platforms:    []domain.PlatformContent{{Platform: best, PostsCount: 12, AvgViews: 1500.5, EngagementRate: 6.25}},
			},
			Revenue: domain.RevenueBreakdown{Total: 49.9, BySource: []domain.RevenueSource{{Source: "subscription", Amount: 49.9, Count: 5}}},
		},
		Insights: &domain.ReportInsights{
			GrowthOpportunity: "Audience grew 20.00%.",
			TopHashtags:       []string{"#dance", "#fyp"},
		},
		Recommendations: []string{"Keep posting"},
	}

	html, err := renderer.RenderReport(creator, report)
	require.NoError(t, err)

	assert.Contains(t, html, "Monthly report for Alice &lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "2024-02-01 to 2024-02-29")
	assert.Contains(t, html, "+20")
	assert.Contains(t, html, "strongest engagement on tiktok")
	assert.Contains(t, html, "1500.50")
	assert.Contains(t, html, "subscription")
	assert.Contains(t, html, "#dance #fyp")
	assert.Contains(t, html, "<li>Keep posting</li>")

	email, err := renderer.RenderEmail(creator, report)
	require.NoError(t, err)
	assert.Contains(t, email, "Your monthly report")
	assert.Contains(t, email, fileURL)
	assert.Contains(t, email, "Keep posting")
}

func TestTemplateRendererHandlesFailedReport(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	html, err := renderer.RenderReport(&domain.Creator{Username: "bob"}, &domain.AnalyticsReport{ReportType: domain.ReportTypeWeekly})
	require.NoError(t, err)
	assert.Contains(t, html, "Weekly report for bob")
}
