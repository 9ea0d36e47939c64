package reporting

import (
	"sort"

	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/pkg/utils"
)

// BuildReportMetrics consolida os snapshots diários do período e a receita por fonte.
// Os snapshots chegam ordenados por data.
func BuildReportMetrics(snapshots []*domain.DailyMetricsSnapshot, revenue []domain.RevenueSource) *domain.ReportMetrics {
	metrics := &domain.ReportMetrics{
		SnapshotCount: len(snapshots),
		Revenue:       buildRevenue(revenue),
		ContentPerformance: domain.ContentPerformance{
			Platforms: []domain.PlatformContent{},
		},
	}

	if len(snapshots) == 0 {
		return metrics
	}

	first := make(map[string]*domain.DailyMetricsSnapshot)
	last := make(map[string]*domain.DailyMetricsSnapshot)
	byPlatform := make(map[domain.Platform][]*domain.DailyMetricsSnapshot)

	for _, snapshot := range snapshots {
		if _, ok := first[snapshot.PlatformConnectionID]; !ok {
			first[snapshot.PlatformConnectionID] = snapshot
		}
		last[snapshot.PlatformConnectionID] = snapshot
		byPlatform[snapshot.Platform] = append(byPlatform[snapshot.Platform], snapshot)
	}

	metrics.FollowerGrowth = buildFollowerGrowth(first, last)
	metrics.Engagement = buildEngagement(snapshots, last)
	metrics.ContentPerformance = buildContentPerformance(byPlatform, last)

	return metrics
}

func buildFollowerGrowth(first, last map[string]*domain.DailyMetricsSnapshot) domain.FollowerGrowth {
	growth := domain.FollowerGrowth{}

	for connectionID, snapshot := range first {
		growth.StartFollowers += snapshot.Followers
		growth.EndFollowers += last[connectionID].Followers
	}

	growth.NetGrowth = growth.EndFollowers - growth.StartFollowers
	growth.GrowthRate = utils.RoundWithTwoDecimalPlace(
		utils.Percent(float64(growth.NetGrowth), float64(growth.StartFollowers)),
	)

	return growth
}

// buildEngagement faz a média das taxas diárias. Alcance e impressões já são janelas
// móveis na origem, então entram apenas pelo último snapshot de cada conexão.
func buildEngagement(snapshots []*domain.DailyMetricsSnapshot, last map[string]*domain.DailyMetricsSnapshot) domain.EngagementSummary {
	var engagement, likes, comments, shares float64

	for _, snapshot := range snapshots {
		engagement += snapshot.EngagementRate
		likes += snapshot.AvgLikes
		comments += snapshot.AvgComments
		shares += snapshot.AvgShares
	}

	count := float64(len(snapshots))
	summary := domain.EngagementSummary{
		AvgEngagementRate: utils.RoundWithTwoDecimalPlace(engagement / count),
		AvgLikes:          utils.RoundWithTwoDecimalPlace(likes / count),
		AvgComments:       utils.RoundWithTwoDecimalPlace(comments / count),
		AvgShares:         utils.RoundWithTwoDecimalPlace(shares / count),
	}

	for _, snapshot := range last {
		summary.TotalReach += snapshot.Reach
		summary.TotalImpressions += snapshot.Impressions
		summary.TotalProfileViews += snapshot.ProfileViews
	}

	return summary
}

func buildContentPerformance(
	byPlatform map[domain.Platform][]*domain.DailyMetricsSnapshot,
	last map[string]*domain.DailyMetricsSnapshot,
) domain.ContentPerformance {
	posts := make(map[domain.Platform]int64)
	for _, snapshot := range last {
		posts[snapshot.Platform] += snapshot.PostsCount
	}

	content := domain.ContentPerformance{
		Platforms: make([]domain.PlatformContent, 0, len(byPlatform)),
	}

	for platform, snapshots := range byPlatform {
		var views, engagement float64
		for _, snapshot := range snapshots {
			views += snapshot.AvgViews
			engagement += snapshot.EngagementRate
		}

		count := float64(len(snapshots))
		content.Platforms = append(content.Platforms, domain.PlatformContent{
			Platform:       platform,
			PostsCount:     posts[platform],
			AvgViews:       utils.RoundWithTwoDecimalPlace(views / count),
			EngagementRate: utils.RoundWithTwoDecimalPlace(engagement / count),
		})
		content.TotalPosts += posts[platform]
	}

	sort.Slice(content.Platforms, func(i, j int) bool {
		if content.Platforms[i].EngagementRate != content.Platforms[j].EngagementRate {
			return content.Platforms[i].EngagementRate > content.Platforms[j].EngagementRate
		}
		return content.Platforms[i].Platform < content.Platforms[j].Platform
	})

	if len(content.Platforms) > 0 {
		best := content.Platforms[0].Platform
		content.BestPlatform = &best
	}

	return content
}

func buildRevenue(sources []domain.RevenueSource) domain.RevenueBreakdown {
	revenue := domain.RevenueBreakdown{
		BySource: make([]domain.RevenueSource, 0, len(sources)),
	}

	for _, source := range sources {
		revenue.Total += source.Amount
		revenue.BySource = append(revenue.BySource, source)
	}
	revenue.Total = utils.RoundWithTwoDecimalPlace(revenue.Total)

	return revenue
}
