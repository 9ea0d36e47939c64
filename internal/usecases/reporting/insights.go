package reporting

import (
	"fmt"

	"github.com/vfg2006/creator-automation/internal/domain"
)

const maxReportHashtags = 10

// Janelas de publicação sugeridas por plataforma. Heurística fixa até existir
// histórico de horário por post.
var postingWindows = map[domain.Platform]string{
	domain.PlatformInstagram: "Instagram: weekdays 11:00-13:00 and 19:00-21:00",
	domain.PlatformTikTok:    "TikTok: Tuesday to Thursday 18:00-22:00",
	domain.PlatformYouTube:   "YouTube: Friday to Sunday 14:00-17:00",
}

// DeriveInsights gera os insights descritivos e as recomendações do relatório.
// Sempre devolve ao menos uma recomendação.
func DeriveInsights(creator *domain.Creator, metrics *domain.ReportMetrics) (*domain.ReportInsights, []string) {
	insights := &domain.ReportInsights{
		BestPostingTimes: bestPostingTimes(creator),
		TopHashtags:      topHashtags(creator),
	}

	if !metrics.HasData() {
		insights.GrowthOpportunity = "Not enough data in this period yet. Metrics are collected every few hours once a platform is connected."
		return insights, []string{
			"Keep your platforms connected so the next syncs can build your history.",
		}
	}

	insights.GrowthOpportunity = growthOpportunity(metrics)

	return insights, recommendations(metrics, insights)
}

func bestPostingTimes(creator *domain.Creator) []string {
	times := []string{}
	seen := make(map[domain.Platform]bool)

	for _, conn := range creator.Platforms {
		window, ok := postingWindows[conn.Platform]
		if !ok || seen[conn.Platform] {
			continue
		}
		seen[conn.Platform] = true
		times = append(times, window)
	}

	return times
}

// topHashtags intercala as hashtags de cada conexão, preservando a ordem de frequência
// de cada plataforma
func topHashtags(creator *domain.Creator) []string {
	lists := make([][]string, 0, len(creator.Platforms))
	for _, conn := range creator.Platforms {
		if conn.Metrics != nil && len(conn.Metrics.TopHashtags) > 0 {
			lists = append(lists, conn.Metrics.TopHashtags)
		}
	}

	hashtags := []string{}
	seen := make(map[string]bool)

	for i := 0; len(hashtags) < maxReportHashtags; i++ {
		added := false
		for _, list := range lists {
			if i >= len(list) {
				continue
			}
			added = true
			if tag := list[i]; !seen[tag] && len(hashtags) < maxReportHashtags {
				seen[tag] = true
				hashtags = append(hashtags, tag)
			}
		}
		if !added {
			break
		}
	}

	return hashtags
}

func growthOpportunity(metrics *domain.ReportMetrics) string {
	growth := metrics.FollowerGrowth
	best := metrics.ContentPerformance.BestPlatform

	switch {
	case growth.NetGrowth < 0:
		return fmt.Sprintf("Audience shrank by %d followers (%.2f%%). Revisit the content that performed best before the drop.", -growth.NetGrowth, growth.GrowthRate)
	case best != nil && growth.GrowthRate < 1:
		return fmt.Sprintf("Growth is flat at %.2f%%. %s has your strongest engagement, so focus new formats there.", growth.GrowthRate, *best)
	case best != nil:
		return fmt.Sprintf("Audience grew %.2f%%. Double down on %s, where engagement is highest.", growth.GrowthRate, *best)
	default:
		return fmt.Sprintf("Audience grew %.2f%% in this period.", growth.GrowthRate)
	}
}

func recommendations(metrics *domain.ReportMetrics, insights *domain.ReportInsights) []string {
	recs := []string{}

	if metrics.Engagement.AvgEngagementRate < 2 {
		recs = append(recs, "Engagement is below 2%. Ask direct questions in captions and reply to comments in the first hour.")
	} else {
		recs = append(recs, fmt.Sprintf("Engagement of %.2f%% is healthy. Keep the current posting rhythm.", metrics.Engagement.AvgEngagementRate))
	}

	if metrics.FollowerGrowth.NetGrowth <= 0 {
		recs = append(recs, "Follower count did not grow. Try collaborations or cross-posting your best content.")
	}

	if len(metrics.ContentPerformance.Platforms) == 1 {
		recs = append(recs, "All your activity is on one platform. Connecting a second one diversifies your reach.")
	}

	if metrics.Revenue.Total == 0 {
		recs = append(recs, "No earnings were recorded in this period. Consider a subscription tier or a limited-time offer.")
	} else if len(metrics.Revenue.BySource) == 1 {
		recs = append(recs, fmt.Sprintf("All earnings came from %s. Adding another revenue source lowers risk.", metrics.Revenue.BySource[0].Source))
	}

	if len(insights.TopHashtags) > 0 {
		recs = append(recs, fmt.Sprintf("Your top hashtag was %s. Reuse it alongside one or two niche tags.", insights.TopHashtags[0]))
	}

	return recs
}
