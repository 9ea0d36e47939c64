package domain

import "time"

// PlatformMetrics é o único formato que atravessa a fronteira dos adapters de plataforma.
// Campos que a plataforma não fornece ficam em zero.
type PlatformMetrics struct {
	Followers      int64     `json:"followers"`
	Following      int64     `json:"following"`
	PostsCount     int64     `json:"posts_count"`
	AvgLikes       float64   `json:"avg_likes"`
	AvgComments    float64   `json:"avg_comments"`
	AvgShares      float64   `json:"avg_shares"`
	AvgViews       float64   `json:"avg_views"`
	EngagementRate float64   `json:"engagement_rate"`
	Reach          int64     `json:"reach"`
	Impressions    int64     `json:"impressions"`
	ProfileViews   int64     `json:"profile_views"`
	TotalLikes     int64     `json:"total_likes"`
	TopHashtags    []string  `json:"top_hashtags,omitempty"`
	LastUpdated    time.Time `json:"last_updated"`
}

// DailyMetricsSnapshot é a linha diária de platform_metrics, única por (conexão, data)
type DailyMetricsSnapshot struct {
	ID                   int64     `json:"id"`
	PlatformConnectionID string    `json:"platform_connection_id"`
	CreatorID            string    `json:"creator_id,omitempty"`
	Platform             Platform  `json:"platform,omitempty"`
	Date                 string    `json:"date"`
	Followers            int64     `json:"followers"`
	Following            int64     `json:"following"`
	PostsCount           int64     `json:"posts_count"`
	AvgLikes             float64   `json:"avg_likes"`
	AvgComments          float64   `json:"avg_comments"`
	AvgShares            float64   `json:"avg_shares"`
	AvgViews             float64   `json:"avg_views"`
	EngagementRate       float64   `json:"engagement_rate"`
	Reach                int64     `json:"reach"`
	Impressions          int64     `json:"impressions"`
	ProfileViews         int64     `json:"profile_views"`
	CreatedAt            time.Time `json:"created_at"`
}

// NewDailyMetricsSnapshot copia as métricas normalizadas para a linha do dia.
// Métricas ausentes viram zero, nunca nulo.
func NewDailyMetricsSnapshot(connectionID string, date time.Time, m *PlatformMetrics) *DailyMetricsSnapshot {
	snapshot := &DailyMetricsSnapshot{
		PlatformConnectionID: connectionID,
		Date:                 date.Format(time.DateOnly),
	}
	if m == nil {
		return snapshot
	}

	snapshot.Followers = m.Followers
	snapshot.Following = m.Following
	snapshot.PostsCount = m.PostsCount
	snapshot.AvgLikes = m.AvgLikes
	snapshot.AvgComments = m.AvgComments
	snapshot.AvgShares = m.AvgShares
	snapshot.AvgViews = m.AvgViews
	snapshot.EngagementRate = m.EngagementRate
	snapshot.Reach = m.Reach
	snapshot.Impressions = m.Impressions
	snapshot.ProfileViews = m.ProfileViews

	return snapshot
}
