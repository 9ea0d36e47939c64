package instagramclient

import (
	"context"
	"strconv"
	"time"

	instagramdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/instagram/domain"
)

// GetInsights busca impressions, reach e profile_views diários na janela [since, until]
func (c *InstagramClient) GetInsights(ctx context.Context, accessToken string, since, until time.Time) (*instagramdomain.InsightsResponse, error) {
	insights := &instagramdomain.InsightsResponse{}

	err := c.get(ctx, "/me/insights", accessToken, map[string]string{
		"metric": "impressions,reach,profile_views",
		"period": "day",
		"since":  strconv.FormatInt(since.Unix(), 10),
		"until":  strconv.FormatInt(until.Unix(), 10),
	}, insights)
	if err != nil {
		return nil, err
	}

	return insights, nil
}
