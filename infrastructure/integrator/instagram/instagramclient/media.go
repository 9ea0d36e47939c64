package instagramclient

import (
	"context"
	"strconv"

	instagramdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/instagram/domain"
)

func (c *InstagramClient) GetRecentMedia(ctx context.Context, accessToken string, limit int) ([]instagramdomain.Media, error) {
	if limit <= 0 || limit > MediaLimit {
		limit = MediaLimit
	}

	media := &instagramdomain.MediaResponse{}

	err := c.get(ctx, "/me/media", accessToken, map[string]string{
		"fields": "id,caption,media_type,like_count,comments_count,timestamp",
		"limit":  strconv.Itoa(limit),
	}, media)
	if err != nil {
		return nil, err
	}

	return media.Data, nil
}
