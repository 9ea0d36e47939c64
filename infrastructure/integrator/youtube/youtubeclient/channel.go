package youtubeclient

import (
	"context"
	"errors"

	youtubedomain "github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/domain"
)

var ErrChannelNotFound = errors.New("channel not found")

func (c *YouTubeClient) GetChannel(ctx context.Context, ref ChannelRef) (*youtubedomain.Channel, error) {
	params := map[string]string{"part": "statistics"}
	if ref.ChannelID != "" {
		params["id"] = ref.ChannelID
	} else {
		params["mine"] = "true"
	}

	result := &youtubedomain.ChannelListResponse{}
	if err := c.get(ctx, "/channels", ref, params, result); err != nil {
		return nil, err
	}

	if len(result.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	return &result.Items[0], nil
}
