package youtubeclient

import (
	"context"
	"strconv"
	"strings"

	youtubedomain "github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/domain"
)

// SearchRecentVideoIDs retorna os ids dos vídeos mais recentes do canal
func (c *YouTubeClient) SearchRecentVideoIDs(ctx context.Context, ref ChannelRef, channelID string, limit int) ([]string, error) {
	if limit <= 0 || limit > SearchLimit {
		limit = SearchLimit
	}

	result := &youtubedomain.SearchListResponse{}
	err := c.get(ctx, "/search", ref, map[string]string{
		"part":       "id",
		"channelId":  channelID,
		"maxResults": strconv.Itoa(limit),
		"order":      "date",
		"type":       "video",
	}, result)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}

	return ids, nil
}

// GetVideos busca as estatísticas dos vídeos em uma única chamada
func (c *YouTubeClient) GetVideos(ctx context.Context, ref ChannelRef, ids []string) ([]youtubedomain.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	result := &youtubedomain.VideoListResponse{}
	err := c.get(ctx, "/videos", ref, map[string]string{
		"part": "statistics",
		"id":   strings.Join(ids, ","),
	}, result)
	if err != nil {
		return nil, err
	}

	return result.Items, nil
}
