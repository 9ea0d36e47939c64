package tiktokclient

import (
	"context"

	tiktokdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/tiktok/domain"
)

const videoListPath = "/video/list/"

func (c *TikTokClient) ListVideos(ctx context.Context, accessToken string, maxCount int) ([]tiktokdomain.Video, error) {
	if maxCount <= 0 || maxCount > VideoLimit {
		maxCount = VideoLimit
	}

	result := &tiktokdomain.VideoListResponse{}
	errResult := &tiktokdomain.ErrorResponse{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("fields", "id,title,video_description,create_time,like_count,comment_count,share_count,view_count").
		SetBody(tiktokdomain.VideoListRequest{MaxCount: maxCount}).
		SetResult(result).
		SetError(errResult).
		Post(videoListPath)
	if err != nil {
		return nil, wrapTransport(err, videoListPath)
	}

	apiErr := result.Error
	if resp.IsError() {
		apiErr = errResult.Error
	}
	if err := checkResponse(videoListPath, resp, apiErr); err != nil {
		return nil, err
	}

	return result.Data.Videos, nil
}
