package tiktokclient

import (
	"context"

	tiktokdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/tiktok/domain"
)

const userInfoPath = "/user/info/"

func (c *TikTokClient) GetUserInfo(ctx context.Context, accessToken string) (*tiktokdomain.User, error) {
	result := &tiktokdomain.UserInfoResponse{}
	errResult := &tiktokdomain.ErrorResponse{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("fields", "open_id,union_id,display_name,username,follower_count,following_count,likes_count,video_count").
		SetResult(result).
		SetError(errResult).
		Get(userInfoPath)
	if err != nil {
		return nil, wrapTransport(err, userInfoPath)
	}

	apiErr := result.Error
	if resp.IsError() {
		apiErr = errResult.Error
	}
	if err := checkResponse(userInfoPath, resp, apiErr); err != nil {
		return nil, err
	}

	return &result.Data.User, nil
}
