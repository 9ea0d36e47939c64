package instagramclient

import (
	"context"

	instagramdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/instagram/domain"
)

func (c *InstagramClient) GetProfile(ctx context.Context, accessToken string) (*instagramdomain.Profile, error) {
	profile := &instagramdomain.Profile{}

	err := c.get(ctx, "/me", accessToken, map[string]string{
		"fields": "id,username,account_type,media_count",
	}, profile)
	if err != nil {
		return nil, err
	}

	return profile, nil
}
