package instagramclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	instagramdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/instagram/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

const MediaLimit = 25

type Client interface {
	GetProfile(ctx context.Context, accessToken string) (*instagramdomain.Profile, error)
	GetInsights(ctx context.Context, accessToken string, since, until time.Time) (*instagramdomain.InsightsResponse, error)
	GetRecentMedia(ctx context.Context, accessToken string, limit int) ([]instagramdomain.Media, error)
}

type InstagramClient struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	httpClient.JSONMarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal
	httpClient.JSONUnmarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal

	return &InstagramClient{http: httpClient}
}

func (c *InstagramClient) get(ctx context.Context, path, accessToken string, params map[string]string, result any) error {
	apiErr := &instagramdomain.ErrorResponse{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("access_token", accessToken).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return errors.Wrapf(err, "request %s", path)
	}

	if resp.IsError() {
		if msg := apiErr.String(); msg != "" {
			return fmt.Errorf("request %s: status %d: %s", path, resp.StatusCode(), msg)
		}
		return fmt.Errorf("request %s: status %d", path, resp.StatusCode())
	}

	return nil
}
