package tiktokclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	tiktokdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/tiktok/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

// VideoLimit é o máximo de vídeos por página aceito por /video/list/
const VideoLimit = 20

type Client interface {
	GetUserInfo(ctx context.Context, accessToken string) (*tiktokdomain.User, error)
	ListVideos(ctx context.Context, accessToken string, maxCount int) ([]tiktokdomain.Video, error)
}

type TikTokClient struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	httpClient.JSONMarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal
	httpClient.JSONUnmarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal

	return &TikTokClient{http: httpClient}
}

func checkResponse(path string, resp *resty.Response, apiErr tiktokdomain.APIError) error {
	if resp.IsError() {
		if apiErr.Code != "" {
			return fmt.Errorf("request %s: status %d: %s", path, resp.StatusCode(), apiErr.Error())
		}
		return fmt.Errorf("request %s: status %d", path, resp.StatusCode())
	}

	if !apiErr.IsOK() {
		return fmt.Errorf("request %s: %s", path, apiErr.Error())
	}

	return nil
}

func wrapTransport(err error, path string) error {
	return errors.Wrapf(err, "request %s", path)
}
