package youtubeclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	youtubedomain "github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

const SearchLimit = 25

// ChannelRef identifica o canal consultado: pelo id externo ou, quando vazio,
// pelo canal dono do access token
type ChannelRef struct {
	ChannelID   string
	AccessToken string
}

type Client interface {
	GetChannel(ctx context.Context, ref ChannelRef) (*youtubedomain.Channel, error)
	SearchRecentVideoIDs(ctx context.Context, ref ChannelRef, channelID string, limit int) ([]string, error)
	GetVideos(ctx context.Context, ref ChannelRef, ids []string) ([]youtubedomain.Video, error)
}

type YouTubeClient struct {
	http   *resty.Client
	apiKey string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	httpClient.JSONMarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal
	httpClient.JSONUnmarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal

	return &YouTubeClient{http: httpClient, apiKey: apiKey}
}

func (c *YouTubeClient) get(ctx context.Context, path string, ref ChannelRef, params map[string]string, result any) error {
	apiErr := &youtubedomain.ErrorResponse{}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("key", c.apiKey).
		SetResult(result).
		SetError(apiErr)
	if ref.AccessToken != "" {
		req.SetAuthToken(ref.AccessToken)
	}

	resp, err := req.Get(path)
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
