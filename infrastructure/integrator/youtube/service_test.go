package youtube

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	youtubedomain "github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/youtubeclient/mocks"
	"github.com/vfg2006/creator-automation/internal/domain"
	"go.uber.org/mock/gomock"
)

func video(views, likes, comments string) youtubedomain.Video {
	return youtubedomain.Video{Statistics: youtubedomain.VideoStatistics{
		ViewCount:    views,
		LikeCount:    likes,
		CommentCount: comments,
	}}
}

func TestFetchMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := New(client)
	svc.now = func() time.Time { return now }

	conn := &domain.PlatformConnection{ID: "conn-yt", PlatformUserID: "UC123", AccessToken: "ya29"}
	ref := youtubeclient.ChannelRef{ChannelID: "UC123", AccessToken: "ya29"}

	client.EXPECT().GetChannel(gomock.Any(), ref).Return(&youtubedomain.Channel{
		ID: "UC123",
		Statistics: youtubedomain.ChannelStatistics{
			SubscriberCount: "5000",
			VideoCount:      "120",
		},
	}, nil)
	client.EXPECT().SearchRecentVideoIDs(gomock.Any(), ref, "UC123", youtubeclient.SearchLimit).Return([]string{"a", "b", "c"}, nil)
	client.EXPECT().GetVideos(gomock.Any(), ref, []string{"a", "b", "c"}).Return([]youtubedomain.Video{
		video("1000", "80", "20"),
		video("500", "20", "5"),
		video("0", "", ""),
	}, nil)

	metrics, err := svc.FetchMetrics(context.Background(), conn)
	require.NoError(t, err)

	assert.Equal(t, int64(5000), metrics.Followers)
	assert.Equal(t, int64(120), metrics.PostsCount)
	assert.Equal(t, 500.0, metrics.AvgViews)
	assert.Equal(t, 50.0, metrics.AvgLikes)
	assert.Equal(t, 12.5, metrics.AvgComments)
	// (10% + 5% + 0%) / 3
	assert.Equal(t, 5.0, metrics.EngagementRate)
	assert.Equal(t, int64(100), metrics.TotalLikes)
	assert.Equal(t, now, metrics.LastUpdated)
}

func TestFactoryPlatformMetricsEngagementEdgeCases(t *testing.T) {
	channel := &youtubedomain.Channel{}

	assert.Zero(t, FactoryPlatformMetrics(channel, nil).EngagementRate)
	assert.Zero(t, FactoryPlatformMetrics(channel, []youtubedomain.Video{
		video("0", "3", "1"),
		video("", "2", "2"),
	}).EngagementRate)
}

func TestFetchMetricsSearchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	upstream := errors.New("status 403: quotaExceeded")

	client.EXPECT().GetChannel(gomock.Any(), gomock.Any()).Return(&youtubedomain.Channel{ID: "UC1"}, nil)
	client.EXPECT().SearchRecentVideoIDs(gomock.Any(), gomock.Any(), "UC1", gomock.Any()).Return(nil, upstream)

	metrics, err := New(client).FetchMetrics(context.Background(), &domain.PlatformConnection{ID: "c"})
	assert.Nil(t, metrics)

	var platformErr *domain.PlatformError
	require.ErrorAs(t, err, &platformErr)
	assert.Equal(t, domain.PlatformYouTube, platformErr.Platform)
	assert.Equal(t, "search", platformErr.Op)
	assert.Contains(t, err.Error(), "quotaExceeded")
}
