package tiktok

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/internal/usecases/aggregating"
	"github.com/vfg2006/creator-automation/pkg/utils"
)

const topHashtagsLimit = 10

type TikTokIntegrator struct {
	Client tiktokclient.Client
	now    func() time.Time
}

func New(client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *TikTokIntegrator) Platform() domain.Platform {
	return domain.PlatformTikTok
}

func (s *TikTokIntegrator) FetchMetrics(ctx context.Context, conn *domain.PlatformConnection) (*domain.PlatformMetrics, error) {
	user, err := s.Client.GetUserInfo(ctx, conn.AccessToken)
	if err != nil {
		return nil, s.fail(conn, "user_info", err)
	}

	videos, err := s.Client.ListVideos(ctx, conn.AccessToken, tiktokclient.VideoLimit)
	if err != nil {
		return nil, s.fail(conn, "video_list", err)
	}

	metrics := FactoryPlatformMetrics(user, videos)
	metrics.LastUpdated = s.now()

	logrus.WithFields(logrus.Fields{
		"connection_id": conn.ID,
		"platform":      domain.PlatformTikTok,
		"videos":        len(videos),
	}).Debug("tiktok: metrics fetched")

	return metrics, nil
}

func (s *TikTokIntegrator) fail(conn *domain.PlatformConnection, op string, err error) error {
	logrus.WithFields(logrus.Fields{
		"connection_id": conn.ID,
		"platform":      domain.PlatformTikTok,
		"op":            op,
		"error":         err.Error(),
	}).Warn("tiktok: request failed")

	return domain.NewPlatformError(domain.PlatformTikTok, op, err)
}

// FactoryPlatformMetrics converte user info e lista de vídeos em PlatformMetrics.
// O engajamento usa likes+comments+shares sobre a contagem real de seguidores.
func FactoryPlatformMetrics(user *tiktokdomain.User, videos []tiktokdomain.Video) *domain.PlatformMetrics {
	likes := func(v tiktokdomain.Video) *int64 { return v.LikeCount }
	comments := func(v tiktokdomain.Video) *int64 { return v.CommentCount }
	shares := func(v tiktokdomain.Video) *int64 { return v.ShareCount }
	views := func(v tiktokdomain.Video) *int64 { return v.ViewCount }

	totalEngagement := aggregating.SumOf(videos, likes) +
		aggregating.SumOf(videos, comments) +
		aggregating.SumOf(videos, shares)

	texts := make([]string, 0, len(videos)*2)
	for _, v := range videos {
		texts = append(texts, v.Title, v.VideoDescription)
	}

	return &domain.PlatformMetrics{
		Followers:      user.FollowerCount,
		Following:      user.FollowingCount,
		PostsCount:     user.VideoCount,
		AvgLikes:       utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(videos, likes)),
		AvgComments:    utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(videos, comments)),
		AvgShares:      utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(videos, shares)),
		AvgViews:       utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(videos, views)),
		EngagementRate: utils.RoundWithTwoDecimalPlace(aggregating.EngagementRate(totalEngagement, int64(len(videos)), user.FollowerCount)),
		TotalLikes:     user.LikesCount,
		TopHashtags:    aggregating.TopHashtags(texts, topHashtagsLimit),
	}
}
