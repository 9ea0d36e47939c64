package youtube

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	youtubedomain "github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/internal/usecases/aggregating"
	"github.com/vfg2006/creator-automation/pkg/utils"
)

type YouTubeIntegrator struct {
	Client youtubeclient.Client
	now    func() time.Time
}

func New(client youtubeclient.Client) *YouTubeIntegrator {
	return &YouTubeIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *YouTubeIntegrator) Platform() domain.Platform {
	return domain.PlatformYouTube
}

// FetchMetrics busca as estatísticas do canal, os ids dos vídeos recentes
// e as estatísticas desses vídeos, nessa ordem
func (s *YouTubeIntegrator) FetchMetrics(ctx context.Context, conn *domain.PlatformConnection) (*domain.PlatformMetrics, error) {
	ref := youtubeclient.ChannelRef{
		ChannelID:   conn.PlatformUserID,
		AccessToken: conn.AccessToken,
	}

	channel, err := s.Client.GetChannel(ctx, ref)
	if err != nil {
		return nil, s.fail(conn, "channels", err)
	}

	ids, err := s.Client.SearchRecentVideoIDs(ctx, ref, channel.ID, youtubeclient.SearchLimit)
	if err != nil {
		return nil, s.fail(conn, "search", err)
	}

	videos, err := s.Client.GetVideos(ctx, ref, ids)
	if err != nil {
		return nil, s.fail(conn, "videos", err)
	}

	metrics := FactoryPlatformMetrics(channel, videos)
	metrics.LastUpdated = s.now()

	logrus.WithFields(logrus.Fields{
		"connection_id": conn.ID,
		"platform":      domain.PlatformYouTube,
		"videos":        len(videos),
	}).Debug("youtube: metrics fetched")

	return metrics, nil
}

func (s *YouTubeIntegrator) fail(conn *domain.PlatformConnection, op string, err error) error {
	logrus.WithFields(logrus.Fields{
		"connection_id": conn.ID,
		"platform":      domain.PlatformYouTube,
		"op":            op,
		"error":         err.Error(),
	}).Warn("youtube: request failed")

	return domain.NewPlatformError(domain.PlatformYouTube, op, err)
}

type videoCounts struct {
	views    *int64
	likes    *int64
	comments *int64
}

// FactoryPlatformMetrics converte canal e vídeos em PlatformMetrics. O engajamento
// é calculado por vídeo, (likes+comments)/views*100, e a média considera todos os
// vídeos buscados; vídeos sem views contam como 0.
func FactoryPlatformMetrics(channel *youtubedomain.Channel, videos []youtubedomain.Video) *domain.PlatformMetrics {
	counts := make([]videoCounts, 0, len(videos))
	for _, v := range videos {
		counts = append(counts, videoCounts{
			views:    parseCount(v.Statistics.ViewCount),
			likes:    parseCount(v.Statistics.LikeCount),
			comments: parseCount(v.Statistics.CommentCount),
		})
	}

	var rateSum float64
	for _, c := range counts {
		views := valueOf(c.views)
		if views <= 0 {
			continue
		}
		rateSum += float64(valueOf(c.likes)+valueOf(c.comments)) / float64(views) * 100
	}

	var engagementRate float64
	if len(counts) > 0 {
		engagementRate = rateSum / float64(len(counts))
	}

	stats := channel.Statistics

	return &domain.PlatformMetrics{
		Followers:      valueOf(parseCount(stats.SubscriberCount)),
		PostsCount:     valueOf(parseCount(stats.VideoCount)),
		AvgViews:       utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(counts, func(c videoCounts) *int64 { return c.views })),
		AvgLikes:       utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(counts, func(c videoCounts) *int64 { return c.likes })),
		AvgComments:    utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(counts, func(c videoCounts) *int64 { return c.comments })),
		EngagementRate: utils.RoundWithTwoDecimalPlace(engagementRate),
		TotalLikes:     aggregating.SumOf(counts, func(c videoCounts) *int64 { return c.likes }),
	}
}

// parseCount converte contadores textuais da API; ausentes ou inválidos viram nil
func parseCount(raw string) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func valueOf(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
