package instagram

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	instagramdomain "github.com/vfg2006/creator-automation/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/instagram/instagramclient"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/internal/usecases/aggregating"
	"github.com/vfg2006/creator-automation/pkg/utils"
)

// estimatedFollowersPerPost é o multiplicador da base de seguidores estimada.
// A API básica não expõe seguidores, então a base é media_count * 100.
const estimatedFollowersPerPost = 100

const topHashtagsLimit = 10

type InstagramIntegrator struct {
	Client instagramclient.Client
	now    func() time.Time
}

func New(client instagramclient.Client) *InstagramIntegrator {
	return &InstagramIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *InstagramIntegrator) Platform() domain.Platform {
	return domain.PlatformInstagram
}

// FetchMetrics busca perfil, insights dos últimos 7 dias (até ontem) e as mídias
// recentes, e normaliza tudo em PlatformMetrics. Qualquer falha de requisição
// invalida a coleta inteira.
func (s *InstagramIntegrator) FetchMetrics(ctx context.Context, conn *domain.PlatformConnection) (*domain.PlatformMetrics, error) {
	profile, err := s.Client.GetProfile(ctx, conn.AccessToken)
	if err != nil {
		return nil, s.fail(conn, "profile", err)
	}

	until := utils.StartOfDay(s.now()).AddDate(0, 0, -1)
	since := until.AddDate(0, 0, -7)

	insights, err := s.Client.GetInsights(ctx, conn.AccessToken, since, until)
	if err != nil {
		return nil, s.fail(conn, "insights", err)
	}

	media, err := s.Client.GetRecentMedia(ctx, conn.AccessToken, instagramclient.MediaLimit)
	if err != nil {
		return nil, s.fail(conn, "media", err)
	}

	metrics := FactoryPlatformMetrics(profile, insights, media)
	metrics.LastUpdated = s.now()

	logrus.WithFields(logrus.Fields{
		"connection_id": conn.ID,
		"platform":      domain.PlatformInstagram,
		"media":         len(media),
	}).Debug("instagram: metrics fetched")

	return metrics, nil
}

func (s *InstagramIntegrator) fail(conn *domain.PlatformConnection, op string, err error) error {
	logrus.WithFields(logrus.Fields{
		"connection_id": conn.ID,
		"platform":      domain.PlatformInstagram,
		"op":            op,
		"error":         err.Error(),
	}).Warn("instagram: request failed")

	return domain.NewPlatformError(domain.PlatformInstagram, op, err)
}

// FactoryPlatformMetrics converte as respostas da Graph API em PlatformMetrics.
// Seguidores são aproximados pelo media_count.
func FactoryPlatformMetrics(
	profile *instagramdomain.Profile,
	insights *instagramdomain.InsightsResponse,
	media []instagramdomain.Media,
) *domain.PlatformMetrics {
	likes := func(m instagramdomain.Media) *int64 { return m.LikeCount }
	comments := func(m instagramdomain.Media) *int64 { return m.CommentsCount }

	totalLikes := aggregating.SumOf(media, likes)
	totalEngagement := totalLikes + aggregating.SumOf(media, comments)
	estimatedFollowerBase := profile.MediaCount * estimatedFollowersPerPost

	captions := make([]string, 0, len(media))
	for _, m := range media {
		captions = append(captions, m.Caption)
	}

	return &domain.PlatformMetrics{
		Followers:      profile.MediaCount,
		PostsCount:     profile.MediaCount,
		AvgLikes:       utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(media, likes)),
		AvgComments:    utils.RoundWithTwoDecimalPlace(aggregating.AverageOf(media, comments)),
		EngagementRate: utils.RoundWithTwoDecimalPlace(aggregating.EngagementRate(totalEngagement, int64(len(media)), estimatedFollowerBase)),
		Reach:          insights.Metric("reach"),
		Impressions:    insights.Metric("impressions"),
		ProfileViews:   insights.Metric("profile_views"),
		TotalLikes:     totalLikes,
		TopHashtags:    aggregating.TopHashtags(captions, topHashtagsLimit),
	}
}
