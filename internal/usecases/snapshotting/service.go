package snapshotting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/creator-automation/infrastructure/repository"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// Snapshotter grava o histórico diário de métricas e dispara o recálculo do
// performance score do criador
type Snapshotter interface {
	StoreDailyMetrics(ctx context.Context, connectionID string, metrics *domain.PlatformMetrics) error
	UpdateCreatorPerformanceScore(ctx context.Context, creatorID string)
}

type Service struct {
	metricsRepository   repository.PlatformMetricsRepository
	analyticsRepository repository.AnalyticsRepository
	now                 func() time.Time
}

func NewService(metricsRepo repository.PlatformMetricsRepository, analyticsRepo repository.AnalyticsRepository) *Service {
	return &Service{
		metricsRepository:   metricsRepo,
		analyticsRepository: analyticsRepo,
		now:                 time.Now,
	}
}

// StoreDailyMetrics faz o upsert da linha de hoje para a conexão. Rodar duas vezes
// no mesmo dia sobrescreve a linha existente.
func (s *Service) StoreDailyMetrics(ctx context.Context, connectionID string, metrics *domain.PlatformMetrics) error {
	snapshot := domain.NewDailyMetricsSnapshot(connectionID, s.now(), metrics)

	if err := s.metricsRepository.UpsertDailySnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("erro ao gravar snapshot diário da conexão %s: %w", connectionID, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"connection_id": connectionID,
		"date":          snapshot.Date,
	}).Debug("snapshot: daily metrics stored")

	return nil
}

// UpdateCreatorPerformanceScore nunca falha para quem chama, apenas registra o erro
func (s *Service) UpdateCreatorPerformanceScore(ctx context.Context, creatorID string) {
	if err := s.analyticsRepository.UpdateCreatorPerformanceScore(ctx, creatorID); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"creator_id": creatorID,
		}).WithError(err).Warn("snapshot: performance score update failed")
	}
}
