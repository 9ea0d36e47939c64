package syncing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/creator-automation/infrastructure/repository"
	"github.com/vfg2006/creator-automation/internal/config"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/internal/usecases/snapshotting"
	"github.com/vfg2006/creator-automation/pkg/log"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// Syncer sincroniza as métricas dos criadores com as plataformas conectadas
type Syncer interface {
	// SyncAllCreators só retorna erro quando a execução não pode nem começar
	SyncAllCreators(ctx context.Context, force bool) (*domain.SyncSummary, error)
	SyncCreator(ctx context.Context, creatorID string, force bool) (*domain.CreatorSyncOutcome, error)
}

// Options controla o ritmo da sincronização em lote
type Options struct {
	BatchSize      int
	BatchDelay     time.Duration
	FreshnessHours float64
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BatchSize:      cfg.MetricsSync.BatchSize,
		BatchDelay:     time.Duration(cfg.MetricsSync.BatchDelaySeconds) * time.Second,
		FreshnessHours: float64(cfg.MetricsSync.FreshnessHours),
	}
}

type Service struct {
	opts                 Options
	creatorRepository    repository.CreatorRepository
	connectionRepository repository.PlatformConnectionRepository
	executionRepository  repository.AutomationExecutionRepository
	analyticsRepository  repository.AnalyticsRepository
	snapshotter          snapshotting.Snapshotter
	adapters             Registry
	now                  func() time.Time
	sleep                func(ctx context.Context, d time.Duration) error
}

func NewService(
	opts Options,
	creatorRepo repository.CreatorRepository,
	connectionRepo repository.PlatformConnectionRepository,
	executionRepo repository.AutomationExecutionRepository,
	analyticsRepo repository.AnalyticsRepository,
	snapshotter snapshotting.Snapshotter,
	adapters Registry,
) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10
	}

	return &Service{
		opts:                 opts,
		creatorRepository:    creatorRepo,
		connectionRepository: connectionRepo,
		executionRepository:  executionRepo,
		analyticsRepository:  analyticsRepo,
		snapshotter:          snapshotter,
		adapters:             adapters,
		now:                  time.Now,
		sleep:                sleepContext,
	}
}

// SyncAllCreators processa os criadores com conexões ativas em lotes concorrentes.
// Falhas de um criador viram dados no resumo e nunca interrompem o lote.
func (s *Service) SyncAllCreators(ctx context.Context, force bool) (*domain.SyncSummary, error) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	creators, err := s.creatorRepository.ListCreatorsWithConnectedPlatforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar criadores para sincronização: %w", err)
	}

	summary := &domain.SyncSummary{
		StartedAt: s.now(),
		Succeeded: []string{},
		Failed:    []domain.CreatorFailure{},
	}

	logger.WithFields(log.Fields{
		"creators":   len(creators),
		"force":      force,
		"batch_size": s.opts.BatchSize,
	}).Info("sync: starting metrics sync")

	for start := 0; start < len(creators); start += s.opts.BatchSize {
		end := min(start+s.opts.BatchSize, len(creators))

		for _, outcome := range s.syncBatch(ctx, creators[start:end], force) {
			summary.Add(outcome)
		}

		if end < len(creators) {
			if err := s.sleep(ctx, s.opts.BatchDelay); err != nil {
				logger.WithError(err).Warn("sync: interrupted between batches")
				summary.FinishedAt = s.now()
				return summary, err
			}
		}
	}

	if err := s.analyticsRepository.RefreshGlobalAnalytics(ctx); err != nil {
		logger.WithError(err).Error("sync: global analytics refresh failed")
	}

	summary.FinishedAt = s.now()

	logger.WithFields(log.Fields{
		"creators":            summary.Creators,
		"connections_synced":  summary.ConnectionsSynced,
		"connections_failed":  summary.ConnectionsFailed,
		"connections_skipped": summary.ConnectionsSkipped,
		"creators_failed":     len(summary.Failed),
		"duration_ms":         summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
	}).Info("sync: metrics sync finished")

	return summary, nil
}

// syncBatch roda os criadores do lote em paralelo e espera todos terminarem.
// Os resultados mantêm a ordem do lote.
func (s *Service) syncBatch(ctx context.Context, batch []*domain.Creator, force bool) []domain.CreatorSyncOutcome {
	outcomes := make([]domain.CreatorSyncOutcome, len(batch))

	var g errgroup.Group
	for i, creator := range batch {
		i, creator := i, creator
		g.Go(func() error {
			outcomes[i] = s.syncCreatorSafely(ctx, creator, force)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// SyncCreator sincroniza um único criador, inclusive os que ainda não têm conexões
func (s *Service) SyncCreator(ctx context.Context, creatorID string, force bool) (*domain.CreatorSyncOutcome, error) {
	ctx, _ = log.WithCorrelationID(ctx)

	creator, err := s.creatorRepository.GetCreatorWithPlatforms(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar criador %s: %w", creatorID, err)
	}

	if creator == nil {
		return nil, domain.ErrCreatorNotFound
	}

	outcome := s.syncCreatorSafely(ctx, creator, force)
	if !outcome.OK() {
		return &outcome, outcome.Err
	}

	return &outcome, nil
}

// syncCreatorSafely é a fronteira de isolamento do criador: qualquer erro ou panic
// que escape do tratamento por conexão é registrado na trilha de auditoria
func (s *Service) syncCreatorSafely(ctx context.Context, creator *domain.Creator, force bool) (outcome domain.CreatorSyncOutcome) {
	outcome = domain.CreatorSyncOutcome{
		CreatorID: creator.ID,
		Username:  creator.Username,
	}

	defer func() {
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("panic ao sincronizar criador: %v", r)
		}

		if outcome.Err != nil {
			s.recordCreatorFailure(ctx, creator, outcome.Err)
		}
	}()

	outcome.Connections, outcome.Err = s.syncCreatorMetrics(ctx, creator, force)

	return outcome
}

func (s *Service) syncCreatorMetrics(ctx context.Context, creator *domain.Creator, force bool) ([]domain.ConnectionOutcome, error) {
	outcomes := make([]domain.ConnectionOutcome, 0, len(creator.Platforms))
	var errs []error

	for _, conn := range creator.Platforms {
		if !conn.IsConnected {
			continue
		}

		outcome, err := s.syncConnection(ctx, creator, conn, force)
		outcomes = append(outcomes, outcome)
		if err != nil {
			errs = append(errs, err)
		}
	}

	s.snapshotter.UpdateCreatorPerformanceScore(ctx, creator.ID)

	return outcomes, errors.Join(errs...)
}

// syncConnection trata a falha do adapter registrando-a na própria conexão.
// O erro retornado é apenas o que não pôde ser registrado ali.
func (s *Service) syncConnection(ctx context.Context, creator *domain.Creator, conn *domain.PlatformConnection, force bool) (domain.ConnectionOutcome, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"creator_id":    creator.ID,
		"connection_id": conn.ID,
		"platform":      conn.Platform,
	})

	outcome := domain.ConnectionOutcome{
		ConnectionID: conn.ID,
		Platform:     conn.Platform,
	}

	now := s.now()

	if hours := conn.HoursSinceLastSync(now); !force && hours < s.opts.FreshnessHours {
		logger.WithField("hours_since_sync", hours).Debug("sync: connection is fresh, skipping")
		outcome.State = domain.ConnectionSkipped
		return outcome, nil
	}

	metrics, err := s.fetchMetrics(ctx, conn)
	if err != nil {
		outcome.State = domain.ConnectionFailed
		outcome.Error = err.Error()

		logger.WithError(err).Warn("sync: platform fetch failed")

		if markErr := s.connectionRepository.MarkFailed(ctx, conn.ID, err.Error()); markErr != nil {
			return outcome, fmt.Errorf("erro ao registrar falha da conexão %s: %w", conn.ID, markErr)
		}
		return outcome, nil
	}

	if err := s.snapshotter.StoreDailyMetrics(ctx, conn.ID, metrics); err != nil {
		return s.writeFailed(ctx, logger, outcome, err)
	}

	if err := s.connectionRepository.MarkCompleted(ctx, conn.ID, metrics, now); err != nil {
		return s.writeFailed(ctx, logger, outcome, fmt.Errorf("erro ao gravar métricas da conexão %s: %w", conn.ID, err))
	}

	logger.WithField("followers", metrics.Followers).Info("sync: connection synced")

	outcome.State = domain.ConnectionSynced
	return outcome, nil
}

// writeFailed marca a conexão como failed quando a gravação local falha. A marcação é
// best-effort e o erro original segue para a trilha de auditoria do criador.
func (s *Service) writeFailed(ctx context.Context, logger log.Logger, outcome domain.ConnectionOutcome, cause error) (domain.ConnectionOutcome, error) {
	outcome.State = domain.ConnectionFailed
	outcome.Error = cause.Error()

	if err := s.connectionRepository.MarkFailed(ctx, outcome.ConnectionID, cause.Error()); err != nil {
		logger.WithError(err).Warn("sync: could not mark connection as failed")
	}

	return outcome, cause
}

func (s *Service) fetchMetrics(ctx context.Context, conn *domain.PlatformConnection) (*domain.PlatformMetrics, error) {
	adapter, err := s.adapters.Adapter(conn.Platform)
	if err != nil {
		return nil, domain.NewPlatformError(conn.Platform, "", err)
	}

	return adapter.FetchMetrics(ctx, conn)
}

func (s *Service) recordCreatorFailure(ctx context.Context, creator *domain.Creator, cause error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"creator_id":       creator.ID,
		"creator_username": creator.Username,
	})

	logger.WithError(cause).Error("sync: creator sync failed")

	entry := &domain.SyncErrorLog{
		AutomationType: domain.AutomationTypeMetricsSync,
		CreatorID:      creator.ID,
		Status:         string(domain.SyncStatusFailed),
		ErrorMessage:   cause.Error(),
		ExecutedAt:     s.now(),
	}

	if err := s.executionRepository.LogSyncError(ctx, entry); err != nil {
		logger.WithError(err).Error("sync: could not write audit log entry")
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
