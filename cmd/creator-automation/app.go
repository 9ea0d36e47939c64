package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/creator-automation/infrastructure/cloud"
	"github.com/vfg2006/creator-automation/infrastructure/database/postgres"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/instagram"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/instagram/instagramclient"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/tiktok"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/youtube"
	"github.com/vfg2006/creator-automation/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/creator-automation/infrastructure/lock"
	"github.com/vfg2006/creator-automation/infrastructure/notifier"
	"github.com/vfg2006/creator-automation/infrastructure/repository"
	"github.com/vfg2006/creator-automation/infrastructure/storage"
	"github.com/vfg2006/creator-automation/internal/config"
	"github.com/vfg2006/creator-automation/internal/usecases/monitoring"
	"github.com/vfg2006/creator-automation/internal/usecases/reporting"
	"github.com/vfg2006/creator-automation/internal/usecases/snapshotting"
	"github.com/vfg2006/creator-automation/internal/usecases/syncing"
	"github.com/vfg2006/creator-automation/pkg/log"
)

// app reúne as dependências montadas a partir da configuração
type app struct {
	cfg      *config.Config
	db       *postgres.Connection
	redis    *redis.Client
	syncer   *syncing.Service
	reporter *reporting.Service
	status   *monitoring.Service
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}

	creatorRepo := repository.NewCreatorRepository(db)
	connectionRepo := repository.NewPlatformConnectionRepository(db)
	metricsRepo := repository.NewPlatformMetricsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	executionRepo := repository.NewAutomationExecutionRepository(db)
	earningsRepo := repository.NewEarningsRepository(db)
	reportRepo := repository.NewAnalyticsReportRepository(db)

	snapshotter := snapshotting.NewService(metricsRepo, analyticsRepo)

	syncer := syncing.NewService(
		syncing.OptionsFromConfig(cfg),
		creatorRepo,
		connectionRepo,
		executionRepo,
		analyticsRepo,
		snapshotter,
		newAdapterRegistry(cfg),
	)

	renderer, err := reporting.NewTemplateRenderer()
	if err != nil {
		db.Close()
		return nil, err
	}

	reporter := reporting.NewService(
		creatorRepo,
		metricsRepo,
		earningsRepo,
		reportRepo,
		renderer,
		time.Duration(cfg.Reports.DelaySeconds)*time.Second,
	)

	if err := configureDelivery(ctx, cfg, reporter); err != nil {
		db.Close()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		db:       db,
		syncer:   syncer,
		reporter: reporter,
		status:   monitoring.NewService(connectionRepo, reportRepo),
	}, nil
}

// newAdapterRegistry registra apenas as plataformas configuradas. Conexões de uma
// plataforma ausente falham com ErrPlatformNotConfigured.
func newAdapterRegistry(cfg *config.Config) syncing.Registry {
	timeout := cfg.Platforms.RequestTimeout()

	adapters := []syncing.PlatformAdapter{
		instagram.New(instagramclient.NewClient(cfg.Instagram.GraphURL, timeout)),
		tiktok.New(tiktokclient.NewClient(cfg.TikTok.APIURL, timeout)),
	}

	if cfg.YouTube.Enabled() {
		adapters = append(adapters, youtube.New(youtubeclient.NewClient(cfg.YouTube.APIURL, cfg.YouTube.APIKey, timeout)))
	} else {
		log.L.Warn("app: YOUTUBE_API_KEY not set, youtube connections will fail as not configured")
	}

	return syncing.NewRegistry(adapters...)
}

func configureDelivery(ctx context.Context, cfg *config.Config, reporter *reporting.Service) error {
	if !cfg.Reports.UploadEnabled() && !cfg.Reports.EmailEnabled() {
		log.L.Info("app: report upload and email disabled")
		return nil
	}

	awsCfg, err := cloud.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	var store reporting.ArtifactStore
	if cfg.Reports.UploadEnabled() {
		store = storage.NewS3Store(awsCfg, cfg.Reports)
	}

	var sender reporting.Notifier
	if cfg.Reports.EmailEnabled() {
		sender = notifier.NewSESNotifier(awsCfg, cfg.Reports)
	}

	reporter.WithDelivery(store, sender)
	return nil
}

// newLocker usa o redis quando configurado e cai para o lock em memória
func (a *app) newLocker(ctx context.Context) (lock.Locker, error) {
	if !a.cfg.Redis.Enabled() {
		log.L.Warn("app: REDIS_ADDR not set, job lock is process local")
		return lock.NewLocalLocker(), nil
	}

	client, err := lock.NewRedisClient(ctx, a.cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.redis = client

	return lock.NewRedisLocker(client), nil
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.L.WithError(err).Warn("app: error closing redis client")
		}
	}

	if err := a.db.Close(); err != nil {
		log.L.WithError(err).Warn("app: error closing database")
	}
}
