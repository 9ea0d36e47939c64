package scheduler

import (
	"context"
	"fmt"

	"github.com/vfg2006/creator-automation/internal/config"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/internal/usecases/reporting"
	"github.com/vfg2006/creator-automation/internal/usecases/syncing"
	"github.com/vfg2006/creator-automation/pkg/log"
)

const (
	JobMetricsSync    = "metrics-sync"
	JobMonthlyReports = "monthly-reports"
	JobWeeklyReports  = "weekly-reports"
)

// MetricsSyncJob roda a sincronização completa sem forçar: conexões recentes são puladas
func MetricsSyncJob(cron string, syncer syncing.Syncer) Job {
	return Job{
		Name: JobMetricsSync,
		Cron: cron,
		Handler: func(ctx context.Context) error {
			summary, err := syncer.SyncAllCreators(ctx, false)
			if err != nil {
				return fmt.Errorf("erro na sincronização de métricas: %w", err)
			}

			log.ForContext(ctx).WithFields(log.Fields{
				"creators":  summary.Creators,
				"synced":    summary.ConnectionsSynced,
				"failed":    summary.ConnectionsFailed,
				"skipped":   summary.ConnectionsSkipped,
				"succeeded": len(summary.Succeeded),
			}).Info("scheduler: metrics sync summary")

			return nil
		},
	}
}

func ReportsJob(name, cron string, reportType domain.ReportType, reporter reporting.Reporter) Job {
	return Job{
		Name: name,
		Cron: cron,
		Handler: func(ctx context.Context) error {
			result, err := reporter.GenerateAllReports(ctx, reportType)
			if err != nil {
				return fmt.Errorf("erro na geração de relatórios %s: %w", reportType, err)
			}

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"report_type": reportType,
				"success":     len(result.Success),
				"failed":      len(result.Failed),
			})
			for _, failure := range result.Failed {
				logger.WithFields(log.Fields{
					"username": failure.Username,
					"error":    failure.Error,
				}).Warn("scheduler: creator report failed")
			}
			logger.Info("scheduler: reports summary")

			return nil
		},
	}
}

// DefaultJobs monta os jobs do processo. Jobs desabilitados por configuração continuam
// registrados sem cron para que o operador possa dispará-los manualmente.
func DefaultJobs(cfg *config.Config, syncer syncing.Syncer, reporter reporting.Reporter) []Job {
	syncCron := ""
	if cfg.MetricsSync.Enabled {
		syncCron = cfg.MetricsSync.CronSchedule
	}

	monthlyCron, weeklyCron := "", ""
	if cfg.ReportSchedule.Enabled {
		monthlyCron = cfg.ReportSchedule.MonthlyCron
		weeklyCron = cfg.ReportSchedule.WeeklyCron
	}

	return []Job{
		MetricsSyncJob(syncCron, syncer),
		ReportsJob(JobMonthlyReports, monthlyCron, domain.ReportTypeMonthly, reporter),
		ReportsJob(JobWeeklyReports, weeklyCron, domain.ReportTypeWeekly, reporter),
	}
}
