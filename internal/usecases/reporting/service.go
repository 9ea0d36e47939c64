package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/creator-automation/infrastructure/repository"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/pkg/log"
	"github.com/vfg2006/creator-automation/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// Reporter gera os relatórios de analytics dos criadores
type Reporter interface {
	GenerateCreatorReport(ctx context.Context, creatorID string, reportType domain.ReportType) (*domain.AnalyticsReport, error)
	// GenerateAllReports trata falhas individuais como dados do resultado
	GenerateAllReports(ctx context.Context, reportType domain.ReportType) (*domain.ReportBatchResult, error)
}

// ReportError indica que a geração falhou e que um relatório com status failed foi registrado
type ReportError struct {
	ReportID  string
	CreatorID string
	Err       error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("relatório %s do criador %s falhou: %v", e.ReportID, e.CreatorID, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

type Service struct {
	creatorRepository  repository.CreatorRepository
	metricsRepository  repository.PlatformMetricsRepository
	earningsRepository repository.EarningsRepository
	reportRepository   repository.AnalyticsReportRepository
	renderer           Renderer
	store              ArtifactStore
	notifier           Notifier
	delay              time.Duration
	now                func() time.Time
	newID              func() string
	sleep              func(ctx context.Context, d time.Duration) error
}

func NewService(
	creatorRepo repository.CreatorRepository,
	metricsRepo repository.PlatformMetricsRepository,
	earningsRepo repository.EarningsRepository,
	reportRepo repository.AnalyticsReportRepository,
	renderer Renderer,
	delay time.Duration,
) *Service {
	return &Service{
		creatorRepository:  creatorRepo,
		metricsRepository:  metricsRepo,
		earningsRepository: earningsRepo,
		reportRepository:   reportRepo,
		renderer:           renderer,
		delay:              delay,
		now:                time.Now,
		newID:              uuid.NewString,
		sleep:              sleepContext,
	}
}

// WithDelivery habilita o envio do artefato e o e-mail. Qualquer um dos dois pode ser nil.
func (s *Service) WithDelivery(store ArtifactStore, notifier Notifier) *Service {
	s.store = store
	s.notifier = notifier
	return s
}

// GenerateCreatorReport gera, salva e publica o relatório de um criador. Falhas antes
// do relatório ser salvo geram um registro com status failed e um *ReportError.
func (s *Service) GenerateCreatorReport(ctx context.Context, creatorID string, reportType domain.ReportType) (*domain.AnalyticsReport, error) {
	if !domain.IsValidReportType(string(reportType)) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidReportType, reportType)
	}

	ctx, _ = log.WithCorrelationID(ctx)

	now := s.now()
	period := GetReportPeriod(reportType, now)

	report := &domain.AnalyticsReport{
		ID:              s.newID(),
		CreatorID:       creatorID,
		ReportType:      reportType,
		PeriodStart:     period.StartDate(),
		PeriodEnd:       period.EndDate(),
		Recommendations: []string{},
		GeneratedAt:     now,
	}

	creator, err := s.creatorRepository.GetCreatorWithPlatforms(ctx, creatorID)
	if err != nil {
		return nil, s.fail(ctx, report, fmt.Errorf("erro ao buscar criador: %w", err))
	}

	if creator == nil {
		return nil, domain.ErrCreatorNotFound
	}
	report.Username = creator.Username

	metrics, err := s.gatherMetrics(ctx, creatorID, period)
	if err != nil {
		return nil, s.fail(ctx, report, err)
	}

	insights, recommendations := DeriveInsights(creator, metrics)

	report.Metrics = metrics
	report.Insights = insights
	report.Recommendations = recommendations
	report.Status = domain.ReportStatusCompleted

	if err := s.reportRepository.Save(ctx, report); err != nil {
		return nil, s.fail(ctx, report, fmt.Errorf("erro ao salvar relatório: %w", err))
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"creator_id":   creatorID,
		"report_id":    report.ID,
		"report_type":  reportType,
		"period_start": report.PeriodStart,
		"period_end":   report.PeriodEnd,
		"snapshots":    metrics.SnapshotCount,
	}).Info("report: report saved")

	s.publish(ctx, creator, report)

	return report, nil
}

func (s *Service) gatherMetrics(ctx context.Context, creatorID string, period domain.ReportPeriod) (*domain.ReportMetrics, error) {
	start := utils.StartOfDay(period.Start)
	end := utils.StartOfDay(period.End)

	snapshots, err := s.metricsRepository.ListCreatorSnapshots(ctx, creatorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshots do período: %w", err)
	}

	revenue, err := s.earningsRepository.GetEarningsBySource(ctx, creatorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar receitas do período: %w", err)
	}

	return BuildReportMetrics(snapshots, revenue), nil
}

// fail registra o relatório com status failed para auditoria e devolve o erro original.
// A linha de auditoria ganha um id próprio, pois o Save do relatório completo pode ter
// sido gravado antes de devolver erro.
func (s *Service) fail(ctx context.Context, report *domain.AnalyticsReport, cause error) error {
	message := cause.Error()

	failed := &domain.AnalyticsReport{
		ID:              s.newID(),
		CreatorID:       report.CreatorID,
		ReportType:      report.ReportType,
		PeriodStart:     report.PeriodStart,
		PeriodEnd:       report.PeriodEnd,
		Recommendations: []string{},
		Status:          domain.ReportStatusFailed,
		ErrorMessage:    &message,
		GeneratedAt:     report.GeneratedAt,
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"creator_id":  report.CreatorID,
		"report_id":   failed.ID,
		"report_type": report.ReportType,
	})
	logger.WithError(cause).Error("report: generation failed")

	if err := s.reportRepository.Save(ctx, failed); err != nil {
		logger.WithError(err).Error("report: could not record failed report")
	}

	return &ReportError{ReportID: failed.ID, CreatorID: report.CreatorID, Err: cause}
}

// GenerateAllReports gera os relatórios dos criadores ativos em sequência, com uma
// pausa fixa entre eles
func (s *Service) GenerateAllReports(ctx context.Context, reportType domain.ReportType) (*domain.ReportBatchResult, error) {
	if !domain.IsValidReportType(string(reportType)) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidReportType, reportType)
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("report_type", reportType)

	creators, err := s.creatorRepository.ListActiveCreators(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar criadores ativos: %w", err)
	}

	result := &domain.ReportBatchResult{
		Success: []string{},
		Failed:  []domain.ReportFailure{},
	}

	logger.WithField("creators", len(creators)).Info("report: generating reports")

	for i, creator := range creators {
		if i > 0 {
			if err := s.sleep(ctx, s.delay); err != nil {
				logger.WithError(err).Warn("report: interrupted between creators")
				return result, err
			}
		}

		if _, err := s.GenerateCreatorReport(ctx, creator.ID, reportType); err != nil {
			result.Failed = append(result.Failed, domain.ReportFailure{
				Username: creator.Username,
				Error:    err.Error(),
			})
			continue
		}

		result.Success = append(result.Success, creator.Username)
	}

	logger.WithFields(log.Fields{
		"success": len(result.Success),
		"failed":  len(result.Failed),
	}).Info("report: reports finished")

	return result, nil
}

// IsReportError indica se err carrega um relatório com falha já registrado
func IsReportError(err error) bool {
	var reportErr *ReportError
	return errors.As(err, &reportErr)
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
