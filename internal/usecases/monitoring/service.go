package monitoring

import (
	"context"
	"fmt"

	"github.com/vfg2006/creator-automation/infrastructure/repository"
	"github.com/vfg2006/creator-automation/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const (
	DefaultLimit = 20
	MaxLimit     = 200
)

type StatusReader interface {
	Overview(ctx context.Context, limit int) (*domain.StatusOverview, error)
}

type Service struct {
	connectionRepository repository.PlatformConnectionRepository
	reportRepository     repository.AnalyticsReportRepository
}

func NewService(connectionRepo repository.PlatformConnectionRepository, reportRepo repository.AnalyticsReportRepository) *Service {
	return &Service{
		connectionRepository: connectionRepo,
		reportRepository:     reportRepo,
	}
}

// Overview devolve os estados de sincronização e os relatórios mais recentes.
// Limites fora da faixa caem no padrão ou no máximo.
func (s *Service) Overview(ctx context.Context, limit int) (*domain.StatusOverview, error) {
	limit = normalizeLimit(limit)

	connections, err := s.connectionRepository.ListSyncStatuses(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar status de sincronização: %w", err)
	}

	reports, err := s.reportRepository.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar relatórios recentes: %w", err)
	}

	if connections == nil {
		connections = []*domain.ConnectionSyncStatus{}
	}
	if reports == nil {
		reports = []*domain.AnalyticsReport{}
	}

	return &domain.StatusOverview{
		Connections: connections,
		Reports:     reports,
	}, nil
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
