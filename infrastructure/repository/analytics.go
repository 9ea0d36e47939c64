package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/creator-automation/infrastructure/database/postgres"
)

//go:generate mockgen -source=analytics.go -destination=mocks/analytics_mock.go -package=mocks

// AnalyticsRepository dispara os cálculos derivados mantidos no banco
type AnalyticsRepository interface {
	UpdateCreatorPerformanceScore(ctx context.Context, creatorID string) error
	RefreshGlobalAnalytics(ctx context.Context) error
}

type analyticsRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsRepository(conn postgres.Queryer) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) UpdateCreatorPerformanceScore(ctx context.Context, creatorID string) error {
	if _, err := r.conn.ExecContext(ctx, "SELECT update_creator_performance_score($1)", creatorID); err != nil {
		return fmt.Errorf("erro ao atualizar performance score: %w", err)
	}
	return nil
}

func (r *analyticsRepository) RefreshGlobalAnalytics(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, "SELECT refresh_global_analytics()"); err != nil {
		return fmt.Errorf("erro ao atualizar analytics globais: %w", err)
	}
	return nil
}
