package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-automation/infrastructure/database/postgres"
	"github.com/vfg2006/creator-automation/internal/domain"
)

//go:generate mockgen -source=earnings.go -destination=mocks/earnings_mock.go -package=mocks

const transactionStatusCompleted = "completed"

type EarningsRepository interface {
	GetEarningsBySource(ctx context.Context, creatorID string, start, end time.Time) ([]domain.RevenueSource, error)
}

type earningsRepository struct {
	conn postgres.Queryer
}

func NewEarningsRepository(conn postgres.Queryer) EarningsRepository {
	return &earningsRepository{
		conn: conn,
	}
}

// GetEarningsBySource soma as transações concluídas no período [start, end], por tipo
func (r *earningsRepository) GetEarningsBySource(ctx context.Context, creatorID string, start, end time.Time) ([]domain.RevenueSource, error) {
	query, args, err := squirrel.
		Select("t.type, COALESCE(SUM(t.amount), 0), COUNT(*)").
		From("transactions t").
		Where(squirrel.Eq{"t.creator_id": creatorID, "t.status": transactionStatusCompleted}).
		Where(squirrel.GtOrEq{"t.created_at": start}).
		Where(squirrel.Lt{"t.created_at": end.AddDate(0, 0, 1)}).
		GroupBy("t.type").
		OrderBy("2 DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sources := make([]domain.RevenueSource, 0)
	for rows.Next() {
		var source domain.RevenueSource
		if err := rows.Scan(&source.Source, &source.Amount, &source.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita: %w", err)
		}
		sources = append(sources, source)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar receitas: %w", err)
	}

	return sources, nil
}
