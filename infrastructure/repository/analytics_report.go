package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-automation/infrastructure/database/postgres"
	"github.com/vfg2006/creator-automation/internal/domain"
)

//go:generate mockgen -source=analytics_report.go -destination=mocks/analytics_report_mock.go -package=mocks

const analyticsReportsTable = "analytics_reports ar"

type AnalyticsReportRepository interface {
	Save(ctx context.Context, report *domain.AnalyticsReport) error
	AttachFileURL(ctx context.Context, reportID, fileURL string) error
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalyticsReport, error)
}

type analyticsReportRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsReportRepository(conn postgres.Queryer) AnalyticsReportRepository {
	return &analyticsReportRepository{
		conn: conn,
	}
}

func (r *analyticsReportRepository) Save(ctx context.Context, report *domain.AnalyticsReport) error {
	// Relatórios com falha não têm métricas nem insights e são gravados com NULL
	var metricsJSON, insightsJSON any

	if report.Metrics != nil {
		data, err := jsonCodec.Marshal(report.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas do relatório: %w", err)
		}
		metricsJSON = data
	}

	if report.Insights != nil {
		data, err := jsonCodec.Marshal(report.Insights)
		if err != nil {
			return fmt.Errorf("erro ao serializar insights do relatório: %w", err)
		}
		insightsJSON = data
	}

	recommendations := report.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	query, args, err := squirrel.
		Insert("analytics_reports").
		Columns(
			"id", "creator_id", "report_type", "period_start", "period_end", "metrics",
			"insights", "recommendations", "status", "error_message", "file_url", "generated_at",
		).
		Values(
			report.ID,
			report.CreatorID,
			report.ReportType,
			report.PeriodStart,
			report.PeriodEnd,
			metricsJSON,
			insightsJSON,
			pq.Array(recommendations),
			report.Status,
			report.ErrorMessage,
			report.FileURL,
			report.GeneratedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// AttachFileURL é a única alteração permitida em um relatório já salvo
func (r *analyticsReportRepository) AttachFileURL(ctx context.Context, reportID, fileURL string) error {
	query, args, err := squirrel.
		Update("analytics_reports").
		Set("file_url", fileURL).
		Where(squirrel.Eq{"id": reportID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("relatório %s não encontrado", reportID)
	}

	return nil
}

func (r *analyticsReportRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AnalyticsReport, error) {
	query, args, err := squirrel.
		Select("ar.id, ar.creator_id, c.username, ar.report_type, ar.period_start, ar.period_end, " +
			"ar.recommendations, ar.status, ar.error_message, ar.file_url, ar.generated_at").
		From(analyticsReportsTable).
		Join("creators c ON c.id = ar.creator_id").
		OrderBy("ar.generated_at DESC").
		Limit(uint64(limit)).
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

	reports := make([]*domain.AnalyticsReport, 0)
	for rows.Next() {
		report := &domain.AnalyticsReport{}
		var periodStart, periodEnd time.Time
		var errorMessage, fileURL sql.NullString

		if err := rows.Scan(
			&report.ID,
			&report.CreatorID,
			&report.Username,
			&report.ReportType,
			&periodStart,
			&periodEnd,
			pq.Array(&report.Recommendations),
			&report.Status,
			&errorMessage,
			&fileURL,
			&report.GeneratedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}

		report.PeriodStart = periodStart.Format(time.DateOnly)
		report.PeriodEnd = periodEnd.Format(time.DateOnly)
		if errorMessage.Valid {
			report.ErrorMessage = &errorMessage.String
		}
		if fileURL.Valid {
			report.FileURL = &fileURL.String
		}

		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar relatórios: %w", err)
	}

	return reports, nil
}
