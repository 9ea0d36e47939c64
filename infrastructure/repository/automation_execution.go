package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-automation/infrastructure/database/postgres"
	"github.com/vfg2006/creator-automation/internal/domain"
	"github.com/vfg2006/creator-automation/pkg/utils"
)

//go:generate mockgen -source=automation_execution.go -destination=mocks/automation_execution_mock.go -package=mocks

type AutomationExecutionRepository interface {
	LogSyncError(ctx context.Context, entry *domain.SyncErrorLog) error
}

type automationExecutionRepository struct {
	conn postgres.Queryer
}

func NewAutomationExecutionRepository(conn postgres.Queryer) AutomationExecutionRepository {
	return &automationExecutionRepository{
		conn: conn,
	}
}

// LogSyncError adiciona uma entrada à trilha de auditoria. Entradas nunca são alteradas.
func (r *automationExecutionRepository) LogSyncError(ctx context.Context, entry *domain.SyncErrorLog) error {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id: %w", err)
		}
		entry.ID = id
	}

	if entry.AutomationType == "" {
		entry.AutomationType = domain.AutomationTypeMetricsSync
	}

	if entry.Status == "" {
		entry.Status = string(domain.SyncStatusFailed)
	}

	query, args, err := squirrel.
		Insert("automation_executions").
		Columns("id", "automation_type", "creator_id", "status", "error_message", "executed_at").
		Values(entry.ID, entry.AutomationType, entry.CreatorID, entry.Status, entry.ErrorMessage, entry.ExecutedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
