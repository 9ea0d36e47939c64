package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-automation/infrastructure/database/postgres"
	"github.com/vfg2006/creator-automation/internal/domain"
)

//go:generate mockgen -source=platform_connection.go -destination=mocks/platform_connection_mock.go -package=mocks

const platformConnectionsTable = "creator_platforms"

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

type PlatformConnectionRepository interface {
	MarkCompleted(ctx context.Context, connectionID string, metrics *domain.PlatformMetrics, syncedAt time.Time) error
	MarkFailed(ctx context.Context, connectionID string, message string) error
	ListSyncStatuses(ctx context.Context, limit int) ([]*domain.ConnectionSyncStatus, error)
}

type platformConnectionRepository struct {
	conn postgres.Queryer
}

func NewPlatformConnectionRepository(conn postgres.Queryer) PlatformConnectionRepository {
	return &platformConnectionRepository{
		conn: conn,
	}
}

// MarkCompleted grava as métricas na conexão e marca a sincronização como concluída
func (r *platformConnectionRepository) MarkCompleted(ctx context.Context, connectionID string, metrics *domain.PlatformMetrics, syncedAt time.Time) error {
	metricsJSON, err := jsonCodec.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update(platformConnectionsTable).
		SetMap(map[string]interface{}{
			"follower_count":  metrics.Followers,
			"following_count": metrics.Following,
			"metrics":         metricsJSON,
			"sync_status":     domain.SyncStatusCompleted,
			"sync_error":      nil,
			"last_sync_at":    syncedAt,
			"updated_at":      squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execUpdate(ctx, connectionID, query, args)
}

// MarkFailed registra a falha sem alterar last_sync_at, para que a próxima execução tente de novo
func (r *platformConnectionRepository) MarkFailed(ctx context.Context, connectionID string, message string) error {
	query, args, err := squirrel.
		Update(platformConnectionsTable).
		SetMap(map[string]interface{}{
			"sync_status": domain.SyncStatusFailed,
			"sync_error":  message,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execUpdate(ctx, connectionID, query, args)
}

func (r *platformConnectionRepository) execUpdate(ctx context.Context, connectionID, query string, args []interface{}) error {
	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("conexão %s não encontrada", connectionID)
	}

	return nil
}

// ListSyncStatuses lista as conexões mais recentemente sincronizadas, para o comando status
func (r *platformConnectionRepository) ListSyncStatuses(ctx context.Context, limit int) ([]*domain.ConnectionSyncStatus, error) {
	query, args, err := squirrel.
		Select("cp.id, cp.creator_id, c.username, cp.platform, cp.sync_status, cp.sync_error, cp.last_sync_at, cp.follower_count").
		From(creatorPlatformsTable).
		Join("creators c ON c.id = cp.creator_id").
		OrderBy("cp.updated_at DESC").
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

	statuses := make([]*domain.ConnectionSyncStatus, 0)
	for rows.Next() {
		status := &domain.ConnectionSyncStatus{}
		var lastSyncAt sql.NullTime

		if err := rows.Scan(
			&status.ConnectionID,
			&status.CreatorID,
			&status.Username,
			&status.Platform,
			&status.SyncStatus,
			&status.SyncError,
			&lastSyncAt,
			&status.Followers,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear status: %w", err)
		}

		if lastSyncAt.Valid {
			status.LastSyncAt = &lastSyncAt.Time
		}

		statuses = append(statuses, status)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar status: %w", err)
	}

	return statuses, nil
}

func connectionScanDest(c *domain.PlatformConnection) []any {
	return []any{
		&c.ID,
		&c.CreatorID,
		&c.Platform,
		&c.AccessToken,
		&c.PlatformUserID,
		&c.Username,
		&c.IsConnected,
		&c.LastSyncAt,
		&c.SyncStatus,
		&c.SyncError,
		&metricsColumn{conn: c},
		&c.FollowerCount,
		&c.FollowingCount,
	}
}

// metricsColumn decodifica a coluna JSONB metrics direto na conexão
type metricsColumn struct {
	conn *domain.PlatformConnection
}

func (m *metricsColumn) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		m.conn.Metrics = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("tipo inesperado para metrics: %T", src)
	}

	metrics := &domain.PlatformMetrics{}
	if err := jsonCodec.Unmarshal(data, metrics); err != nil {
		return fmt.Errorf("erro ao decodificar metrics: %w", err)
	}

	m.conn.Metrics = metrics
	return nil
}
