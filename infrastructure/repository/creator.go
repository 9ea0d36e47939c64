package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-automation/infrastructure/database/postgres"
	"github.com/vfg2006/creator-automation/internal/domain"
)

//go:generate mockgen -source=creator.go -destination=mocks/creator_mock.go -package=mocks

const (
	creatorsTable         = "creators c"
	creatorPlatformsTable = "creator_platforms cp"
)

const creatorColumns = "c.id, c.username, c.display_name, c.email, c.status, c.performance_score, c.created_at"

const connectionColumns = "cp.id, cp.creator_id, cp.platform, cp.access_token, cp.platform_user_id, " +
	"cp.platform_username, cp.is_connected, cp.last_sync_at, cp.sync_status, cp.sync_error, " +
	"cp.metrics, cp.follower_count, cp.following_count"

type CreatorRepository interface {
	ListCreatorsWithConnectedPlatforms(ctx context.Context) ([]*domain.Creator, error)
	GetCreatorWithPlatforms(ctx context.Context, creatorID string) (*domain.Creator, error)
	ListActiveCreators(ctx context.Context) ([]*domain.Creator, error)
	GetCreator(ctx context.Context, creatorID string) (*domain.Creator, error)
}

type creatorRepository struct {
	conn postgres.Queryer
}

func NewCreatorRepository(conn postgres.Queryer) CreatorRepository {
	return &creatorRepository{
		conn: conn,
	}
}

// ListCreatorsWithConnectedPlatforms retorna os criadores com ao menos uma conexão
// ativa, já com as conexões carregadas
func (r *creatorRepository) ListCreatorsWithConnectedPlatforms(ctx context.Context) ([]*domain.Creator, error) {
	return r.listWithPlatforms(ctx, squirrel.Eq{"cp.is_connected": true})
}

func (r *creatorRepository) GetCreatorWithPlatforms(ctx context.Context, creatorID string) (*domain.Creator, error) {
	creators, err := r.listWithPlatforms(ctx, squirrel.Eq{"c.id": creatorID, "cp.is_connected": true})
	if err != nil {
		return nil, err
	}

	if len(creators) == 0 {
		// Criador sem conexões ativas ainda é um criador válido
		return r.GetCreator(ctx, creatorID)
	}

	return creators[0], nil
}

func (r *creatorRepository) listWithPlatforms(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Creator, error) {
	query, args, err := squirrel.
		Select(creatorColumns+", "+connectionColumns).
		From(creatorsTable).
		Join("creator_platforms cp ON cp.creator_id = c.id").
		Where(where).
		OrderBy("c.created_at ASC", "c.id ASC", "cp.platform ASC").
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

	creators := make([]*domain.Creator, 0)
	byID := make(map[string]*domain.Creator)

	for rows.Next() {
		creator := &domain.Creator{}
		connection := &domain.PlatformConnection{}

		dest := append(creatorScanDest(creator), connectionScanDest(connection)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("erro ao escanear criador: %w", err)
		}

		existing, ok := byID[creator.ID]
		if !ok {
			existing = creator
			byID[creator.ID] = creator
			creators = append(creators, creator)
		}
		existing.Platforms = append(existing.Platforms, connection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar criadores: %w", err)
	}

	return creators, nil
}

func (r *creatorRepository) ListActiveCreators(ctx context.Context) ([]*domain.Creator, error) {
	query, args, err := squirrel.
		Select(creatorColumns).
		From(creatorsTable).
		Where(squirrel.Eq{"c.status": domain.CreatorStatusActive}).
		OrderBy("c.created_at ASC", "c.id ASC").
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

	creators := make([]*domain.Creator, 0)
	for rows.Next() {
		creator := &domain.Creator{}
		if err := rows.Scan(creatorScanDest(creator)...); err != nil {
			return nil, fmt.Errorf("erro ao escanear criador: %w", err)
		}
		creators = append(creators, creator)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar criadores: %w", err)
	}

	return creators, nil
}

// GetCreator retorna nil, nil quando o criador não existe
func (r *creatorRepository) GetCreator(ctx context.Context, creatorID string) (*domain.Creator, error) {
	query, args, err := squirrel.
		Select(creatorColumns).
		From(creatorsTable).
		Where(squirrel.Eq{"c.id": creatorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	creator := &domain.Creator{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(creatorScanDest(creator)...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear criador: %w", err)
	}

	return creator, nil
}

func creatorScanDest(c *domain.Creator) []any {
	return []any{
		&c.ID,
		&c.Username,
		&c.DisplayName,
		&c.Email,
		&c.Status,
		&c.PerformanceScore,
		&c.CreatedAt,
	}
}
