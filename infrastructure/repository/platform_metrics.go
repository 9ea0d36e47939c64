package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-automation/infrastructure/database/postgres"
	"github.com/vfg2006/creator-automation/internal/domain"
)

//go:generate mockgen -source=platform_metrics.go -destination=mocks/platform_metrics_mock.go -package=mocks

const platformMetricsTable = "platform_metrics pm"

type PlatformMetricsRepository interface {
	UpsertDailySnapshot(ctx context.Context, snapshot *domain.DailyMetricsSnapshot) error
	ListCreatorSnapshots(ctx context.Context, creatorID string, start, end time.Time) ([]*domain.DailyMetricsSnapshot, error)
}

type platformMetricsRepository struct {
	conn postgres.Queryer
}

func NewPlatformMetricsRepository(conn postgres.Queryer) PlatformMetricsRepository {
	return &platformMetricsRepository{
		conn: conn,
	}
}

// UpsertDailySnapshot grava a linha do dia. Uma segunda gravação no mesmo dia
// sobrescreve os valores da primeira.
func (r *platformMetricsRepository) UpsertDailySnapshot(ctx context.Context, snapshot *domain.DailyMetricsSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("platform_metrics").
		Columns(
			"platform_connection_id", "date", "followers", "following", "posts_count",
			"avg_likes", "avg_comments", "avg_shares", "avg_views", "engagement_rate",
			"reach", "impressions", "profile_views",
		).
		Values(
			snapshot.PlatformConnectionID,
			snapshot.Date,
			snapshot.Followers,
			snapshot.Following,
			snapshot.PostsCount,
			snapshot.AvgLikes,
			snapshot.AvgComments,
			snapshot.AvgShares,
			snapshot.AvgViews,
			snapshot.EngagementRate,
			snapshot.Reach,
			snapshot.Impressions,
			snapshot.ProfileViews,
		).
		Suffix(`
			ON CONFLICT (platform_connection_id, date) DO UPDATE SET
				followers = EXCLUDED.followers,
				following = EXCLUDED.following,
				posts_count = EXCLUDED.posts_count,
				avg_likes = EXCLUDED.avg_likes,
				avg_comments = EXCLUDED.avg_comments,
				avg_shares = EXCLUDED.avg_shares,
				avg_views = EXCLUDED.avg_views,
				engagement_rate = EXCLUDED.engagement_rate,
				reach = EXCLUDED.reach,
				impressions = EXCLUDED.impressions,
				profile_views = EXCLUDED.profile_views,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListCreatorSnapshots retorna os snapshots de todas as conexões do criador no período,
// em ordem de data
func (r *platformMetricsRepository) ListCreatorSnapshots(ctx context.Context, creatorID string, start, end time.Time) ([]*domain.DailyMetricsSnapshot, error) {
	query, args, err := squirrel.
		Select(
			"pm.id, pm.platform_connection_id, cp.creator_id, cp.platform, pm.date, pm.followers, pm.following, "+
				"pm.posts_count, pm.avg_likes, pm.avg_comments, pm.avg_shares, pm.avg_views, pm.engagement_rate, "+
				"pm.reach, pm.impressions, pm.profile_views, pm.created_at",
		).
		From(platformMetricsTable).
		Join("creator_platforms cp ON cp.id = pm.platform_connection_id").
		Where(squirrel.Eq{"cp.creator_id": creatorID}).
		Where(squirrel.GtOrEq{"pm.date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"pm.date": end.Format(time.DateOnly)}).
		OrderBy("pm.date ASC", "cp.platform ASC").
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

	snapshots := make([]*domain.DailyMetricsSnapshot, 0)
	for rows.Next() {
		s := &domain.DailyMetricsSnapshot{}
		var date time.Time

		if err := rows.Scan(
			&s.ID,
			&s.PlatformConnectionID,
			&s.CreatorID,
			&s.Platform,
			&date,
			&s.Followers,
			&s.Following,
			&s.PostsCount,
			&s.AvgLikes,
			&s.AvgComments,
			&s.AvgShares,
			&s.AvgViews,
			&s.EngagementRate,
			&s.Reach,
			&s.Impressions,
			&s.ProfileViews,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}

		s.Date = date.Format(time.DateOnly)
		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar snapshots: %w", err)
	}

	return snapshots, nil
}
