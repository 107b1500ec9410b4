package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"MarketIntel/internal/domain"
	"MarketIntel/internal/ports"
)

// PostgresRepository persists digest runs into Postgres.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.DigestRepository = (*PostgresRepository)(nil)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveDigest stores the digest snapshot and its rendered report.
func (r *PostgresRepository) SaveDigest(ctx context.Context, digest *domain.MarketDigest, report string) error {
	if r.db == nil || digest == nil {
		return nil
	}

	query, args, err := r.builder.
		Insert("market_digests").
		Columns("generated_at", "article_count", "cluster_count",
			"bullish_pct", "bearish_pct", "mixed_count", "neutral_count",
			"geopolitical", "supply", "demand", "monetary", "report").
		Values(
			digest.GeneratedAt,
			len(digest.Articles),
			len(digest.Clusters),
			digest.Mood.BullishPct,
			digest.Mood.BearishPct,
			digest.Mood.MixedCount,
			digest.Mood.NeutralCount,
			digest.ThemeCounts["geopolitical"],
			digest.ThemeCounts["supply"],
			digest.ThemeCounts["demand"],
			digest.ThemeCounts["monetary"],
			report,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert digest: %w", err)
	}

	return nil
}

// LatestReport returns the most recently stored rendered report, or empty
// string when none exists.
func (r *PostgresRepository) LatestReport(ctx context.Context) (string, error) {
	if r.db == nil {
		return "", nil
	}

	query, args, err := r.builder.
		Select("report").
		From("market_digests").
		OrderBy("generated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build select: %w", err)
	}

	var report string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&report)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query latest report: %w", err)
	}

	return report, nil
}
