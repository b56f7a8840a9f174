package search

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// ClickHouseConfig holds ClickHouse connection configuration.
type ClickHouseConfig struct {
	Host         string
	Port         int
	Database     string
	Username     string
	Password     string
	Secure       bool
	MaxOpenConns int
	MaxIdleConns int
	ConnTimeout  time.Duration
}

// ClickHouseMatchStore implements MatchStore for ClickHouse, for the
// append-mostly, query-by-time-range access pattern a seed search produces.
type ClickHouseMatchStore struct {
	db clickhouse.Conn
}

// NewClickHouseMatchStore connects to ClickHouse and returns a MatchStore
// backed by it.
func NewClickHouseMatchStore(ctx context.Context, config ClickHouseConfig) (*ClickHouseMatchStore, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", config.Host, config.Port)},
		Auth: clickhouse.Auth{
			Database: config.Database,
			Username: config.Username,
			Password: config.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		TLS: &tls.Config{InsecureSkipVerify: config.Secure},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return &ClickHouseMatchStore{db: conn}, nil
}

// CreateTables creates the seed_matches table if it doesn't exist.
func (ch *ClickHouseMatchStore) CreateTables(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS seed_matches (
		seed_index UInt64,
		seed String,
		detail String,
		found_at DateTime64(3)
	) ENGINE = ReplacingMergeTree(found_at)
	ORDER BY (seed_index, found_at)`

	if err := ch.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create seed_matches table: %w", err)
	}
	return nil
}

// RecordMatch inserts a single match.
func (ch *ClickHouseMatchStore) RecordMatch(ctx context.Context, match *Match) error {
	return ch.db.Exec(ctx,
		`INSERT INTO seed_matches (seed_index, seed, detail, found_at) VALUES (?, ?, ?, ?)`,
		match.SeedIndex, match.Seed, match.Detail, match.FoundAt,
	)
}

// RecordMatches inserts multiple matches.
func (ch *ClickHouseMatchStore) RecordMatches(ctx context.Context, matches []*Match) error {
	if len(matches) == 0 {
		return nil
	}
	for _, m := range matches {
		if err := ch.RecordMatch(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// GetMatches retrieves matches based on query.
func (ch *ClickHouseMatchStore) GetMatches(ctx context.Context, query MatchQuery) ([]Match, error) {
	sql := `SELECT seed_index, seed, detail, found_at FROM seed_matches WHERE 1=1`
	args := make([]interface{}, 0)

	if query.Detail != "" {
		sql += " AND detail = ?"
		args = append(args, query.Detail)
	}
	if !query.StartTime.IsZero() {
		sql += " AND found_at >= ?"
		args = append(args, query.StartTime)
	}
	if !query.EndTime.IsZero() {
		sql += " AND found_at <= ?"
		args = append(args, query.EndTime)
	}

	sql += " ORDER BY found_at DESC"
	if query.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", query.Limit)
	}

	rows, err := ch.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.SeedIndex, &m.Seed, &m.Detail, &m.FoundAt); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Close closes the ClickHouse connection.
func (ch *ClickHouseMatchStore) Close() error {
	return ch.db.Close()
}

// Ping checks if the connection is alive.
func (ch *ClickHouseMatchStore) Ping(ctx context.Context) error {
	return ch.db.Ping(ctx)
}
