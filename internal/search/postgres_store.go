package search

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresJobStore implements JobStore for PostgreSQL.
type PostgresJobStore struct {
	db *sql.DB
}

// NewPostgresJobStore creates a new PostgreSQL job store.
func NewPostgresJobStore(db *sql.DB) *PostgresJobStore {
	return &PostgresJobStore{db: db}
}

// CreateTables creates the scan_jobs table if it doesn't exist.
func (s *PostgresJobStore) CreateTables(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS scan_jobs (
			job_id VARCHAR(64) PRIMARY KEY,
			start_index BIGINT NOT NULL,
			end_index BIGINT NOT NULL,
			ante INTEGER NOT NULL,
			criteria_name VARCHAR(128),
			status VARCHAR(32) NOT NULL,
			scanned BIGINT DEFAULT 0,
			match_count INTEGER DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			completed_at TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_scan_jobs_status ON scan_jobs(status);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// CreateJob inserts a new scan job.
func (s *PostgresJobStore) CreateJob(ctx context.Context, job *Job) error {
	query := `
		INSERT INTO scan_jobs (
			job_id, start_index, end_index, ante, criteria_name,
			status, scanned, match_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		job.JobID, job.StartIndex, job.EndIndex, job.Ante, job.CriteriaName,
		job.Status, job.Scanned, job.MatchCount, job.CreatedAt,
	)
	return err
}

// UpdateJobProgress updates a job's scanned count and match count.
func (s *PostgresJobStore) UpdateJobProgress(ctx context.Context, jobID string, scanned uint64, matches int) error {
	query := `
		UPDATE scan_jobs SET scanned = $1, match_count = $2 WHERE job_id = $3
	`
	result, err := s.db.ExecContext(ctx, query, scanned, matches, jobID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}

// CompleteJob marks a job as finished with the given terminal status.
func (s *PostgresJobStore) CompleteJob(ctx context.Context, jobID string, status string) error {
	query := `
		UPDATE scan_jobs SET status = $1, completed_at = $2 WHERE job_id = $3
	`
	now := time.Now()
	result, err := s.db.ExecContext(ctx, query, status, now, jobID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}

// GetJob retrieves a job by ID.
func (s *PostgresJobStore) GetJob(ctx context.Context, jobID string) (*Job, error) {
	query := `
		SELECT job_id, start_index, end_index, ante, criteria_name,
			   status, scanned, match_count, created_at, completed_at
		FROM scan_jobs
		WHERE job_id = $1
	`
	job := &Job{}
	var completedAt sql.NullTime

	err := s.db.QueryRowContext(ctx, query, jobID).Scan(
		&job.JobID, &job.StartIndex, &job.EndIndex, &job.Ante, &job.CriteriaName,
		&job.Status, &job.Scanned, &job.MatchCount, &job.CreatedAt, &completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		job.CompletedAt = &completedAt.Time
	}
	return job, nil
}
