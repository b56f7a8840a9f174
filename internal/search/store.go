package search

import (
	"context"
	"time"
)

// MatchStore persists matches found by a scan for later querying.
type MatchStore interface {
	CreateTables(ctx context.Context) error
	RecordMatch(ctx context.Context, match *Match) error
	RecordMatches(ctx context.Context, matches []*Match) error
	GetMatches(ctx context.Context, query MatchQuery) ([]Match, error)
}

// MatchProducer publishes a match-found event to a downstream consumer as
// soon as a scan worker finds one, independent of whether it is also
// durably persisted via MatchStore.
type MatchProducer interface {
	PublishMatch(ctx context.Context, match *Match) error
	Close() error
}

// JobStore persists scan-job metadata (the range requested, its progress,
// and its outcome) so a long-running scan can be resumed or audited.
type JobStore interface {
	CreateTables(ctx context.Context) error
	CreateJob(ctx context.Context, job *Job) error
	UpdateJobProgress(ctx context.Context, jobID string, scanned uint64, matches int) error
	CompleteJob(ctx context.Context, jobID string, status string) error
	GetJob(ctx context.Context, jobID string) (*Job, error)
}

// MatchQuery filters MatchStore.GetMatches.
type MatchQuery struct {
	Detail    string
	StartTime time.Time
	EndTime   time.Time
	Limit     int
}

// Job is one scan request's metadata and progress.
type Job struct {
	JobID        string
	StartIndex   uint64
	EndIndex     uint64
	Ante         int
	CriteriaName string
	Status       string
	Scanned      uint64
	MatchCount   int
	CreatedAt    time.Time
	CompletedAt  *time.Time
}
