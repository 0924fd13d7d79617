// Package store tracks job lifecycles: an opaque identifier mapped to
// temporary source and output artifacts, with TTL-based eviction. Document
// content lives only in the artifact files; the database holds paths, status
// and timestamps.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vianieuws/perstool/internal/model"
)

// ErrNotFound is returned by Get for unknown or expired jobs.
var ErrNotFound = errors.New("store: job not found")

// Store provides access to the jobs table and the artifact files it owns.
type Store struct {
	db     *sql.DB
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// New creates a Store with the given TTL and initialises the schema.
func New(db *sql.DB, ttl time.Duration, logger *zap.Logger) (*Store, error) {
	s := &Store{db: db, ttl: ttl, logger: logger, now: time.Now}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id          TEXT PRIMARY KEY,
		status      TEXT NOT NULL,
		source_path TEXT NOT NULL,
		output_path TEXT,
		error_code  TEXT,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_jobs_created ON jobs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Put upserts a job. Re-putting the same identifier replaces the entry.
func (s *Store) Put(ctx context.Context, job model.Job) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, status, source_path, output_path, error_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			source_path = excluded.source_path,
			output_path = excluded.output_path,
			error_code = excluded.error_code`,
		job.ID, job.Status, job.SourcePath, job.OutputPath, job.ErrorCode,
		job.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Get returns the job for id, or ErrNotFound when the id is unknown or the
// entry has outlived its TTL. Expired entries are reported absent even
// before the sweeper has removed them.
func (s *Store) Get(ctx context.Context, id string) (*model.Job, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, status, source_path, output_path, error_code, created_at FROM jobs WHERE id = ?`, id)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if job.Expired(s.now(), s.ttl) {
		return nil, ErrNotFound
	}
	return job, nil
}

// SetStatus moves a job to processed or error state.
func (s *Store) SetStatus(ctx context.Context, id, status, errorCode, outputPath string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, error_code = ?, output_path = ? WHERE id = ?`,
		status, errorCode, outputPath, id)
	return err
}

// Cleanup removes the job's artifact files and then its entry. File deletion
// is best-effort: a file that is already gone is not an error.
func (s *Store) Cleanup(ctx context.Context, id string) error {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, status, source_path, output_path, error_code, created_at FROM jobs WHERE id = ?`, id)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, path := range []string{job.SourcePath, job.OutputPath} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("artifact removal failed", zap.String("job_id", id), zap.Error(err))
		}
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	return err
}

// ListExpired returns the ids of all entries older than the TTL.
func (s *Store) ListExpired(ctx context.Context) ([]string, error) {
	cutoff := s.now().Add(-s.ttl).UTC().Format(time.RFC3339)
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM jobs WHERE created_at < ?`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanJob(row *sql.Row) (*model.Job, error) {
	var (
		job        model.Job
		outputPath sql.NullString
		errorCode  sql.NullString
		createdAt  string
	)
	if err := row.Scan(&job.ID, &job.Status, &job.SourcePath, &outputPath, &errorCode, &createdAt); err != nil {
		return nil, err
	}
	job.OutputPath = outputPath.String
	job.ErrorCode = errorCode.String
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	job.CreatedAt = t
	return &job, nil
}
