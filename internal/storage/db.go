package storage

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// NewDBWithConnection wraps an existing connection. Used by tests.
func NewDBWithConnection(conn *sql.DB) *DB {
	return &DB{connection: conn}
}

// SaveMatchRecord records one match request outcome. Exactly one of
// matchScore / errorKind is expected to be set.
func (db *DB) SaveMatchRecord(ctx context.Context, rec *MatchRecord) error {
	query := `INSERT INTO match_results (resume_url, job_role, match_score, error_kind, created_at)
              VALUES ($1, $2, $3, $4, NOW())
              RETURNING id`
	var score interface{}
	if rec.MatchScore != nil {
		score = *rec.MatchScore
	}
	var errKind interface{}
	if rec.ErrorKind != "" {
		errKind = rec.ErrorKind
	}
	return db.connection.QueryRowContext(ctx, query,
		rec.ResumeURL, rec.JobRole, score, errKind,
	).Scan(&rec.ID)
}

// RecentMatches returns the newest match records, newest first.
func (db *DB) RecentMatches(ctx context.Context, limit int) ([]*MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, resume_url, COALESCE(job_role, ''), match_score, COALESCE(error_kind, ''), created_at
              FROM match_results
              ORDER BY created_at DESC
              LIMIT $1`
	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*MatchRecord
	for rows.Next() {
		rec := &MatchRecord{}
		var score sql.NullFloat64
		if err := rows.Scan(&rec.ID, &rec.ResumeURL, &rec.JobRole, &score, &rec.ErrorKind, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if score.Valid {
			v := score.Float64
			rec.MatchScore = &v
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SaveReportRecord records a generated developer report.
func (db *DB) SaveReportRecord(ctx context.Context, rec *ReportRecord) error {
	query := `INSERT INTO reports (github_login, rating, report_url, created_at)
              VALUES ($1, $2, $3, NOW())
              RETURNING id`
	return db.connection.QueryRowContext(ctx, query,
		rec.GitHubLogin, rec.Rating, rec.ReportURL,
	).Scan(&rec.ID)
}
