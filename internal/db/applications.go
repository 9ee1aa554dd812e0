package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveApplication stores one screening result and returns its ID
func (db *DB) SaveApplication(ctx context.Context, app *Application) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, candidate_name, source_file, mime_type, decision, score, explanation)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		app.JobID, app.CandidateName, app.SourceFile, app.MimeType, app.Decision, app.Score, app.Explanation,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save application: %w", err)
	}
	return id, nil
}

// GetApplication retrieves an application by ID. Returns nil when none exists.
func (db *DB) GetApplication(ctx context.Context, appID uuid.UUID) (*Application, error) {
	var app Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, COALESCE(candidate_name, ''), COALESCE(source_file, ''), COALESCE(mime_type, ''),
		        decision, score, explanation, created_at
		 FROM applications WHERE id = $1`,
		appID,
	).Scan(&app.ID, &app.JobID, &app.CandidateName, &app.SourceFile, &app.MimeType,
		&app.Decision, &app.Score, &app.Explanation, &app.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// ApplicationFilters holds optional filters for listing applications
type ApplicationFilters struct {
	Decision string
	Limit    int
}

// ListApplications retrieves a job's applications, newest first
func (db *DB) ListApplications(ctx context.Context, jobID uuid.UUID, filters ApplicationFilters) ([]Application, error) {
	if filters.Limit == 0 {
		filters.Limit = 100
	}

	query := `SELECT id, job_id, COALESCE(candidate_name, ''), COALESCE(source_file, ''), COALESCE(mime_type, ''),
	                 decision, score, explanation, created_at
		FROM applications WHERE job_id = $1`
	args := []any{jobID}
	argNum := 2

	if filters.Decision != "" {
		query += fmt.Sprintf(" AND decision = $%d", argNum)
		args = append(args, filters.Decision)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.CandidateName, &app.SourceFile, &app.MimeType,
			&app.Decision, &app.Score, &app.Explanation, &app.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// GetJobStats summarizes screening outcomes for one job
func (db *DB) GetJobStats(ctx context.Context, jobID uuid.UUID) (*JobStats, error) {
	var stats JobStats
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE decision = 'selected'),
		        COUNT(*) FILTER (WHERE decision = 'rejected'),
		        AVG(score)
		 FROM applications WHERE job_id = $1`,
		jobID,
	).Scan(&stats.Total, &stats.Selected, &stats.Rejected, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to get job stats: %w", err)
	}
	return &stats, nil
}
