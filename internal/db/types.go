package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Job represents a job posting with its screening rules. Rules are stored as
// JSONB and decoded by the caller into types.JobRules.
type Job struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Rules       json.RawMessage `json:"rules"`
	CreatedBy   uuid.UUID       `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Application represents one screened resume for a job. Explanation holds
// the serialized explanation tree as JSONB.
type Application struct {
	ID            uuid.UUID       `json:"id"`
	JobID         uuid.UUID       `json:"job_id"`
	CandidateName string          `json:"candidate_name,omitempty"`
	SourceFile    string          `json:"source_file,omitempty"`
	MimeType      string          `json:"mime_type,omitempty"`
	Decision      string          `json:"decision"`
	Score         *float64        `json:"score,omitempty"`
	Explanation   json.RawMessage `json:"explanation,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// JobStats summarizes screening outcomes for one job
type JobStats struct {
	Total        int      `json:"total"`
	Selected     int      `json:"selected"`
	Rejected     int      `json:"rejected"`
	AverageScore *float64 `json:"average_score,omitempty"`
}
