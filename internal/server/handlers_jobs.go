package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/types"
)

// CreateJobRequest is the payload for POST /jobs.
type CreateJobRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Rules       json.RawMessage `json:"rules"`
}

// decodeRules runs raw rules JSON through schema validation, struct decoding
// and the engine's semantic checks. Every job rules payload enters through
// here.
func decodeRules(raw json.RawMessage) (*types.JobRules, error) {
	if err := schemas.ValidateJobRulesJSON(raw); err != nil {
		return nil, err
	}
	var rules types.JobRules
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, &ErrValidation{Field: "rules", Message: err.Error()}
	}
	if err := screening.ValidateRules(&rules); err != nil {
		return nil, err
	}
	return &rules, nil
}

// handleCreateJob creates a job posting with validated screening rules.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(req.Rules) == 0 {
		req.Rules = json.RawMessage(`{}`)
	}

	if _, err := decodeRules(req.Rules); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobID, err := s.db.CreateJob(r.Context(), req.Title, req.Description, req.Rules, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil || job == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created job")
		return
	}
	s.jsonResponse(w, http.StatusCreated, job)
}

// handleGetJob returns one job posting.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleListJobs lists the authenticated user's job postings.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := s.db.ListJobs(r.Context(), db.JobFilters{
		CreatedBy: userID,
		Title:     r.URL.Query().Get("title"),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []db.Job{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs, "count": len(jobs)})
}

// handleUpdateJobRules replaces a job's screening rules.
func (s *Server) handleUpdateJobRules(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := decodeRules(raw); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.db.UpdateJobRules(r.Context(), jobID, raw); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update job rules")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Rules updated"})
}

// handleDeleteJob deletes a job and its applications.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := s.db.DeleteJob(r.Context(), jobID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleValidateRules validates a rules document without persisting anything.
func (s *Server) handleValidateRules(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := decodeRules(raw); err != nil {
		s.jsonResponse(w, HTTPStatus(err), map[string]any{"valid": false, "error": err.Error()})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"valid": true})
}
