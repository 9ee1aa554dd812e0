package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
)

// maxResumeBytes caps resume uploads at 10 MiB.
const maxResumeBytes = 10 << 20

// handleScreen accepts a resume upload (multipart field "resume") for a job,
// runs the screening engine against the job's stored rules and persists the
// outcome as an application.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
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

	rules, err := decodeRules(job.Rules)
	if err != nil {
		// Stored rules predate a schema change; surface as a server error
		// rather than blaming the upload.
		s.errorResponse(w, http.StatusInternalServerError, "Stored job rules are invalid: "+err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume file")
		return
	}
	if len(data) > maxResumeBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Resume file too large")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = ingestion.MimeTypeForExtension(filepath.Ext(header.Filename))
	}

	text, err := ingestion.ExtractText(data, mimeType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.engine.Screen(text, rules)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	explanationJSON, err := json.Marshal(result.Explanation)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode explanation")
		return
	}

	app := &db.Application{
		JobID:         jobID,
		CandidateName: r.FormValue("candidate_name"),
		SourceFile:    header.Filename,
		MimeType:      mimeType,
		Decision:      string(result.Decision),
		Score:         result.Score,
		Explanation:   explanationJSON,
	}
	appID, err := s.db.SaveApplication(r.Context(), app)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"application_id": appID,
		"decision":       result.Decision,
		"score":          result.Score,
		"explanation":    result.Explanation,
	})
}

// handleListApplications lists a job's screened applications.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	apps, err := s.db.ListApplications(r.Context(), jobID, db.ApplicationFilters{
		Decision: r.URL.Query().Get("decision"),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	if apps == nil {
		apps = []db.Application{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"applications": apps, "count": len(apps)})
}

// handleGetApplication returns one application with its explanation.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := s.db.GetApplication(r.Context(), appID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get application")
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleJobStats returns aggregate screening outcomes for a job.
func (s *Server) handleJobStats(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	stats, err := s.db.GetJobStats(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job stats")
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}
