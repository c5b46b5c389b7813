package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/cv-scorer/internal/analysis"
	"github.com/jonathan/cv-scorer/internal/fetch"
	"github.com/jonathan/cv-scorer/internal/server/middleware"
	"github.com/jonathan/cv-scorer/internal/store"
	"github.com/jonathan/cv-scorer/internal/types"
	"github.com/jonathan/cv-scorer/internal/validation"
)

// handleAnalyze runs one full analysis and returns the AnalysisRecord.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req validation.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.validator.Validate(&req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			s.errorResponse(w, http.StatusBadRequest, vErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "request validation failed")
		return
	}

	// The tier middleware already resolved the Authorization header; a body
	// token is accepted as a fallback for clients that cannot set headers.
	callerTier := middleware.TierFromContext(r.Context())
	if callerTier == types.TierFree && req.TierToken != "" {
		callerTier = s.resolver.Resolve(req.TierToken)
	}

	jobDescription := req.JobDescription
	if jobDescription == "" {
		fetched, err := fetch.FromURL(r.Context(), req.JobURL, s.useBrowser, false)
		if err != nil {
			log.Printf("job posting fetch failed: %v", err)
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch job posting from job_url")
			return
		}
		jobDescription = fetched
	}

	record, err := s.engine.Analyze(r.Context(), analysis.Request{
		CVText:         req.CVText,
		JobDescription: jobDescription,
		TargetRole:     req.TargetRole,
		Tier:           callerTier,
		Strategy:       req.Strategy,
	})
	if err != nil {
		if errors.Is(err, analysis.ErrCVTooShort) || errors.Is(err, analysis.ErrJobTooShort) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "CV analysis failed")
		return
	}

	if err := s.store.Save(r.Context(), record); err != nil {
		// The analysis succeeded; a storage failure should not hide the result.
		log.Printf("failed to save analysis %s: %v", record.ID, err)
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleGetAnalysis fetches a stored analysis record by id.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "analysis id is required")
		return
	}

	record, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "analysis not found")
			return
		}
		log.Printf("failed to load analysis %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}
