package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Emynex4real/innovateam-sub003/internal/export"
	"github.com/Emynex4real/innovateam-sub003/internal/ranking"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	"github.com/google/uuid"
)

// RecommendResponse is the body of POST /recommend.
type RecommendResponse struct {
	RequestID string `json:"request_id"`
	types.RecommendationList
}

// CourseListResponse is the body of GET /courses.
type CourseListResponse struct {
	Courses []types.Course `json:"courses"`
	Count   int            `json:"count"`
}

// handleRecommend ranks the catalog for the posted student profile.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	list, err := s.recommend(w, r)
	if err != nil {
		log.Printf("[server] recommend %s failed: %v", requestID, err)
		s.jsonResponse(w, HTTPStatus(err), toErrorResponse(err))
		return
	}

	log.Printf("[server] recommend %s: %d eligible courses", requestID, len(list.Recommendations))
	s.jsonResponse(w, http.StatusOK, RecommendResponse{RequestID: requestID, RecommendationList: *list})
}

// handleExport ranks the catalog for the posted profile and returns the
// export rows as CSV or JSON (?format=, default json).
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatJSON
	}
	if format != export.FormatJSON && format != export.FormatCSV {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q (use json or csv)", format))
		return
	}

	list, err := s.recommend(w, r)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), toErrorResponse(err))
		return
	}

	if format == export.FormatCSV {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="recommendations.csv"`)
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	if err := export.Write(w, format, export.Rows(list)); err != nil {
		log.Printf("[server] Error writing export: %v", err)
	}
}

// recommend decodes the request body, checks it against the profile schema and ranks it.
func (s *Server) recommend(w http.ResponseWriter, r *http.Request) (*types.RecommendationList, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &ranking.ValidationError{Field: "body", Message: "failed to read request body", Cause: err}
	}

	profile, err := ranking.DecodeProfile(body)
	if err != nil {
		return nil, err
	}

	return ranking.Recommend(profile, s.catalog, s.peers)
}

// handleListCourses lists the catalog, optionally filtered by ?faculty=.
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses := s.catalog.Courses()
	if faculty := r.URL.Query().Get("faculty"); faculty != "" {
		courses = s.catalog.ByFaculty(faculty)
	}
	if courses == nil {
		courses = []types.Course{}
	}

	s.jsonResponse(w, http.StatusOK, CourseListResponse{Courses: courses, Count: len(courses)})
}

// handleGetCourse returns one course by name.
func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.catalog.Get(r.PathValue("name"))
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), toErrorResponse(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, course)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ok", "courses": s.catalog.Len()})
}
