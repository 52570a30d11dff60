package server

import (
	"errors"
	"net/http"

	"github.com/Emynex4real/innovateam-sub003/internal/catalog"
	"github.com/Emynex4real/innovateam-sub003/internal/grading"
	"github.com/Emynex4real/innovateam-sub003/internal/ranking"
	"github.com/Emynex4real/innovateam-sub003/internal/schemas"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Field   string        `json:"field,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail is one schema violation.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ranking.ValidationError
		schemaErr     *schemas.ValidationError
		gradeErr      *grading.InvalidGradeError
		notFoundErr   *catalog.CourseNotFoundError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaErr), errors.As(err, &gradeErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// toErrorResponse exposes validation details and hides internal errors.
func toErrorResponse(err error) ErrorResponse {
	var (
		validationErr *ranking.ValidationError
		schemaErr     *schemas.ValidationError
	)
	switch {
	case errors.As(err, &validationErr):
		return ErrorResponse{Error: validationErr.Message, Field: validationErr.Field}
	case errors.As(err, &schemaErr):
		resp := ErrorResponse{Error: "profile does not match the student profile schema"}
		for _, fe := range schemaErr.Errors {
			resp.Details = append(resp.Details, ErrorDetail{Field: fe.Field, Message: fe.Message})
		}
		return resp
	case HTTPStatus(err) == http.StatusInternalServerError:
		return ErrorResponse{Error: "internal server error"}
	default:
		return ErrorResponse{Error: err.Error()}
	}
}
