// Package types provides type definitions for structured data used throughout the course advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Grade is an O-Level letter grade.
type Grade string

// Valid O-Level grades, best first.
const (
	GradeA1 Grade = "A1"
	GradeB2 Grade = "B2"
	GradeB3 Grade = "B3"
	GradeC4 Grade = "C4"
	GradeC5 Grade = "C5"
	GradeC6 Grade = "C6"
)

// SubjectRequirement lists interchangeable subjects. It is satisfied when any one
// alternative is held. Its JSON form is the slash-separated string, e.g.
// "Biology/Agricultural Science".
type SubjectRequirement []string

// ParseSubjectRequirement splits a slash-separated requirement into its alternatives.
func ParseSubjectRequirement(s string) SubjectRequirement {
	parts := strings.Split(s, "/")
	req := make(SubjectRequirement, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			req = append(req, p)
		}
	}
	return req
}

// String returns the slash-separated form.
func (r SubjectRequirement) String() string {
	return strings.Join(r, "/")
}

// MarshalJSON encodes the requirement as its slash-separated form.
func (r SubjectRequirement) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a slash-separated requirement string.
func (r *SubjectRequirement) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("subject requirement must be a string: %w", err)
	}
	*r = ParseSubjectRequirement(s)
	return nil
}

// Requirements parses a list of slash-separated requirement strings.
func Requirements(specs ...string) []SubjectRequirement {
	reqs := make([]SubjectRequirement, 0, len(specs))
	for _, s := range specs {
		reqs = append(reqs, ParseSubjectRequirement(s))
	}
	return reqs
}

// Course is an immutable catalog entry. Name is the unique key.
type Course struct {
	Name               string               `json:"name" validate:"required"`
	Faculty            string               `json:"faculty" validate:"required"`
	Cutoff             int                  `json:"cutoff" validate:"gte=0,lte=400"`
	Capacity           int                  `json:"capacity" validate:"gte=0"` // informational only
	OLevelRequirements []SubjectRequirement `json:"olevel_requirements" validate:"dive,min=1"`
	UTMERequirements   []SubjectRequirement `json:"utme_requirements" validate:"dive,min=1"`
	InterestTags       []string             `json:"interest_tags" validate:"dive,required"`
	CareerProspects    []string             `json:"career_prospects,omitempty"` // informational only
}

// Validate validates the Course using the validator.
func (c *Course) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
