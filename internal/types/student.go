// Package types provides type definitions for structured data used throughout the course advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// EnglishLanguage is the compulsory UTME subject.
const EnglishLanguage = "English Language"

// MinOLevelGrades is the minimum number of graded O-Level subjects a profile must carry.
const MinOLevelGrades = 5

// UTMESubjectCount is the exact number of UTME subjects a profile must register.
const UTMESubjectCount = 4

// StudentProfile is the caller-supplied input for one recommendation request.
type StudentProfile struct {
	ExamScore       int              `json:"exam_score" validate:"gte=0,lte=400"`
	OLevelGrades    map[string]Grade `json:"olevel_grades" validate:"min=5"`
	UTMESubjects    []string         `json:"utme_subjects" validate:"len=4,dive,required"`
	Interests       string           `json:"interests"`
	PreferredCourse string           `json:"preferred_course,omitempty"`
}

// Validate validates the StudentProfile struct tags using the validator.
// Checks that need domain knowledge (grade tokens, English Language, distinct
// subjects) live in the ranking package.
func (p *StudentProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Peer is one entry of the reference population used by the peer-similarity
// heuristic: a past student's results and the courses they chose.
type Peer struct {
	ExamScore int      `json:"exam_score"`
	GPA       float64  `json:"gpa"`
	Interests []string `json:"interests"`
	Courses   []string `json:"courses"`
}
