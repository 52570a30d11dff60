// Package grading converts O-Level letter grades to points and aggregates them.
package grading

import (
	"strings"

	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

// PassPoints is the lowest point value that counts as a credit pass (C6).
const PassPoints = 4

// MaxPoints is the point value of the best grade (A1).
const MaxPoints = 9

var gradePoints = map[types.Grade]int{
	types.GradeA1: 9,
	types.GradeB2: 8,
	types.GradeB3: 7,
	types.GradeC4: 6,
	types.GradeC5: 5,
	types.GradeC6: 4,
}

// GradePoints returns the point value of a grade.
func GradePoints(grade types.Grade) (int, error) {
	points, ok := gradePoints[grade]
	if !ok {
		return 0, &InvalidGradeError{Grade: string(grade)}
	}
	return points, nil
}

// ParseGrade normalizes a raw token ("b2 ", "a1") to a Grade.
func ParseGrade(raw string) (types.Grade, error) {
	grade := types.Grade(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := gradePoints[grade]; !ok {
		return "", &InvalidGradeError{Grade: raw}
	}
	return grade, nil
}

// ComputeGPA returns the mean grade points over the supplied grades.
// Missing subjects are simply absent; an empty map yields 0.
func ComputeGPA(grades map[string]types.Grade) (float64, error) {
	if len(grades) == 0 {
		return 0.0, nil
	}

	total := 0
	for subject, grade := range grades {
		points, err := GradePoints(grade)
		if err != nil {
			return 0, &InvalidGradeError{Subject: subject, Grade: string(grade)}
		}
		total += points
	}

	return float64(total) / float64(len(grades)), nil
}

// HasCredit reports whether the grades include a credit pass in any of the
// requirement's alternatives. Subject names compare case-insensitively.
// It returns the subject and grade that satisfied the requirement.
func HasCredit(grades map[string]types.Grade, req types.SubjectRequirement) (string, types.Grade, bool) {
	for _, alt := range req {
		for subject, grade := range grades {
			if !SameSubject(subject, alt) {
				continue
			}
			if points, err := GradePoints(grade); err == nil && points >= PassPoints {
				return subject, grade, true
			}
		}
	}
	return "", "", false
}

// SameSubject compares subject names ignoring case and surrounding whitespace.
func SameSubject(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
