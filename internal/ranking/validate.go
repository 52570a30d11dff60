package ranking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Emynex4real/innovateam-sub003/internal/grading"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	"github.com/go-playground/validator/v10"
)

// ValidateProfile checks the caller's profile before any course is evaluated:
// exam score in [0,400], at least five valid O-Level grades, and exactly four
// distinct UTME subjects including English Language.
func ValidateProfile(profile *types.StudentProfile) error {
	if profile == nil {
		return &ValidationError{Field: "profile", Message: "profile is required"}
	}

	if err := profile.Validate(); err != nil {
		return fromValidatorError(err)
	}

	for subject, grade := range profile.OLevelGrades {
		if strings.TrimSpace(subject) == "" {
			return &ValidationError{Field: "olevel_grades", Message: "subject names must not be empty"}
		}
		if _, err := grading.GradePoints(grade); err != nil {
			gradeErr := &grading.InvalidGradeError{Subject: subject, Grade: string(grade)}
			return &ValidationError{Field: "olevel_grades", Message: gradeErr.Error(), Cause: gradeErr}
		}
	}

	seen := make(map[string]bool, len(profile.UTMESubjects))
	hasEnglish := false
	for _, subject := range profile.UTMESubjects {
		key := strings.ToLower(strings.TrimSpace(subject))
		if seen[key] {
			return &ValidationError{Field: "utme_subjects", Message: fmt.Sprintf("duplicate UTME subject %q", subject)}
		}
		seen[key] = true
		if grading.SameSubject(subject, types.EnglishLanguage) {
			hasEnglish = true
		}
	}
	if !hasEnglish {
		return &ValidationError{Field: "utme_subjects", Message: "UTME subjects must include English Language"}
	}

	return nil
}

// fromValidatorError converts the first struct-tag failure into a ValidationError.
func fromValidatorError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "profile", Message: err.Error(), Cause: err}
	}

	fe := fieldErrs[0]
	switch fe.StructField() {
	case "ExamScore":
		return &ValidationError{Field: "exam_score", Message: "exam score must be between 0 and 400", Cause: err}
	case "OLevelGrades":
		return &ValidationError{
			Field:   "olevel_grades",
			Message: fmt.Sprintf("at least %d graded O-Level subjects are required", types.MinOLevelGrades),
			Cause:   err,
		}
	case "UTMESubjects":
		return &ValidationError{
			Field:   "utme_subjects",
			Message: fmt.Sprintf("exactly %d UTME subjects are required", types.UTMESubjectCount),
			Cause:   err,
		}
	default:
		if strings.HasPrefix(fe.StructField(), "UTMESubjects[") {
			return &ValidationError{Field: "utme_subjects", Message: "UTME subject names must not be empty", Cause: err}
		}
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("failed %q check", fe.Tag()), Cause: err}
	}
}
