package grading

import "fmt"

// InvalidGradeError indicates a grade token outside the fixed O-Level grade set.
type InvalidGradeError struct {
	Subject string
	Grade   string
}

func (e *InvalidGradeError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("invalid grade %q for subject %q", e.Grade, e.Subject)
	}
	return fmt.Sprintf("invalid grade %q", e.Grade)
}
