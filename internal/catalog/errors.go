package catalog

import "fmt"

// DuplicateCourseError indicates two catalog entries share a name.
type DuplicateCourseError struct {
	Name string
}

func (e *DuplicateCourseError) Error() string {
	return fmt.Sprintf("duplicate course in catalog: %s", e.Name)
}

// CourseNotFoundError indicates a course name absent from the catalog.
type CourseNotFoundError struct {
	Name string
}

func (e *CourseNotFoundError) Error() string {
	return fmt.Sprintf("course not found: %s", e.Name)
}

// LoadError represents an error during catalog file I/O, parsing or validation
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
