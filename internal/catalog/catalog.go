// Package catalog holds the course reference table and its loaders.
package catalog

import (
	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

// Catalog is an ordered, read-only set of courses indexed by name.
// It is built once and never mutated, so it is safe for concurrent use.
type Catalog struct {
	courses []types.Course
	byName  map[string]int
}

// New builds a Catalog, failing fast on duplicate names since downstream
// code indexes courses by name.
func New(courses []types.Course) (*Catalog, error) {
	c := &Catalog{
		courses: make([]types.Course, len(courses)),
		byName:  make(map[string]int, len(courses)),
	}
	copy(c.courses, courses)

	for i, course := range c.courses {
		if _, exists := c.byName[course.Name]; exists {
			return nil, &DuplicateCourseError{Name: course.Name}
		}
		c.byName[course.Name] = i
	}

	return c, nil
}

// Load returns the built-in catalog.
func Load() (*Catalog, error) {
	return New(futaCourses())
}

// MustLoad is like Load but panics on a corrupt built-in catalog.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Courses returns the courses in catalog order. The slice is a copy.
func (c *Catalog) Courses() []types.Course {
	out := make([]types.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Get looks up a course by exact name.
func (c *Catalog) Get(name string) (types.Course, error) {
	i, ok := c.byName[name]
	if !ok {
		return types.Course{}, &CourseNotFoundError{Name: name}
	}
	return c.courses[i], nil
}

// ByFaculty returns the courses of one faculty in catalog order.
func (c *Catalog) ByFaculty(faculty string) []types.Course {
	var out []types.Course
	for _, course := range c.courses {
		if course.Faculty == faculty {
			out = append(out, course)
		}
	}
	return out
}

// Faculties returns the distinct faculty names in order of first appearance.
func (c *Catalog) Faculties() []string {
	seen := make(map[string]bool)
	var out []string
	for _, course := range c.courses {
		if !seen[course.Faculty] {
			seen[course.Faculty] = true
			out = append(out, course.Faculty)
		}
	}
	return out
}
