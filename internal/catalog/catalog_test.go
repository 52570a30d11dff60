package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Emynex4real/innovateam-sub003/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BuiltInCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.Greater(t, c.Len(), 0)

	for _, course := range c.Courses() {
		assert.NoError(t, course.Validate(), "course %s should be valid", course.Name)
		for _, tag := range course.InterestTags {
			assert.Equal(t, strings.ToLower(tag), tag, "tag %q of %s should be lowercase", tag, course.Name)
		}
	}
}

func TestGet(t *testing.T) {
	c := MustLoad()

	cs, err := c.Get("Computer Science")
	require.NoError(t, err)
	assert.Equal(t, FacultyComputing, cs.Faculty)
	assert.Equal(t, 200, cs.Cutoff)

	_, err = c.Get("Underwater Basket Weaving")
	var notFound *CourseNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Underwater Basket Weaving", notFound.Name)
}

func TestNew_DuplicateCourse(t *testing.T) {
	courses := []types.Course{
		{Name: "Physics", Faculty: FacultyPhysical},
		{Name: "Mathematics", Faculty: FacultyPhysical},
		{Name: "Physics", Faculty: FacultyEngineering},
	}

	c, err := New(courses)
	assert.Nil(t, c)

	var dup *DuplicateCourseError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Physics", dup.Name)
}

func TestCourses_ReturnsCopy(t *testing.T) {
	c := MustLoad()
	courses := c.Courses()
	courses[0].Name = "changed"

	assert.NotEqual(t, "changed", c.Courses()[0].Name)
}

func TestByFacultyAndFaculties(t *testing.T) {
	c := MustLoad()

	health := c.ByFaculty(FacultyHealth)
	require.NotEmpty(t, health)
	for _, course := range health {
		assert.Equal(t, FacultyHealth, course.Faculty)
	}

	faculties := c.Faculties()
	assert.Equal(t, FacultyComputing, faculties[0])
	assert.Contains(t, faculties, FacultyHealth)
	assert.Len(t, faculties, 8)
}

func TestLoadFile_RoundTrip(t *testing.T) {
	original := MustLoad()
	data, err := json.Marshal(original)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original.Courses(), loaded.Courses())
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"malformed", `{ invalid json }`, "catalog does not match schema"},
		{"missing courses", `{}`, "catalog does not match schema"},
		{"missing cutoff", `{"courses": [{"name": "Physics", "faculty": "Science", "capacity": 10,
			"olevel_requirements": [], "utme_requirements": [], "interest_tags": []}]}`, "catalog does not match schema"},
		{"empty alternative", `{"courses": [{"name": "Physics", "faculty": "Science", "cutoff": 160, "capacity": 10,
			"olevel_requirements": ["/"], "utme_requirements": [], "interest_tags": []}]}`, `invalid course "Physics"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadFile(path)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFile_DuplicateCourse(t *testing.T) {
	content := `{"courses": [
		{"name": "Physics", "faculty": "Science", "cutoff": 160, "capacity": 10,
		 "olevel_requirements": ["English Language"], "utme_requirements": ["English Language"], "interest_tags": ["physics"]},
		{"name": "Physics", "faculty": "Science", "cutoff": 170, "capacity": 10,
		 "olevel_requirements": ["English Language"], "utme_requirements": ["English Language"], "interest_tags": ["physics"]}
	]}`

	_, err := Parse([]byte(content))
	var dup *DuplicateCourseError
	assert.True(t, errors.As(err, &dup))
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile("/nonexistent/catalog.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
