package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubjectRequirement(t *testing.T) {
	tests := []struct {
		in   string
		want SubjectRequirement
	}{
		{"Mathematics", SubjectRequirement{"Mathematics"}},
		{"Biology/Agricultural Science", SubjectRequirement{"Biology", "Agricultural Science"}},
		{" Physics / Chemistry ", SubjectRequirement{"Physics", "Chemistry"}},
		{"Physics//", SubjectRequirement{"Physics"}},
		{"", SubjectRequirement{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSubjectRequirement(tt.in))
		})
	}
}

func TestSubjectRequirement_JSON(t *testing.T) {
	course := Course{
		Name:               "Crop Science",
		Faculty:            "Agriculture",
		OLevelRequirements: Requirements("English Language", "Biology/Agricultural Science"),
	}

	data, err := json.Marshal(course)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"olevel_requirements":["English Language","Biology/Agricultural Science"]`)

	var decoded Course
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, course.OLevelRequirements, decoded.OLevelRequirements)
}

func TestSubjectRequirement_UnmarshalRejectsNonString(t *testing.T) {
	var req SubjectRequirement
	err := json.Unmarshal([]byte(`["Biology", "Chemistry"]`), &req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")
}

func TestCourse_Validate(t *testing.T) {
	valid := Course{
		Name:               "Computer Science",
		Faculty:            "School of Computing",
		Cutoff:             200,
		Capacity:           250,
		OLevelRequirements: Requirements("English Language", "Mathematics"),
		UTMERequirements:   Requirements("English Language", "Mathematics"),
		InterestTags:       []string{"programming"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Course)
	}{
		{"missing name", func(c *Course) { c.Name = "" }},
		{"missing faculty", func(c *Course) { c.Faculty = "" }},
		{"negative cutoff", func(c *Course) { c.Cutoff = -1 }},
		{"cutoff above 400", func(c *Course) { c.Cutoff = 401 }},
		{"negative capacity", func(c *Course) { c.Capacity = -5 }},
		{"empty requirement", func(c *Course) { c.UTMERequirements = []SubjectRequirement{{}} }},
		{"empty tag", func(c *Course) { c.InterestTags = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestStudentProfile_Validate(t *testing.T) {
	valid := StudentProfile{
		ExamScore: 250,
		OLevelGrades: map[string]Grade{
			"English Language": GradeB2,
			"Mathematics":      GradeB3,
			"Physics":          GradeC4,
			"Chemistry":        GradeC4,
			"Biology":          GradeC5,
		},
		UTMESubjects: []string{"English Language", "Mathematics", "Physics", "Chemistry"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *StudentProfile)
	}{
		{"score above 400", func(p *StudentProfile) { p.ExamScore = 401 }},
		{"negative score", func(p *StudentProfile) { p.ExamScore = -1 }},
		{"four grades", func(p *StudentProfile) {
			p.OLevelGrades = map[string]Grade{"A": GradeA1, "B": GradeA1, "C": GradeA1, "D": GradeA1}
		}},
		{"three UTME subjects", func(p *StudentProfile) { p.UTMESubjects = p.UTMESubjects[:3] }},
		{"blank UTME subject", func(p *StudentProfile) {
			p.UTMESubjects = []string{"English Language", "", "Physics", "Chemistry"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
