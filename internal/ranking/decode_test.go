package ranking

import (
	"errors"
	"testing"

	"github.com/Emynex4real/innovateam-sub003/internal/schemas"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProfile_NormalizesGrades(t *testing.T) {
	content := []byte(`{
		"exam_score": 220,
		"olevel_grades": {"English Language": " b2 ", "Mathematics": "a1", "Physics": "C4", "Chemistry": "c5", "Biology": "C6"},
		"utme_subjects": ["English Language", "Mathematics", "Physics", "Chemistry"]
	}`)

	profile, err := DecodeProfile(content)
	require.NoError(t, err)
	assert.Equal(t, types.GradeB2, profile.OLevelGrades["English Language"])
	assert.Equal(t, types.GradeA1, profile.OLevelGrades["Mathematics"])
	assert.Equal(t, types.GradeC5, profile.OLevelGrades["Chemistry"])
	assert.NoError(t, ValidateProfile(profile))
}

func TestDecodeProfile_UnknownGradeFailsSchema(t *testing.T) {
	content := []byte(`{
		"exam_score": 220,
		"olevel_grades": {"English Language": "F9"},
		"utme_subjects": ["English Language", "Mathematics", "Physics", "Chemistry"]
	}`)

	_, err := DecodeProfile(content)
	var schemaErr *schemas.ValidationError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Errors[0].Field, "olevel_grades")
}

func TestDecodeProfile_MalformedJSON(t *testing.T) {
	_, err := DecodeProfile([]byte(`{"exam_score": `))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "body", validationErr.Field)
}

func TestDecodeProfile_MissingRequiredField(t *testing.T) {
	_, err := DecodeProfile([]byte(`{"exam_score": 220, "olevel_grades": {}}`))

	var schemaErr *schemas.ValidationError
	require.True(t, errors.As(err, &schemaErr))
}
