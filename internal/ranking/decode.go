package ranking

import (
	"encoding/json"
	"fmt"

	"github.com/Emynex4real/innovateam-sub003/internal/grading"
	"github.com/Emynex4real/innovateam-sub003/internal/schemas"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	schemafiles "github.com/Emynex4real/innovateam-sub003/schemas"
)

// DecodeProfile parses a StudentProfile document and checks it against the
// student profile schema. Grade tokens are normalized first, so " b2 " is
// accepted as B2; unrecognized grades are left for the schema to report.
func DecodeProfile(content []byte) (*types.StudentProfile, error) {
	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &ValidationError{Field: "body", Message: "invalid JSON: " + err.Error(), Cause: err}
	}

	if grades, ok := doc["olevel_grades"].(map[string]any); ok {
		for subject, raw := range grades {
			token, ok := raw.(string)
			if !ok {
				continue
			}
			if grade, err := grading.ParseGrade(token); err == nil {
				grades[subject] = string(grade)
			}
		}
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode normalized profile: %w", err)
	}
	if err := schemas.ValidateDocument(schemafiles.StudentProfile, normalized); err != nil {
		return nil, err
	}

	var profile types.StudentProfile
	if err := json.Unmarshal(normalized, &profile); err != nil {
		return nil, &ValidationError{Field: "body", Message: "invalid JSON: " + err.Error(), Cause: err}
	}
	return &profile, nil
}
