package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Emynex4real/innovateam-sub003/internal/schemas"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	schemafiles "github.com/Emynex4real/innovateam-sub003/schemas"
)

// catalogFile is the on-disk shape of a replacement catalog.
type catalogFile struct {
	Courses []types.Course `json:"courses"`
}

// LoadFile loads a catalog from a JSON file. The document is checked against
// the catalog schema, each course is validated, and duplicate names are rejected.
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Parse(content)
}

// Parse builds a catalog from JSON content.
func Parse(content []byte) (*Catalog, error) {
	if err := schemas.ValidateDocument(schemafiles.CourseCatalog, content); err != nil {
		return nil, &LoadError{
			Message: "catalog does not match schema",
			Cause:   err,
		}
	}

	var file catalogFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	for i := range file.Courses {
		if err := file.Courses[i].Validate(); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("invalid course %q", file.Courses[i].Name),
				Cause:   err,
			}
		}
	}

	return New(file.Courses)
}

// MarshalJSON encodes the catalog in the same shape LoadFile reads.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(catalogFile{Courses: c.courses})
}
