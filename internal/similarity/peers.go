package similarity

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Emynex4real/innovateam-sub003/internal/schemas"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	schemafiles "github.com/Emynex4real/innovateam-sub003/schemas"
)

// DefaultPeers returns the built-in sample reference population. It is
// illustrative data, not historical admissions records; swap it with LoadPeers.
func DefaultPeers() []types.Peer {
	return []types.Peer{
		{ExamScore: 265, GPA: 8.0, Interests: []string{"medicine", "health", "biology"}, Courses: []string{"Medicine and Surgery", "Nursing Science"}},
		{ExamScore: 215, GPA: 7.2, Interests: []string{"technology", "programming", "engineering"}, Courses: []string{"Computer Science", "Software Engineering"}},
		{ExamScore: 232, GPA: 7.6, Interests: []string{"engineering", "machines", "design"}, Courses: []string{"Mechanical Engineering", "Electrical and Electronics Engineering"}},
		{ExamScore: 175, GPA: 6.4, Interests: []string{"agriculture", "business", "farming"}, Courses: []string{"Agricultural Economics", "Crop Soil and Pest Management"}},
		{ExamScore: 205, GPA: 6.8, Interests: []string{"design", "buildings", "art"}, Courses: []string{"Architecture", "Building"}},
		{ExamScore: 240, GPA: 7.8, Interests: []string{"research", "biology", "chemistry"}, Courses: []string{"Biochemistry", "Microbiology", "Physiology"}},
		{ExamScore: 168, GPA: 6.0, Interests: []string{"mathematics", "data", "statistics"}, Courses: []string{"Mathematics", "Statistics"}},
		{ExamScore: 226, GPA: 7.4, Interests: []string{"technology", "security", "networks"}, Courses: []string{"Cyber Security", "Computer Science", "Information Technology"}},
	}
}

type peersFile struct {
	Peers []types.Peer `json:"peers"`
}

// LoadPeers reads a reference population from a JSON file shaped like
// {"peers": [...]}, validated against the peers schema.
func LoadPeers(path string) ([]types.Peer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read peers file %s: %w", path, err)
	}

	if err := schemas.ValidateDocument(schemafiles.Peers, content); err != nil {
		return nil, fmt.Errorf("peers file %s is invalid: %w", path, err)
	}

	var file peersFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal peers JSON: %w", err)
	}

	return file.Peers, nil
}
