// Package schemas embeds the JSON Schema documents for the advisor's input and output artifacts.
package schemas

import "embed"

// Files holds every *.schema.json document in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names.
const (
	StudentProfile     = "student_profile.schema.json"
	CourseCatalog      = "course_catalog.schema.json"
	Peers              = "peers.schema.json"
	RecommendationList = "recommendation_list.schema.json"
)

// All lists every embedded schema file name.
var All = []string{StudentProfile, CourseCatalog, Peers, RecommendationList}
