// Package types provides type definitions for structured data used throughout the course advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FactorBreakdown holds the raw value and weighted contribution of each scoring factor.
type FactorBreakdown struct {
	ScoreMargin      float64 `json:"score_margin"`
	OLevelStrength   float64 `json:"olevel_strength"`
	InterestMatch    float64 `json:"interest_match"`
	PeerSimilarity   float64 `json:"peer_similarity"`
	MarginWeighted   float64 `json:"score_margin_weighted"`
	StrengthWeighted float64 `json:"olevel_strength_weighted"`
	InterestWeighted float64 `json:"interest_match_weighted"`
	PeerWeighted     float64 `json:"peer_similarity_weighted"`
}

// EligibilityResult is the outcome of evaluating one profile against one course.
// Score is only meaningful when Eligible is true. Reasons are ordered: exam score,
// O-Level requirements, UTME requirements, interest match, peer similarity.
type EligibilityResult struct {
	Eligible         bool             `json:"eligible"`
	Score            float64          `json:"score"`
	Reasons          []string         `json:"reasons"`
	MatchedInterests []string         `json:"matched_interests,omitempty"`
	Factors          *FactorBreakdown `json:"factors,omitempty"`
}

// Recommendation pairs a course with its evaluation.
type Recommendation struct {
	Course Course            `json:"course"`
	Result EligibilityResult `json:"result"`
}

// RecommendationList is the ranked output of one recommendation request.
type RecommendationList struct {
	Recommendations []Recommendation `json:"recommendations"`
	// AlternativeSuggestions is set only when the preferred course is ineligible.
	AlternativeSuggestions []Recommendation `json:"alternative_suggestions,omitempty"`
	PreferredCourse        string           `json:"preferred_course,omitempty"`
	// PreferredResult is set whenever the preferred course was found and evaluated.
	PreferredResult *EligibilityResult `json:"preferred_result,omitempty"`
	Notes           []string           `json:"notes,omitempty"`
}
