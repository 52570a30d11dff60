// Package eligibility decides whether a student qualifies for a course and, if so,
// how well the course fits.
package eligibility

import (
	"fmt"
	"strings"

	"github.com/Emynex4real/innovateam-sub003/internal/grading"
	"github.com/Emynex4real/innovateam-sub003/internal/matching"
	"github.com/Emynex4real/innovateam-sub003/internal/similarity"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

// Weights for the match score. They must sum to 1.
const (
	ScoreMarginWeight    = 0.30
	OLevelStrengthWeight = 0.30
	InterestMatchWeight  = 0.20
	PeerSimilarityWeight = 0.20
)

// marginOffset is added to (exam score - cutoff) before scaling, so a score
// exactly at the cutoff earns half the margin term.
const (
	marginOffset = 50.0
	marginScale  = 100.0
)

// Evaluator applies the admission gates and scoring to (profile, course) pairs.
// Peers is the reference population for the peer-similarity factor.
type Evaluator struct {
	Peers []types.Peer
}

// New creates an Evaluator over the given reference population.
func New(peers []types.Peer) *Evaluator {
	return &Evaluator{Peers: peers}
}

// Evaluate runs the score, O-Level and UTME gates in order, stopping at the first
// failure, then scores an eligible course. It fails only on invalid grade tokens.
func (e *Evaluator) Evaluate(profile *types.StudentProfile, course types.Course) (types.EligibilityResult, error) {
	gpa, err := grading.ComputeGPA(profile.OLevelGrades)
	if err != nil {
		return types.EligibilityResult{}, err
	}
	return e.evaluate(profile, gpa, matching.ParseInterests(profile.Interests), course), nil
}

// EvaluateAll evaluates every course, computing the GPA and interest list once.
// Results are in course order.
func (e *Evaluator) EvaluateAll(profile *types.StudentProfile, courses []types.Course) ([]types.EligibilityResult, error) {
	gpa, err := grading.ComputeGPA(profile.OLevelGrades)
	if err != nil {
		return nil, err
	}
	interests := matching.ParseInterests(profile.Interests)

	results := make([]types.EligibilityResult, len(courses))
	for i, course := range courses {
		results[i] = e.evaluate(profile, gpa, interests, course)
	}
	return results, nil
}

func (e *Evaluator) evaluate(profile *types.StudentProfile, gpa float64, interests []string, course types.Course) types.EligibilityResult {
	result := types.EligibilityResult{Reasons: make([]string, 0, 5)}

	// 1. Score gate (inclusive)
	if profile.ExamScore < course.Cutoff {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Exam score %d is below the %s cutoff of %d", profile.ExamScore, course.Name, course.Cutoff))
		return result
	}
	result.Reasons = append(result.Reasons,
		fmt.Sprintf("Exam score %d meets the %s cutoff of %d", profile.ExamScore, course.Name, course.Cutoff))

	// 2. O-Level gate
	held := make([]string, 0, len(course.OLevelRequirements))
	for _, req := range course.OLevelRequirements {
		subject, grade, ok := grading.HasCredit(profile.OLevelGrades, req)
		if !ok {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("O-Level requirement not met: needs a credit (C6 or better) in %s", req))
			return result
		}
		held = append(held, fmt.Sprintf("%s (%s)", subject, grade))
	}
	result.Reasons = append(result.Reasons, "O-Level requirements met: "+joinOrNone(held))

	// 3. UTME gate
	for _, req := range course.UTMERequirements {
		if !hasUTMESubject(profile.UTMESubjects, req) {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("UTME requirement not met: needs one of %s", req))
			return result
		}
	}
	result.Reasons = append(result.Reasons, "UTME subjects cover all requirements: "+joinOrNone(profile.UTMESubjects))

	// Scoring
	factors := &types.FactorBreakdown{
		ScoreMargin:    min((float64(profile.ExamScore-course.Cutoff)+marginOffset)/marginScale, 1.0),
		OLevelStrength: min(gpa/grading.MaxPoints, 1.0),
	}
	result.MatchedInterests = matching.MatchInterests(profile.Interests, course.InterestTags)
	factors.InterestMatch = matching.InterestScore(profile.Interests, course.InterestTags)
	factors.PeerSimilarity = similarity.PeerSimilarityScore(profile.ExamScore, gpa, interests, course.Name, e.Peers)

	factors.MarginWeighted = ScoreMarginWeight * factors.ScoreMargin
	factors.StrengthWeighted = OLevelStrengthWeight * factors.OLevelStrength
	factors.InterestWeighted = InterestMatchWeight * factors.InterestMatch
	factors.PeerWeighted = PeerSimilarityWeight * factors.PeerSimilarity

	score := factors.MarginWeighted + factors.StrengthWeighted + factors.InterestWeighted + factors.PeerWeighted
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}

	matched := "no matching interests"
	if len(result.MatchedInterests) > 0 {
		matched = strings.Join(result.MatchedInterests, ", ")
	}
	result.Reasons = append(result.Reasons,
		fmt.Sprintf("Interest match %.2f (%s) contributes %.3f", factors.InterestMatch, matched, factors.InterestWeighted),
		fmt.Sprintf("Peer similarity %.2f contributes %.3f", factors.PeerSimilarity, factors.PeerWeighted),
	)

	result.Eligible = true
	result.Score = score
	result.Factors = factors
	return result
}

func hasUTMESubject(subjects []string, req types.SubjectRequirement) bool {
	for _, alt := range req {
		for _, subject := range subjects {
			if grading.SameSubject(subject, alt) {
				return true
			}
		}
	}
	return false
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none required"
	}
	return strings.Join(items, ", ")
}
