// Package similarity estimates course-to-course similarity and a peer-similarity
// signal for a candidate student.
package similarity

import (
	"math"
	"sort"
	"strings"

	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

// Scales used to normalize closeness terms.
const (
	maxExamScore = 400.0
	maxGPA       = 9.0
)

// neighborCount is the number of reference peers that contribute to the score.
const neighborCount = 3

// CourseSimilarity returns |A ∩ B| / max(|A|, |B|) over the two courses' interest
// tags, or 0 if either has none. It is symmetric.
func CourseSimilarity(a, b types.Course) float64 {
	tagsA := tagSet(a.InterestTags)
	tagsB := tagSet(b.InterestTags)
	if len(tagsA) == 0 || len(tagsB) == 0 {
		return 0.0
	}

	shared := 0
	for tag := range tagsA {
		if tagsB[tag] {
			shared++
		}
	}

	return float64(shared) / float64(max(len(tagsA), len(tagsB)))
}

// PeerSimilarityScore is a toy collaborative signal, not a real collaborative
// filtering model. Each peer gets a similarity equal to the mean of exam-score
// closeness, GPA closeness and interest overlap. The three most similar peers
// vote for the course with their similarity, and the sum is divided by three
// even when fewer peers chose the course, so one matching neighbor contributes
// at most about a third.
func PeerSimilarityScore(examScore int, gpa float64, interests []string, course string, peers []types.Peer) float64 {
	if len(peers) == 0 {
		return 0.0
	}

	type neighbor struct {
		similarity float64
		chose      bool
	}

	neighbors := make([]neighbor, 0, len(peers))
	for _, peer := range peers {
		neighbors = append(neighbors, neighbor{
			similarity: peerSimilarity(examScore, gpa, interests, peer),
			chose:      containsCourse(peer.Courses, course),
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].similarity > neighbors[j].similarity
	})

	total := 0.0
	for i := 0; i < len(neighbors) && i < neighborCount; i++ {
		if neighbors[i].chose {
			total += neighbors[i].similarity
		}
	}

	return total / neighborCount
}

// peerSimilarity averages the three closeness terms for one peer.
func peerSimilarity(examScore int, gpa float64, interests []string, peer types.Peer) float64 {
	scoreCloseness := 1 - math.Abs(float64(examScore-peer.ExamScore))/maxExamScore
	gpaCloseness := 1 - math.Abs(gpa-peer.GPA)/maxGPA
	overlap := interestOverlap(interests, peer.Interests)

	return (scoreCloseness + gpaCloseness + overlap) / 3
}

// interestOverlap returns shared interests / max(set sizes), or 0 when both are empty.
func interestOverlap(a, b []string) float64 {
	setA := tagSet(a)
	setB := tagSet(b)
	denom := max(len(setA), len(setB))
	if denom == 0 {
		return 0.0
	}

	shared := 0
	for interest := range setA {
		if setB[interest] {
			shared++
		}
	}
	return float64(shared) / float64(denom)
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			set[tag] = true
		}
	}
	return set
}

func containsCourse(courses []string, name string) bool {
	for _, c := range courses {
		if c == name {
			return true
		}
	}
	return false
}
