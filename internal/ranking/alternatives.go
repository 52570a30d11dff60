package ranking

import (
	"math"
	"sort"

	"github.com/Emynex4real/innovateam-sub003/internal/similarity"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

// Alternatives picks eligible courses in the preferred course's faculty and
// orders them by tag similarity to the preferred course (descending), then by
// competitiveness (ascending), keeping the incoming score order for ties.
//
// Competitiveness is (candidate cutoff - preferred cutoff) +
// (preferred capacity - candidate capacity) / 100. It mixes score points with
// seats and has no principled basis; it is kept as-is for compatibility.
func Alternatives(preferred types.Course, eligible []types.Recommendation) []types.Recommendation {
	type candidate struct {
		rec        types.Recommendation
		similarity float64
		cost       float64
	}

	var candidates []candidate
	for _, rec := range eligible {
		if rec.Course.Faculty != preferred.Faculty || rec.Course.Name == preferred.Name {
			continue
		}
		candidates = append(candidates, candidate{
			rec:        rec,
			similarity: similarity.CourseSimilarity(preferred, rec.Course),
			cost:       Competitiveness(preferred, rec.Course),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
		return candidates[i].cost < candidates[j].cost
	})

	out := make([]types.Recommendation, len(candidates))
	for i, c := range candidates {
		out[i] = c.rec
	}
	return out
}

// Competitiveness returns the relative difficulty of candidate versus preferred;
// lower means easier to get into.
func Competitiveness(preferred, candidate types.Course) float64 {
	return float64(candidate.Cutoff-preferred.Cutoff) + float64(preferred.Capacity-candidate.Capacity)/100
}

// MatchPercentage converts a [0,1] score to a rounded whole percentage.
func MatchPercentage(score float64) int {
	return int(math.Round(score * 100))
}
