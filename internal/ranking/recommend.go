package ranking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Emynex4real/innovateam-sub003/internal/catalog"
	"github.com/Emynex4real/innovateam-sub003/internal/eligibility"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

// Recommend validates the profile, evaluates every catalog course once, and
// returns the eligible courses ranked by match score (stable, so ties keep
// catalog order).
//
// Preferred course handling:
//   - If the preferred course is eligible it is moved to index 0 even when
//     another course scores higher. The top entry is therefore not always the
//     best match; a note records the higher-scoring course when that happens.
//   - If it is ineligible, same-faculty eligible courses become
//     AlternativeSuggestions (see Alternatives) and lead the list, followed by
//     the other courses in score order.
//   - An unknown preferred course is ignored with a note.
//
// An empty result is not an error.
func Recommend(profile *types.StudentProfile, cat *catalog.Catalog, peers []types.Peer) (*types.RecommendationList, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	courses := cat.Courses()
	results, err := eligibility.New(peers).EvaluateAll(profile, courses)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate courses: %w", err)
	}

	eligible := make([]types.Recommendation, 0, len(courses))
	for i, result := range results {
		if result.Eligible {
			eligible = append(eligible, types.Recommendation{Course: courses[i], Result: result})
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Result.Score > eligible[j].Result.Score
	})

	list := &types.RecommendationList{Recommendations: eligible}

	if preferred := strings.TrimSpace(profile.PreferredCourse); preferred != "" {
		applyPreferred(list, preferred, cat, courses, results)
	}

	if len(list.Recommendations) == 0 {
		list.Notes = append(list.Notes, "No eligible courses for this profile")
	}

	return list, nil
}

// applyPreferred reuses the catalog-pass result for the preferred course.
func applyPreferred(list *types.RecommendationList, name string, cat *catalog.Catalog, courses []types.Course, results []types.EligibilityResult) {
	preferred, err := cat.Get(name)
	if err != nil {
		var notFound *catalog.CourseNotFoundError
		if errors.As(err, &notFound) {
			list.Notes = append(list.Notes, fmt.Sprintf("Preferred course %q is not in the catalog and was ignored", name))
		}
		return
	}

	var result types.EligibilityResult
	for i := range courses {
		if courses[i].Name == preferred.Name {
			result = results[i]
			break
		}
	}
	list.PreferredCourse = preferred.Name
	list.PreferredResult = &result

	if result.Eligible {
		promote(list, preferred.Name)
		return
	}

	alternatives := Alternatives(preferred, list.Recommendations)
	list.AlternativeSuggestions = alternatives

	reason := "it is not attainable"
	if n := len(result.Reasons); n > 0 {
		reason = result.Reasons[n-1]
	}
	list.Notes = append(list.Notes, fmt.Sprintf("Preferred course %s is not attainable: %s", preferred.Name, reason))

	if len(alternatives) == 0 {
		list.Notes = append(list.Notes, fmt.Sprintf("No eligible alternatives in %s", preferred.Faculty))
		return
	}

	reordered := make([]types.Recommendation, 0, len(list.Recommendations))
	reordered = append(reordered, alternatives...)
	for _, rec := range list.Recommendations {
		if rec.Course.Faculty != preferred.Faculty {
			reordered = append(reordered, rec)
		}
	}
	list.Recommendations = reordered
}

// promote moves the named course to index 0, noting when it displaces a higher score.
func promote(list *types.RecommendationList, name string) {
	recs := list.Recommendations
	idx := -1
	for i, rec := range recs {
		if rec.Course.Name == name {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return
	}

	top := recs[0]
	pref := recs[idx]
	if top.Result.Score > pref.Result.Score {
		list.Notes = append(list.Notes, fmt.Sprintf(
			"%s is listed first as your preferred course; %s has a higher match score (%d%% vs %d%%)",
			pref.Course.Name, top.Course.Name, MatchPercentage(top.Result.Score), MatchPercentage(pref.Result.Score)))
	}

	copy(recs[1:idx+1], recs[0:idx])
	recs[0] = pref
}
