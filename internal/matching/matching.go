// Package matching scores free-text interests against course interest tags.
//
// Matching is a plain bag-of-words overlap with bidirectional substring tests,
// so "farm" matches the tag "farming" and "computers" matches "computer"
// without a stemmer. Very short
// tokens over-match (the token "i" is contained in "engineering"); that is
// inherited behavior and is kept.
package matching

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text, strips punctuation and splits on whitespace.
// "people's" yields "peoples", never a stray one-letter token.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)
	return strings.Fields(cleaned)
}

// MatchInterests returns the tags, in tag order, that match any token of the
// free text. A tag matches a token when either contains the other.
func MatchInterests(text string, tags []string) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 || len(tags) == 0 {
		return nil
	}

	var matched []string
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		for _, token := range tokens {
			if strings.Contains(token, tagLower) || strings.Contains(tagLower, token) {
				matched = append(matched, tag)
				break
			}
		}
	}
	return matched
}

// InterestScore returns the fraction of tags matched by the free text, in [0,1].
func InterestScore(text string, tags []string) float64 {
	if len(tags) == 0 {
		return 0.0
	}

	score := float64(len(MatchInterests(text, tags))) / float64(len(tags))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// ParseInterests splits comma-separated interest phrases into a normalized,
// de-duplicated list in input order.
func ParseInterests(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, phrase := range strings.Split(text, ",") {
		phrase = strings.ToLower(strings.Join(strings.Fields(phrase), " "))
		if phrase == "" || seen[phrase] {
			continue
		}
		seen[phrase] = true
		out = append(out, phrase)
	}
	return out
}
