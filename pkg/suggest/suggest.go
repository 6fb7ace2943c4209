// Package suggest ranks near-miss candidates for a mistyped name.
package suggest

import (
	"sort"
	"strings"
)

// threshold is the minimum score for a candidate to count as similar.
const threshold = 0.5

type ranked struct {
	name  string
	score float64
}

// Similar returns up to limit candidates similar to target, best match first.
// Ties break lexicographically.
func Similar(target string, candidates []string, limit int) []string {
	if target == "" || limit <= 0 {
		return []string{}
	}
	matches := make([]ranked, 0, len(candidates))
	for _, name := range candidates {
		if s := score(target, name); s > threshold {
			matches = append(matches, ranked{name: name, score: s})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score == matches[j].score {
			return matches[i].name < matches[j].name
		}
		return matches[i].score > matches[j].score
	})

	result := make([]string, 0, limit)
	for i := 0; i < len(matches) && i < limit; i++ {
		result = append(result, matches[i].name)
	}
	return result
}

// score rates how close candidate is to target on a 0..1 scale. An exact
// match scores 1, a prefix match 0.9, anything else by edit distance.
func score(target, candidate string) float64 {
	target = strings.ToLower(target)
	candidate = strings.ToLower(candidate)
	if target == candidate {
		return 1.0
	}
	if strings.HasPrefix(candidate, target) {
		return 0.9
	}
	longest := max(len(target), len(candidate))
	return 1.0 - float64(editDistance(target, candidate))/float64(longest)
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}
	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[j] = min(previous[j]+1, current[j-1]+1, previous[j-1]+cost)
		}
		previous, current = current, previous
	}
	return previous[len(b)]
}
