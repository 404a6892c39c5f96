// Package fuzzy implements bounded edit-distance matching used for
// "did you mean" suggestions against catalog name lists.
package fuzzy

import "sort"

// Suggest returns up to maxSuggestions candidates whose edit distance to
// query does not exceed maxDistance, ranked by ascending distance and
// alphabetically on ties. Candidates whose length differs from the query
// by more than maxDistance are skipped without computing the distance.
// An empty result means no candidate qualified; it is never an error.
func Suggest(query string, candidates []string, maxSuggestions, maxDistance int) []string {
	if maxSuggestions <= 0 || maxDistance < 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}

	matches := make([]scored, 0, 8)
	for _, cand := range candidates {
		if lengthGap(query, cand) > maxDistance {
			continue
		}
		d := boundedDistance(query, cand, maxDistance)
		if d < 0 {
			continue
		}
		matches = append(matches, scored{name: cand, dist: d})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// Distance returns the Levenshtein distance between a and b with unit
// insert/delete/substitute costs.
func Distance(a, b string) int {
	max := len(a)
	if len(b) > max {
		max = len(b)
	}
	d := boundedDistance(a, b, max)
	if d < 0 {
		// Unreachable: the bound covers the worst case.
		return max
	}
	return d
}

func lengthGap(a, b string) int {
	if len(a) > len(b) {
		return len(a) - len(b)
	}
	return len(b) - len(a)
}

// boundedDistance computes the Levenshtein distance between a and b,
// returning -1 as soon as the distance provably exceeds limit. Two rows
// of the DP matrix are kept; rows whose minimum exceeds the limit abort
// the computation early.
func boundedDistance(a, b string, limit int) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		if lb > limit {
			return -1
		}
		return lb
	}
	if lb == 0 {
		if la > limit {
			return -1
		}
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			curr[j] = best
			if best < rowMin {
				rowMin = best
			}
		}
		if rowMin > limit {
			return -1
		}
		prev, curr = curr, prev
	}

	if prev[lb] > limit {
		return -1
	}
	return prev[lb]
}
