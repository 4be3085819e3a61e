// Package namematch resolves loose user input into guild members and voice
// channels. Matching combines exact comparison, prefix matching and a
// normalized Levenshtein distance so users can type partial or slightly
// misspelled names. The package shares no state with the playback
// orchestrator; it only reads discordgo's cached guild structures.
package namematch

import "strings"

// levenshteinThreshold is the fraction of the candidate's length an input may
// differ by and still count as a match.
const levenshteinThreshold = 0.3

// Distance computes the Levenshtein edit distance between two strings.
func Distance(first, second string) int {
	a := []rune(first)
	b := []rune(second)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// WithinThreshold reports whether first is within the normalized distance
// threshold of second.
func WithinThreshold(first, second string) bool {
	if len(second) == 0 {
		return len(first) == 0
	}
	return float64(Distance(first, second))/float64(len(second)) < levenshteinThreshold
}

// Equivalent reports whether the input names the candidate: exact match,
// within the distance threshold, or a prefix of it.
func Equivalent(input, candidate string) bool {
	return input == candidate ||
		WithinThreshold(input, candidate) ||
		strings.HasPrefix(candidate, input)
}

// BestMatch picks the candidate closest to target: the smallest normalized
// Levenshtein distance under the threshold wins, and a candidate that merely
// starts with the target is kept as a fallback. The second return is false
// when nothing matches.
func BestMatch(target string, candidates []string) (string, bool) {
	var result string
	var potential string
	found := false
	hasPotential := false
	currentDistance := 1.0

	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, target) {
			potential = candidate
			hasPotential = true
		}

		if len(candidate) == 0 {
			continue
		}
		distance := float64(Distance(target, candidate)) / float64(len(candidate))
		if distance < levenshteinThreshold && distance < currentDistance {
			currentDistance = distance
			result = candidate
			found = true
		}
	}

	if !found {
		return potential, hasPotential
	}
	return result, true
}
