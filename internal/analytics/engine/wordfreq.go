package engine

import (
	"regexp"
	"strings"
)

var wordTokenPattern = regexp.MustCompile(`[a-z]+`)

// accumulateWordFrequency tokenizes a bill digest into the shared word
// frequency map. Tokens are lower-cased, must be longer than three characters
// and must not appear in either exclusion set. An empty digest is a no-op.
func accumulateWordFrequency(text string, freq map[string]int, stopWords, domainTerms map[string]bool) {
	if text == "" {
		return
	}

	for _, token := range wordTokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(token) <= 3 {
			continue
		}
		if stopWords[token] || domainTerms[token] {
			continue
		}
		freq[token]++
	}
}
