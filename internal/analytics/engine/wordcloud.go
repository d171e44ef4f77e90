package engine

import (
	"math"
	"regexp"
	"sort"
)

// WordWeight is one word-cloud entry: the word and its render weight.
type WordWeight struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

var lettersOnlyPattern = regexp.MustCompile(`^[a-z]+$`)

// ProjectWordCloud maps a raw word frequency map to a bounded, log-scaled
// list for rendering. Stop words, domain terms, short tokens and non-letter
// tokens are filtered; the survivors are sorted by descending count and
// capped at WordCloudMaxWords. An empty result is a valid "no data" state.
func ProjectWordCloud(freq map[string]int, opts Options) []WordWeight {
	type entry struct {
		word  string
		count int
	}

	entries := make([]entry, 0, len(freq))
	for word, count := range freq {
		if len(word) <= opts.WordCloudMinLength {
			continue
		}
		if !lettersOnlyPattern.MatchString(word) {
			continue
		}
		if opts.StopWords[word] || opts.DomainTerms[word] {
			continue
		}
		entries = append(entries, entry{word: word, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})
	if opts.WordCloudMaxWords > 0 && len(entries) > opts.WordCloudMaxWords {
		entries = entries[:opts.WordCloudMaxWords]
	}

	cloud := make([]WordWeight, 0, len(entries))
	for _, e := range entries {
		cloud = append(cloud, WordWeight{
			Word:   e.word,
			Weight: math.Log(float64(e.count)+1) * opts.WordCloudScale,
		})
	}
	return cloud
}
