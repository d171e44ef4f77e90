// Package engine implements the bill analytics aggregation core: a single
// pass over a collection of bill records that folds chamber/party breakdowns,
// collaboration measures, committee dynamics, temporal distributions,
// amendment outcomes and digest word frequencies into one metrics structure,
// followed by a finalize pass that derives rates, averages and bounded
// display collections.
package engine

// Options holds the fixed lookup tables and tunable limits supplied at
// configuration time.
type Options struct {
	// StopWords are generic English words excluded from word frequency.
	StopWords map[string]bool
	// DomainTerms are legislative boilerplate words excluded from word frequency.
	DomainTerms map[string]bool
	// PassagePhrases indicate a bill-level passage event when present in an
	// action description (matched case-insensitively).
	PassagePhrases []string
	// LeadershipTitles are positions that count as chamber leadership.
	LeadershipTitles []string
	// AmendmentSuccessTerms mark an amendment action as successful.
	AmendmentSuccessTerms []string
	// AmendmentFailureTerms veto a success classification when present.
	AmendmentFailureTerms []string

	// MaxDisplayItems bounds each top-N display collection.
	MaxDisplayItems int
	// MaxPeakDays bounds the derived peak-activity day list.
	MaxPeakDays int
	// WordCloudMaxWords bounds the projected word cloud.
	WordCloudMaxWords int
	// WordCloudMinLength is the minimum token length (exclusive) for the cloud.
	WordCloudMinLength int
	// WordCloudScale multiplies the log-scaled weight of each word.
	WordCloudScale float64
}

// DefaultOptions returns the standard lookup tables and limits.
func DefaultOptions() Options {
	return Options{
		StopWords:   wordSet(defaultStopWords),
		DomainTerms: wordSet(defaultDomainTerms),
		PassagePhrases: []string{
			"public law",
			"signed by governor",
			"signed by the governor",
			"third reading: passed",
			"enacted",
			"chaptered",
		},
		LeadershipTitles: []string{
			"Speaker",
			"President Pro Tempore",
			"Majority Leader",
			"Minority Leader",
			"Majority Floor Leader",
			"Minority Floor Leader",
		},
		AmendmentSuccessTerms: []string{"prevailed", "adopted", "passed"},
		AmendmentFailureTerms: []string{"failed", "rejected", "withdrawn"},
		MaxDisplayItems:       10,
		MaxPeakDays:           5,
		WordCloudMaxWords:     30,
		WordCloudMinLength:    3,
		WordCloudScale:        20,
	}
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var defaultStopWords = []string{
	"about", "above", "after", "again", "against", "because", "been",
	"before", "being", "below", "between", "both", "cannot", "could",
	"does", "doing", "down", "during", "each", "from", "further", "have",
	"having", "here", "into", "itself", "more", "most", "once", "only",
	"other", "over", "same", "shall", "should", "some", "such", "than",
	"that", "their", "them", "then", "there", "these", "they", "this",
	"those", "through", "under", "until", "upon", "very", "were", "what",
	"when", "where", "which", "while", "will", "with", "within", "would",
	"your",
}

var defaultDomainTerms = []string{
	"act", "amends", "bill", "code", "commission", "committee",
	"concerning", "county", "defines", "department", "effective",
	"establishes", "fund", "general", "indiana", "law", "provides",
	"public", "requires", "section", "state", "statute", "year",
}
