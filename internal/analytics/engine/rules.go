package engine

import "strings"

// rule is one (predicate, label) pair of an ordered classifier.
type rule struct {
	label string
	terms []string
}

// matches reports whether any of the rule's terms occur in the lower-cased
// description.
func (r rule) matches(desc string) bool {
	for _, term := range r.terms {
		if strings.Contains(desc, term) {
			return true
		}
	}
	return false
}

// firstMatch evaluates rules in order and returns the label of the first hit.
// The tie-break order is the rule order, which keeps priority-based
// classification auditable.
func firstMatch(rules []rule, desc string) (string, bool) {
	for _, r := range rules {
		if r.matches(desc) {
			return r.label, true
		}
	}
	return "", false
}

// readingStageRules classify reading-stage checkpoints.
var readingStageRules = []rule{
	{label: "first", terms: []string{"first reading"}},
	{label: "second", terms: []string{"second reading"}},
	{label: "third", terms: []string{"third reading"}},
}

// amendmentStageRules attribute an amendment to the procedural point where it
// was considered. Committee wins over floor readings; committee is also the
// default when nothing matches.
var amendmentStageRules = []rule{
	{label: StageCommittee, terms: []string{"committee"}},
	{label: StageSecondReading, terms: []string{"second reading"}},
	{label: StageThirdReading, terms: []string{"third reading"}},
}

// actionPhaseRules bucket an action into a legislative phase for the
// month-keyed phase distribution.
var actionPhaseRules = []rule{
	{label: PhaseIntroduction, terms: []string{"first reading", "introduced", "authored"}},
	{label: PhaseCommittee, terms: []string{"committee"}},
	{label: PhaseReadings, terms: []string{"second reading", "third reading", "reading"}},
	{label: PhasePassage, terms: []string{"public law", "signed by", "passed", "enacted"}},
}
