package engine

import (
	"regexp"
	"strings"
	"time"

	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
)

// billState is the per-bill context threaded through action classification.
// Committee-dwell tracking is order-sensitive, so actions must arrive in
// their original order.
type billState struct {
	chamber      string
	participants []billmodel.Participant

	firstActionDate time.Time
	hasFirstDate    bool

	referrals        map[string]bool
	currentCommittee string
	dwellStart       time.Time
	dwellActive      bool

	sawPassage      bool
	sawVeto         bool
	passageCredited bool
}

func newBillState(chamber string, participants []billmodel.Participant) *billState {
	return &billState{
		chamber:      chamber,
		participants: participants,
		referrals:    make(map[string]bool),
	}
}

var (
	committeeReferredPattern = regexp.MustCompile(`(?i)(?:referred to|in|from)\s+(?:the\s+)?([\w\s,&-]+?)\s+committee`)
	committeeBarePattern     = regexp.MustCompile(`(?i)([\w,&-]+(?:\s+[\w,&-]+)*?)\s+committee`)
	committeeOnPattern       = regexp.MustCompile(`(?i)committee\s+on\s+([\w\s,&-]+)`)

	amendmentAuthorPattern = regexp.MustCompile(`(?i)amendment\s+#?\d+\s+\(([^)]+)\)`)
	specialSessionPattern  = regexp.MustCompile(`(?i)special session[^0-9]*([0-9]+)`)
)

// classifyAction applies every independent classification test to one action
// and mutates the shared metrics. Malformed dates contribute nothing to the
// date-dependent aggregates.
func (a *Accumulator) classifyAction(st *billState, action billmodel.Action) {
	desc := strings.ToLower(action.Description)
	date, dateOK := parseDate(action.Date)

	if !st.hasFirstDate && dateOK {
		st.firstActionDate = date
		st.hasFirstDate = true
	}

	a.classifyPassage(st, desc, date, dateOK)
	a.classifyReadingStage(desc)
	a.classifyCommittee(st, action.Description, desc, date, dateOK)
	a.classifyAmendment(st, action.Description, desc)
	a.trackTemporal(action, desc, date, dateOK)
}

// classifyPassage records passage and veto signals. The bill-level outcome
// (passed/vetoed/pending) is credited at most once per bill, after all
// actions are classified; third-reading chamber outcomes count per action.
func (a *Accumulator) classifyPassage(st *billState, desc string, date time.Time, dateOK bool) {
	passage := false
	for _, phrase := range a.opts.PassagePhrases {
		if strings.Contains(desc, phrase) {
			passage = true
			break
		}
	}

	if strings.Contains(desc, "veto") {
		st.sawVeto = true
	} else if passage {
		st.sawPassage = true
		if !st.passageCredited && st.hasFirstDate && dateOK {
			a.passageDaysSum += float64(daysBetween(st.firstActionDate, date))
			a.passageDaysCount++
			st.passageCredited = true
		}
	}

	if strings.Contains(desc, "third reading: passed") {
		a.chamberOutcome(st.chamber).Passed++
	} else if strings.Contains(desc, "third reading: failed") {
		a.chamberOutcome(st.chamber).Failed++
	}
}

func (a *Accumulator) chamberOutcome(chamber string) *ChamberOutcome {
	outcome, ok := a.m.Success.ByChamber[chamber]
	if !ok {
		outcome = &ChamberOutcome{}
		a.m.Success.ByChamber[chamber] = outcome
	}
	return outcome
}

func (a *Accumulator) classifyReadingStage(desc string) {
	stage, ok := firstMatch(readingStageRules, desc)
	if !ok {
		return
	}
	switch stage {
	case "first":
		a.m.Success.ReadingStages.First++
	case "second":
		a.m.Success.ReadingStages.Second++
	case "third":
		a.m.Success.ReadingStages.Third++
	}
}

// classifyCommittee extracts a committee name and maintains per-bill referral
// and dwell-time state. A referral starts the dwell timer; a committee report
// with an active timer closes it into the running dwell sum.
func (a *Accumulator) classifyCommittee(st *billState, raw, desc string, date time.Time, dateOK bool) {
	if !strings.Contains(desc, "committee") {
		return
	}

	name, ok := extractCommitteeName(raw)
	if ok {
		a.m.Committees.Activity[name]++

		if strings.Contains(desc, "referred") {
			if !st.referrals[name] {
				if len(st.referrals) > 0 {
					a.m.Committees.MultipleReferrals++
				}
				st.referrals[name] = true
			}
			if st.currentCommittee != "" && st.currentCommittee != name {
				a.m.Committees.Reassignments++
			}
			st.currentCommittee = name
			if dateOK {
				st.dwellStart = date
				st.dwellActive = true
			}
		}
	}

	if strings.Contains(desc, "committee report") && st.dwellActive && dateOK {
		a.dwellDaysSum += float64(daysBetween(st.dwellStart, date))
		a.dwellCount++
		st.dwellActive = false
	}
}

// extractCommitteeName tries three ordered patterns; the first plausible
// capture wins. Heuristic misses are expected on unusual phrasing.
func extractCommitteeName(description string) (string, bool) {
	for _, pattern := range []*regexp.Regexp{
		committeeReferredPattern,
		committeeBarePattern,
		committeeOnPattern,
	} {
		match := pattern.FindStringSubmatch(description)
		if match == nil {
			continue
		}
		name := strings.TrimSpace(match[1])
		if !plausibleCommitteeName(name) {
			continue
		}
		return name, true
	}
	return "", false
}

// plausibleCommitteeName rejects captures that are grammatical residue
// rather than a committee name.
func plausibleCommitteeName(name string) bool {
	lower := strings.ToLower(name)
	if lower == "" || lower == "the" || lower == "committee" {
		return false
	}
	if strings.Contains(lower, "referred") || strings.HasSuffix(lower, " the") {
		return false
	}
	return true
}

// classifyAmendment counts amendment actions, classifies success and stage,
// and attributes authorship to a named participant when the description
// carries an "Amendment #n (Name)" marker.
func (a *Accumulator) classifyAmendment(st *billState, raw, desc string) {
	if !strings.Contains(desc, "amendment") {
		return
	}

	a.m.Amendments.Total++

	success := containsAny(desc, a.opts.AmendmentSuccessTerms) &&
		!containsAny(desc, a.opts.AmendmentFailureTerms)

	stage, ok := firstMatch(amendmentStageRules, desc)
	if !ok {
		stage = StageCommittee
	}
	a.m.Amendments.ByStage[stage].Total++
	if success {
		a.m.Amendments.Successful++
		a.m.Amendments.ByStage[stage].Successful++
	}

	match := amendmentAuthorPattern.FindStringSubmatch(raw)
	if match == nil {
		return
	}
	author := strings.TrimSpace(match[1])
	if author == "" {
		return
	}
	for _, p := range st.participants {
		if strings.Contains(strings.ToLower(p.FullName), strings.ToLower(author)) {
			a.m.Amendments.ByParty[billmodel.PartyCategory(p.Party)]++
			a.m.Amendments.Authors[author]++
			break
		}
	}
}

// trackTemporal registers the action in the session-day set, the day-of-week
// buckets and the month-keyed distributions.
func (a *Accumulator) trackTemporal(action billmodel.Action, desc string, date time.Time, dateOK bool) {
	if action.Day != "" {
		a.sessionDays[action.Day] = true
	}

	if strings.Contains(desc, "special session") {
		key := "unknown"
		if match := specialSessionPattern.FindStringSubmatch(desc); match != nil {
			key = match[1]
		}
		a.m.Temporal.SpecialSessions[key]++
	}

	if !dateOK {
		return
	}

	a.dayOfWeekCounts[int(date.Weekday())]++

	month := date.Format("2006-01")
	a.m.Temporal.ActionsByMonth[month]++
	a.dailyActivity[date.Format("2006-01-02")]++

	if phase, ok := firstMatch(actionPhaseRules, desc); ok {
		byMonth, exists := a.m.Temporal.PhaseByMonth[phase]
		if !exists {
			byMonth = make(map[string]int)
			a.m.Temporal.PhaseByMonth[phase] = byMonth
		}
		byMonth[month]++
	}
}

func containsAny(desc string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(desc, term) {
			return true
		}
	}
	return false
}
