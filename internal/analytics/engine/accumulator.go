package engine

import (
	"go.uber.org/zap"

	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
)

// Accumulator folds a bill collection into one Metrics structure. Each call
// to NewAccumulator produces independent state; nothing is shared across
// invocations, so concurrent request handlers may each run their own fold.
type Accumulator struct {
	opts   Options
	logger *zap.SugaredLogger
	m      *Metrics

	activeLegislators map[string]bool
	sessionDays       map[string]bool
	dayOfWeekCounts   [7]int
	dailyActivity     map[string]int

	collaboratorSum       int
	billsWithParticipants int
	passageDaysSum        float64
	passageDaysCount      int
	dwellDaysSum          float64
	dwellCount            int
}

// NewAccumulator creates a fresh accumulator with the given options.
func NewAccumulator(opts Options, logger *zap.SugaredLogger) *Accumulator {
	return &Accumulator{
		opts:              opts,
		logger:            logger,
		m:                 NewMetrics(),
		activeLegislators: make(map[string]bool),
		sessionDays:       make(map[string]bool),
		dailyActivity:     make(map[string]int),
	}
}

// ComputeMetrics runs the full fold and finalize pass over a collection of
// bill records. The caller is expected to have deduplicated the collection
// by (billName, type). A malformed bill is skipped, counted and logged; it
// never aborts the pass.
func ComputeMetrics(bills []billmodel.Bill, opts Options, logger *zap.SugaredLogger) *Metrics {
	acc := NewAccumulator(opts, logger)
	for _, bill := range bills {
		acc.Add(bill)
	}
	return acc.Finalize()
}

// Add folds one bill into the accumulator.
func (a *Accumulator) Add(bill billmodel.Bill) {
	if bill.BillName == "" {
		a.m.SkippedBills++
		a.logger.Warnw("skipping malformed bill record", "error", billmodel.ErrMissingBillName)
		return
	}

	a.m.TotalBills++

	if bill.Type != "" {
		a.m.BillsByType[bill.Type]++
	}

	chamber := billmodel.ChamberOf(bill.BillName)

	var participants []billmodel.Participant
	if bill.Details != nil {
		participants = extractParticipants(bill.Details)
		a.addParticipantMetrics(chamber, bill.Details, participants)
		accumulateWordFrequency(bill.Details.Digest(), a.m.WordFrequency, a.opts.StopWords, a.opts.DomainTerms)
	}

	if len(bill.Actions) > 0 {
		a.m.Success.Total++
		a.addActionMetrics(chamber, participants, bill.Actions)
	}
}

// addParticipantMetrics covers the chamber/party, collaboration, leadership
// and bipartisan dimensions. Bills without details never reach here.
func (a *Accumulator) addParticipantMetrics(chamber string, details *billmodel.Details, participants []billmodel.Participant) {
	if primary, ok := primaryAuthor(details, participants); ok {
		party := billmodel.PartyCategory(primary.Party)
		byParty, exists := a.m.BillsByChamberParty[chamber]
		if !exists {
			byParty = make(map[string]int)
			a.m.BillsByChamberParty[chamber] = byParty
		}
		byParty[party]++
	}

	for _, p := range participants {
		a.activeLegislators[p.FullName] = true
		if chairsCommittee(p) {
			a.m.CommitteeLeadership[p.FullName]++
		}
		if holdsLeadershipTitle(p, a.opts.LeadershipTitles) {
			a.m.LeadershipActivity[p.FullName]++
		}
	}

	if len(participants) >= 2 {
		a.addCollaborationMetrics(participants)
	}

	if len(participants) > 0 {
		a.collaboratorSum += len(participants)
		a.billsWithParticipants++
	}
}

// primaryAuthor picks the first listed author, falling back to the first
// participant of any kind.
func primaryAuthor(details *billmodel.Details, participants []billmodel.Participant) (billmodel.Participant, bool) {
	for _, p := range details.Authors {
		if p.FullName != "" {
			return p, true
		}
	}
	if len(participants) > 0 {
		return participants[0], true
	}
	return billmodel.Participant{}, false
}

// addCollaborationMetrics handles bipartisan detection, the cross-party pair
// counters and the pairwise name collaboration map.
func (a *Accumulator) addCollaborationMetrics(participants []billmodel.Participant) {
	categories := make(map[string]bool)
	for _, p := range participants {
		categories[billmodel.PartyCategory(p.Party)] = true
	}

	if len(categories) > 1 {
		a.m.Bipartisan.TotalBipartisanBills++

		present := make([]string, 0, len(categories))
		for category := range categories {
			present = append(present, category)
		}
		for i := 0; i < len(present); i++ {
			for j := i + 1; j < len(present); j++ {
				a.m.Bipartisan.CrossPartyCollaborations[pairKey(present[i], present[j], "-")]++
			}
		}
	}

	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			if participants[i].FullName == participants[j].FullName {
				continue
			}
			a.m.LegislatorCollaborations[pairKey(participants[i].FullName, participants[j].FullName, "|")]++
		}
	}
}

// addActionMetrics runs the classifier over every action in original order,
// then credits the bill's outcome exactly once.
func (a *Accumulator) addActionMetrics(chamber string, participants []billmodel.Participant, actions []billmodel.Action) {
	st := newBillState(chamber, participants)

	for _, action := range actions {
		a.classifyAction(st, action)
	}

	// A veto outranks an earlier passage signal.
	switch {
	case st.sawVeto:
		a.m.Success.Vetoed++
	case st.sawPassage:
		a.m.Success.Passed++
	default:
		a.m.Success.Pending++
	}

	if st.hasFirstDate {
		a.m.Temporal.BillsByMonth[st.firstActionDate.Format("2006-01")]++
	}
}
