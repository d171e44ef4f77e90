package engine

// Metrics is the aggregate output for one bill collection. Counters and maps
// fill during the accumulation pass; every rate, average and Top* collection
// is derived by Finalize and must not be read mid-accumulation.
type Metrics struct {
	TotalBills   int `json:"totalBills"`
	SkippedBills int `json:"skippedBills"`

	// BillsByType counts bills per authorship relationship.
	BillsByType map[string]int `json:"billsByType"`
	// BillsByChamberParty counts bills per chamber of origin and primary
	// author party category.
	BillsByChamberParty map[string]map[string]int `json:"billsByChamberParty"`

	Bipartisan BipartisanMetrics `json:"bipartisan"`

	// ActiveLegislators lists distinct legislator names seen on any bill,
	// sorted; filled by Finalize.
	ActiveLegislators []string `json:"activeLegislators"`
	// LegislatorCollaborations counts bills shared by each unordered pair of
	// participant names, keyed by the sorted, "|"-joined pair.
	LegislatorCollaborations map[string]int `json:"legislatorCollaborations"`
	// TopCollaborations is the bounded, sorted view of LegislatorCollaborations.
	TopCollaborations []NamedCount `json:"topCollaborations"`
	// LeadershipActivity counts bills per participant holding a leadership title.
	LeadershipActivity map[string]int `json:"leadershipActivity"`
	TopLeadership      []NamedCount   `json:"topLeadership"`
	// CommitteeLeadership counts bills per participant chairing a committee.
	CommitteeLeadership map[string]int `json:"committeeLeadership"`

	Success    SuccessMetrics    `json:"successMetrics"`
	Committees CommitteeMetrics  `json:"committeeDynamics"`
	Temporal   TemporalMetrics   `json:"temporalAnalysis"`
	Amendments AmendmentAnalysis `json:"amendmentAnalysis"`

	// WordFrequency is the raw token count map accumulated from bill digests.
	WordFrequency map[string]int `json:"wordFrequency"`
}

// BipartisanMetrics captures cross-party collaboration.
type BipartisanMetrics struct {
	TotalBipartisanBills int `json:"totalBipartisanBills"`
	// BipartisanPercentage is TotalBipartisanBills over TotalBills; finalized.
	BipartisanPercentage float64 `json:"bipartisanPercentage"`
	// CrossPartyCollaborations counts bipartisan bills per unordered party
	// pair, keyed by the sorted, "-"-joined pair (e.g. "democrat-republican").
	CrossPartyCollaborations map[string]int `json:"crossPartyCollaborations"`
	// AvgCollaboratorsPerBill is finalized from a running participant sum.
	AvgCollaboratorsPerBill float64 `json:"avgCollaboratorsPerBill"`
}

// SuccessMetrics tracks bill outcomes.
type SuccessMetrics struct {
	// Total counts bills that carry at least one action.
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Vetoed  int `json:"vetoed"`
	Pending int `json:"pending"`
	// PassageRate is Passed over Total, finalized.
	PassageRate float64 `json:"passageRate"`
	// ByChamber tracks third-reading outcomes per chamber of origin.
	ByChamber map[string]*ChamberOutcome `json:"byChamber"`
	// ReadingStages counts reading-stage actions across the collection.
	ReadingStages ReadingStages `json:"readingStages"`
	// AvgDaysToPassage is finalized from a running sum over passed bills.
	AvgDaysToPassage float64 `json:"avgDaysToPassage"`
}

// ChamberOutcome is the third-reading record for one chamber.
type ChamberOutcome struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	// Rate is Passed over Passed+Failed, finalized.
	Rate float64 `json:"rate"`
}

// ReadingStages counts procedural checkpoints.
type ReadingStages struct {
	First  int `json:"firstReading"`
	Second int `json:"secondReading"`
	Third  int `json:"thirdReading"`
}

// CommitteeMetrics tracks committee dynamics.
type CommitteeMetrics struct {
	// Activity counts actions per extracted committee name.
	Activity map[string]int `json:"activity"`
	// TopCommittees is the bounded, sorted view of Activity; finalized.
	TopCommittees []NamedCount `json:"topCommittees"`
	// AvgDwellDays is the average referral-to-report time, finalized.
	AvgDwellDays float64 `json:"avgDwellDays"`
	// MultipleReferrals counts each distinct committee referral beyond a
	// bill's first, so a bill referred to three committees contributes two.
	MultipleReferrals int `json:"multipleReferrals"`
	// Reassignments counts referrals that displaced a different current committee.
	Reassignments int `json:"reassignments"`
}

// TemporalMetrics tracks activity distribution over time.
type TemporalMetrics struct {
	// BillsByMonth counts bills by the YYYY-MM of their first parseable action.
	BillsByMonth map[string]int `json:"billsByMonth"`
	// ActionsByMonth counts every dated action by YYYY-MM.
	ActionsByMonth map[string]int `json:"actionsByMonth"`
	// PhaseByMonth duplicates ActionsByMonth per matched legislative phase
	// (introduction, committee, readings, passage).
	PhaseByMonth map[string]map[string]int `json:"phaseByMonth"`
	// SessionDays lists distinct session-day identifiers, sorted; finalized.
	SessionDays []string `json:"sessionDays"`
	// SpecialSessions counts actions per extracted special-session number.
	SpecialSessions map[string]int `json:"specialSessions"`
	// DayOfWeekDistribution holds, after Finalize, the percentage of actions
	// per weekday (index 0 = Sunday).
	DayOfWeekDistribution [7]float64 `json:"dayOfWeekDistribution"`
	// MonthlyAverages maps calendar month ("01".."12") to the average action
	// count across years; finalized.
	MonthlyAverages map[string]float64 `json:"monthlyAverages"`
	// PeakDays lists the busiest dates by action count; finalized.
	PeakDays []PeakDay `json:"peakDays"`
	// ActivityStats summarizes the daily activity distribution; finalized.
	ActivityStats ActivityStats `json:"activityStats"`
}

// PeakDay is one high-activity calendar day.
type PeakDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ActivityStats summarizes per-day action counts.
type ActivityStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    int     `json:"max"`
}

// AmendmentAnalysis tracks amendment outcomes.
type AmendmentAnalysis struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	// SuccessRate is Successful over Total, finalized.
	SuccessRate float64 `json:"successRate"`
	// ByStage tracks outcomes per procedural stage.
	ByStage map[string]*StageOutcome `json:"byStage"`
	// ByParty counts attributed amendments per author party category.
	ByParty map[string]int `json:"amendmentsByParty"`
	// Authors counts attributed amendments per extracted author name.
	Authors map[string]int `json:"amendmentAuthors"`
	// TopAuthors is the bounded, sorted view of Authors; finalized.
	TopAuthors []NamedCount `json:"topAuthors"`
}

// StageOutcome is the amendment record for one stage.
type StageOutcome struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
}

// NamedCount is one entry of a sorted display collection.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Amendment stages, in classification priority order.
const (
	StageCommittee     = "committee"
	StageSecondReading = "secondReading"
	StageThirdReading  = "thirdReading"
)

// Legislative phases for temporal bookkeeping.
const (
	PhaseIntroduction = "introduction"
	PhaseCommittee    = "committee"
	PhaseReadings     = "readings"
	PhasePassage      = "passage"
)

// NewMetrics returns an empty, fully initialized metrics structure. All maps
// are allocated so accumulation never branches on nil.
func NewMetrics() *Metrics {
	return &Metrics{
		BillsByType:         make(map[string]int),
		BillsByChamberParty: make(map[string]map[string]int),
		Bipartisan: BipartisanMetrics{
			CrossPartyCollaborations: make(map[string]int),
		},
		ActiveLegislators:        []string{},
		LegislatorCollaborations: make(map[string]int),
		TopCollaborations:        []NamedCount{},
		LeadershipActivity:       make(map[string]int),
		TopLeadership:            []NamedCount{},
		CommitteeLeadership:      make(map[string]int),
		Success: SuccessMetrics{
			ByChamber: make(map[string]*ChamberOutcome),
		},
		Committees: CommitteeMetrics{
			Activity:      make(map[string]int),
			TopCommittees: []NamedCount{},
		},
		Temporal: TemporalMetrics{
			BillsByMonth:    make(map[string]int),
			ActionsByMonth:  make(map[string]int),
			PhaseByMonth:    make(map[string]map[string]int),
			SessionDays:     []string{},
			SpecialSessions: make(map[string]int),
			MonthlyAverages: make(map[string]float64),
			PeakDays:        []PeakDay{},
		},
		Amendments: AmendmentAnalysis{
			ByStage: map[string]*StageOutcome{
				StageCommittee:     {},
				StageSecondReading: {},
				StageThirdReading:  {},
			},
			ByParty:    make(map[string]int),
			Authors:    make(map[string]int),
			TopAuthors: []NamedCount{},
		},
		WordFrequency: make(map[string]int),
	}
}
