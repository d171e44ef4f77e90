package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
)

func newTestAccumulator() *Accumulator {
	return NewAccumulator(DefaultOptions(), zap.NewNop().Sugar())
}

func TestExtractCommitteeName(t *testing.T) {
	t.Run("referral phrasing", func(t *testing.T) {
		name, ok := extractCommitteeName("Referred to the Education Committee")
		assert.True(t, ok)
		assert.Equal(t, "Education", name)
	})

	t.Run("multiword name", func(t *testing.T) {
		name, ok := extractCommitteeName("Referred to Ways and Means Committee")
		assert.True(t, ok)
		assert.Equal(t, "Ways and Means", name)
	})

	t.Run("bare phrasing", func(t *testing.T) {
		name, ok := extractCommitteeName("Judiciary Committee report: do pass")
		assert.True(t, ok)
		assert.Equal(t, "Judiciary", name)
	})

	t.Run("no name extractable", func(t *testing.T) {
		_, ok := extractCommitteeName("Committee")
		assert.False(t, ok)
	})
}

func TestClassifyReadingStage(t *testing.T) {
	acc := newTestAccumulator()
	st := newBillState(billmodel.ChamberSenate, nil)

	acc.classifyAction(st, billmodel.Action{Date: "2024-01-08", Description: "First reading: referred to Committee on Education"})
	acc.classifyAction(st, billmodel.Action{Date: "2024-01-20", Description: "Second reading: ordered engrossed"})
	acc.classifyAction(st, billmodel.Action{Date: "2024-01-23", Description: "Third reading: passed; Roll Call 45"})

	assert.Equal(t, 1, acc.m.Success.ReadingStages.First)
	assert.Equal(t, 1, acc.m.Success.ReadingStages.Second)
	assert.Equal(t, 1, acc.m.Success.ReadingStages.Third)
	assert.Equal(t, 1, acc.m.Success.ByChamber[billmodel.ChamberSenate].Passed)
	assert.True(t, st.sawPassage)
}

func TestClassifyCommitteeDwellAndReferrals(t *testing.T) {
	acc := newTestAccumulator()
	st := newBillState(billmodel.ChamberHouse, nil)

	acc.classifyAction(st, billmodel.Action{Date: "2024-01-05", Description: "Referred to the Education Committee"})
	acc.classifyAction(st, billmodel.Action{Date: "2024-01-20", Description: "Committee report: amend do pass, adopted"})

	assert.Equal(t, 1, acc.dwellCount)
	assert.InDelta(t, 15, acc.dwellDaysSum, 0.001)
	assert.Equal(t, 0, acc.m.Committees.MultipleReferrals)
	assert.Equal(t, 0, acc.m.Committees.Reassignments)
	assert.Equal(t, 1, acc.m.Committees.Activity["Education"])

	acc.classifyAction(st, billmodel.Action{Date: "2024-01-22", Description: "Referred to the Ways and Means Committee"})

	assert.Equal(t, 1, acc.m.Committees.MultipleReferrals)
	assert.Equal(t, 1, acc.m.Committees.Reassignments)

	// Each additional distinct committee counts again; a repeat referral
	// to a committee already seen does not.
	acc.classifyAction(st, billmodel.Action{Date: "2024-01-25", Description: "Referred to the Judiciary Committee"})
	acc.classifyAction(st, billmodel.Action{Date: "2024-01-28", Description: "Referred to the Education Committee"})

	assert.Equal(t, 2, acc.m.Committees.MultipleReferrals)
	assert.Equal(t, 3, acc.m.Committees.Reassignments)
}

func TestClassifyAmendment(t *testing.T) {
	t.Run("successful amendment with attribution", func(t *testing.T) {
		acc := newTestAccumulator()
		participants := []billmodel.Participant{{FullName: "Jane Smith", Party: "Republican"}}
		st := newBillState(billmodel.ChamberSenate, participants)

		acc.classifyAction(st, billmodel.Action{Date: "2024-02-01", Description: "Amendment #3 (Smith) prevailed; voice vote"})

		assert.Equal(t, 1, acc.m.Amendments.Total)
		assert.Equal(t, 1, acc.m.Amendments.Successful)
		assert.Equal(t, 1, acc.m.Amendments.ByStage[StageCommittee].Total)
		assert.Equal(t, 1, acc.m.Amendments.ByParty["republican"])
		assert.Equal(t, 1, acc.m.Amendments.Authors["Smith"])
	})

	t.Run("failure term vetoes success", func(t *testing.T) {
		acc := newTestAccumulator()
		st := newBillState(billmodel.ChamberSenate, nil)

		acc.classifyAction(st, billmodel.Action{Date: "2024-02-01", Description: "Amendment #1 passed out of committee but later withdrawn"})

		assert.Equal(t, 1, acc.m.Amendments.Total)
		assert.Equal(t, 0, acc.m.Amendments.Successful)
	})

	t.Run("stage priority prefers committee", func(t *testing.T) {
		acc := newTestAccumulator()
		st := newBillState(billmodel.ChamberSenate, nil)

		acc.classifyAction(st, billmodel.Action{Date: "2024-02-01", Description: "Second reading amendment adopted in committee"})

		assert.Equal(t, 1, acc.m.Amendments.ByStage[StageCommittee].Total)
		assert.Equal(t, 0, acc.m.Amendments.ByStage[StageSecondReading].Total)
	})

	t.Run("second reading stage", func(t *testing.T) {
		acc := newTestAccumulator()
		st := newBillState(billmodel.ChamberSenate, nil)

		acc.classifyAction(st, billmodel.Action{Date: "2024-02-01", Description: "Second reading: Amendment #2 rejected"})

		assert.Equal(t, 1, acc.m.Amendments.ByStage[StageSecondReading].Total)
		assert.Equal(t, 0, acc.m.Amendments.Successful)
	})

	t.Run("extraction miss is silent", func(t *testing.T) {
		acc := newTestAccumulator()
		st := newBillState(billmodel.ChamberSenate, []billmodel.Participant{{FullName: "Jane Smith", Party: "Republican"}})

		acc.classifyAction(st, billmodel.Action{Date: "2024-02-01", Description: "Amendment adopted without a roll call"})

		assert.Equal(t, 1, acc.m.Amendments.Total)
		assert.Empty(t, acc.m.Amendments.Authors)
		assert.Empty(t, acc.m.Amendments.ByParty)
	})
}

func TestTrackTemporal(t *testing.T) {
	t.Run("session days, weekday and month buckets", func(t *testing.T) {
		acc := newTestAccumulator()
		st := newBillState(billmodel.ChamberSenate, nil)

		// 2024-01-08 is a Monday.
		acc.classifyAction(st, billmodel.Action{Date: "2024-01-08", Description: "First reading", Day: "8"})
		acc.classifyAction(st, billmodel.Action{Date: "2024-01-09", Description: "Second reading", Day: "9"})

		assert.Equal(t, map[string]bool{"8": true, "9": true}, acc.sessionDays)
		assert.Equal(t, 1, acc.dayOfWeekCounts[1])
		assert.Equal(t, 1, acc.dayOfWeekCounts[2])
		assert.Equal(t, 2, acc.m.Temporal.ActionsByMonth["2024-01"])
		assert.Equal(t, 1, acc.m.Temporal.PhaseByMonth[PhaseIntroduction]["2024-01"])
		assert.Equal(t, 1, acc.m.Temporal.PhaseByMonth[PhaseReadings]["2024-01"])
	})

	t.Run("malformed date contributes nothing", func(t *testing.T) {
		acc := newTestAccumulator()
		st := newBillState(billmodel.ChamberSenate, nil)

		acc.classifyAction(st, billmodel.Action{Date: "not a date", Description: "First reading", Day: "3"})

		assert.Empty(t, acc.m.Temporal.ActionsByMonth)
		assert.Equal(t, map[string]bool{"3": true}, acc.sessionDays)
		assert.Equal(t, 1, acc.m.Success.ReadingStages.First)
	})

	t.Run("special session extraction", func(t *testing.T) {
		acc := newTestAccumulator()
		st := newBillState(billmodel.ChamberSenate, nil)

		acc.classifyAction(st, billmodel.Action{Date: "2024-05-14", Description: "Convened in special session 2"})
		acc.classifyAction(st, billmodel.Action{Date: "2024-05-15", Description: "Special session adjourned"})

		assert.Equal(t, 1, acc.m.Temporal.SpecialSessions["2"])
		assert.Equal(t, 1, acc.m.Temporal.SpecialSessions["unknown"])
	})
}

func TestClassifyPassageVeto(t *testing.T) {
	acc := newTestAccumulator()
	st := newBillState(billmodel.ChamberSenate, nil)

	acc.classifyAction(st, billmodel.Action{Date: "2024-01-08", Description: "First reading"})
	acc.classifyAction(st, billmodel.Action{Date: "2024-03-01", Description: "Vetoed by the Governor"})

	assert.True(t, st.sawVeto)
	assert.False(t, st.sawPassage)
}
