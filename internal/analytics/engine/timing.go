package engine

import (
	"math"
	"sort"
	"strings"

	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
)

// BillTiming is the per-bill timing summary. Each field is nil when the
// corresponding event never occurred.
type BillTiming struct {
	DaysToPassChamber          *int `json:"daysToPassChamber"`
	DaysToReturnWithAmendments *int `json:"daysToReturnWithAmendments"`
	DaysToBecomeLaw            *int `json:"daysToBecomeLaw"`
}

// PartyBreakdown counts legislators by party category. Independents and
// other parties count toward Total only.
type PartyBreakdown struct {
	Total       int `json:"total"`
	Democrats   int `json:"democrats"`
	Republicans int `json:"republicans"`
}

// AmendmentOutcome is the roll-call amendment record for one bill, filtered
// to a set of legislator names.
type AmendmentOutcome struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// AverageTiming averages the non-nil per-bill timing values over a
// collection, rounded to the nearest whole day.
type AverageTiming struct {
	DaysToPassChamber *int `json:"daysToPassChamber"`
	DaysToBecomeLaw   *int `json:"daysToBecomeLaw"`
}

// CalculateBillTiming sorts the actions by date and derives day-differences
// from the first action to the first chamber referral and the first
// public-law enactment, and from the chamber referral to the first
// amendment return. Returns nil when the bill has no actions.
func CalculateBillTiming(actions []billmodel.Action) *BillTiming {
	if len(actions) == 0 {
		return nil
	}

	sorted := make([]billmodel.Action, 0, len(actions))
	for _, action := range actions {
		if _, ok := parseDate(action.Date); ok {
			sorted = append(sorted, action)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, _ := parseDate(sorted[i].Date)
		b, _ := parseDate(sorted[j].Date)
		return a.Before(b)
	})

	timing := &BillTiming{}
	if len(sorted) == 0 {
		return timing
	}

	first, _ := parseDate(sorted[0].Date)
	chamberPassage := first
	hasChamberPassage := false

	for _, action := range sorted {
		desc := strings.ToLower(action.Description)
		date, _ := parseDate(action.Date)

		switch {
		case timing.DaysToPassChamber == nil && strings.Contains(desc, "referred to the"):
			timing.DaysToPassChamber = intPtr(daysBetween(first, date))
			chamberPassage = date
			hasChamberPassage = true

		case timing.DaysToReturnWithAmendments == nil &&
			(strings.Contains(desc, "returned to the senate with amendments") ||
				strings.Contains(desc, "returned to the house with amendments")):
			base := first
			if hasChamberPassage {
				base = chamberPassage
			}
			timing.DaysToReturnWithAmendments = intPtr(daysBetween(base, date))

		case timing.DaysToBecomeLaw == nil && strings.Contains(desc, "public law"):
			timing.DaysToBecomeLaw = intPtr(daysBetween(first, date))
		}
	}

	return timing
}

// GetPartyBreakdown counts a flat legislator list by party category.
func GetPartyBreakdown(legislators []billmodel.Legislator) PartyBreakdown {
	breakdown := PartyBreakdown{Total: len(legislators)}
	for _, legislator := range legislators {
		switch billmodel.PartyCategory(legislator.Party) {
		case billmodel.PartyDemocrat:
			breakdown.Democrats++
		case billmodel.PartyRepublican:
			breakdown.Republicans++
		}
	}
	return breakdown
}

// AnalyzeAmendments counts roll-call amendment actions attributable to any
// of the supplied legislators. Names are cleaned of honorifics before
// matching. Returns nil when the bill has no actions.
func AnalyzeAmendments(bill billmodel.Bill, legislatorNames []string) *AmendmentOutcome {
	if len(bill.Actions) == 0 {
		return nil
	}

	cleaned := make([]string, 0, len(legislatorNames))
	for _, name := range legislatorNames {
		if c := strings.ToLower(billmodel.CleanName(name)); c != "" {
			cleaned = append(cleaned, c)
		}
	}

	outcome := &AmendmentOutcome{}
	for _, action := range bill.Actions {
		desc := strings.ToLower(action.Description)
		if !strings.Contains(desc, "amendment") || !strings.Contains(desc, "roll call") {
			continue
		}
		named := false
		for _, name := range cleaned {
			if strings.Contains(desc, name) {
				named = true
				break
			}
		}
		if !named {
			continue
		}

		if strings.Contains(desc, "prevailed") || strings.Contains(desc, "passed") {
			outcome.Passed++
		} else if strings.Contains(desc, "failed") || strings.Contains(desc, "defeated") {
			outcome.Failed++
		}
	}
	return outcome
}

// CalculateAverageTiming maps each bill through CalculateBillTiming and
// averages the non-nil values independently.
func CalculateAverageTiming(bills []billmodel.Bill) AverageTiming {
	var chamberSum, chamberCount, lawSum, lawCount int

	for _, bill := range bills {
		timing := CalculateBillTiming(bill.Actions)
		if timing == nil {
			continue
		}
		if timing.DaysToPassChamber != nil {
			chamberSum += *timing.DaysToPassChamber
			chamberCount++
		}
		if timing.DaysToBecomeLaw != nil {
			lawSum += *timing.DaysToBecomeLaw
			lawCount++
		}
	}

	avg := AverageTiming{}
	if chamberCount > 0 {
		avg.DaysToPassChamber = intPtr(int(math.Round(float64(chamberSum) / float64(chamberCount))))
	}
	if lawCount > 0 {
		avg.DaysToBecomeLaw = intPtr(int(math.Round(float64(lawSum) / float64(lawCount))))
	}
	return avg
}

func intPtr(v int) *int {
	return &v
}
