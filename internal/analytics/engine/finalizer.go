package engine

import (
	"sort"
	"strings"
)

// Finalize runs the post-processing pass: rates, averages, normalized
// distributions and bounded display collections. Every division guards its
// denominator, so an empty collection yields zeros rather than NaN.
func (a *Accumulator) Finalize() *Metrics {
	m := a.m

	if m.TotalBills > 0 {
		m.Bipartisan.BipartisanPercentage = percentage(m.Bipartisan.TotalBipartisanBills, m.TotalBills)
	}
	if a.billsWithParticipants > 0 {
		m.Bipartisan.AvgCollaboratorsPerBill = float64(a.collaboratorSum) / float64(a.billsWithParticipants)
	}

	if m.Success.Total > 0 {
		m.Success.PassageRate = percentage(m.Success.Passed, m.Success.Total)
	}
	for _, outcome := range m.Success.ByChamber {
		if decided := outcome.Passed + outcome.Failed; decided > 0 {
			outcome.Rate = percentage(outcome.Passed, decided)
		}
	}
	if a.passageDaysCount > 0 {
		m.Success.AvgDaysToPassage = a.passageDaysSum / float64(a.passageDaysCount)
	}

	if a.dwellCount > 0 {
		m.Committees.AvgDwellDays = a.dwellDaysSum / float64(a.dwellCount)
	}

	if m.Amendments.Total > 0 {
		m.Amendments.SuccessRate = percentage(m.Amendments.Successful, m.Amendments.Total)
	}

	m.ActiveLegislators = sortedSet(a.activeLegislators)
	m.Temporal.SessionDays = sortedSet(a.sessionDays)

	a.finalizeDayOfWeek()
	a.finalizeMonthlyAverages()
	a.finalizePeakActivity()

	limit := a.opts.MaxDisplayItems
	m.TopCollaborations = topN(m.LegislatorCollaborations, limit)
	m.TopLeadership = topN(m.LeadershipActivity, limit)
	m.Committees.TopCommittees = topN(m.Committees.Activity, limit)
	m.Amendments.TopAuthors = topN(m.Amendments.Authors, limit)

	return m
}

// finalizeDayOfWeek converts raw weekday counts to percentages of all dated
// actions.
func (a *Accumulator) finalizeDayOfWeek() {
	total := 0
	for _, count := range a.dayOfWeekCounts {
		total += count
	}
	if total == 0 {
		return
	}
	for i, count := range a.dayOfWeekCounts {
		a.m.Temporal.DayOfWeekDistribution[i] = percentage(count, total)
	}
}

// finalizeMonthlyAverages averages action counts per calendar month across
// the years present in the collection.
func (a *Accumulator) finalizeMonthlyAverages() {
	sums := make(map[string]int)
	occurrences := make(map[string]int)

	for yearMonth, count := range a.m.Temporal.ActionsByMonth {
		parts := strings.SplitN(yearMonth, "-", 2)
		if len(parts) != 2 {
			continue
		}
		month := parts[1]
		sums[month] += count
		occurrences[month]++
	}

	for month, sum := range sums {
		a.m.Temporal.MonthlyAverages[month] = float64(sum) / float64(occurrences[month])
	}
}

// finalizePeakActivity derives the top peak-activity days and the summary
// statistics of the daily activity distribution.
func (a *Accumulator) finalizePeakActivity() {
	if len(a.dailyActivity) == 0 {
		return
	}

	days := make([]PeakDay, 0, len(a.dailyActivity))
	counts := make([]float64, 0, len(a.dailyActivity))
	sum := 0
	max := 0
	for date, count := range a.dailyActivity {
		days = append(days, PeakDay{Date: date, Count: count})
		counts = append(counts, float64(count))
		sum += count
		if count > max {
			max = count
		}
	}

	sort.Slice(days, func(i, j int) bool {
		if days[i].Count != days[j].Count {
			return days[i].Count > days[j].Count
		}
		return days[i].Date < days[j].Date
	})
	if len(days) > a.opts.MaxPeakDays {
		days = days[:a.opts.MaxPeakDays]
	}

	a.m.Temporal.PeakDays = days
	a.m.Temporal.ActivityStats = ActivityStats{
		Mean:   float64(sum) / float64(len(counts)),
		Median: median(counts),
		Max:    max,
	}
}

// median returns the middle value of the sequence: the average of the two
// middle values for even lengths, 0 for empty input.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// topN sorts a count map by descending count (name ascending on ties) and
// truncates to limit.
func topN(counts map[string]int, limit int) []NamedCount {
	entries := make([]NamedCount, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, NamedCount{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func percentage(part, whole int) float64 {
	return float64(part) / float64(whole) * 100
}
