// Package model provides data transfer objects for the analytics module.
package model

import "github.com/civicpulse/civicpulse/internal/analytics/engine"

// MetricsResponse is the full dashboard metrics payload for one session year.
type MetricsResponse struct {
	Year    string          `json:"year"`
	Metrics *engine.Metrics `json:"metrics"`
}

// WordCloudResponse is the bounded weighted word list for rendering. An
// empty Words list is the "no data" state, not an error.
type WordCloudResponse struct {
	Year  string              `json:"year"`
	Words []engine.WordWeight `json:"words"`
}

// BillGroupStatistics summarizes one authorship-type group of bills.
type BillGroupStatistics struct {
	BillCount     int                     `json:"billCount"`
	AverageTiming engine.AverageTiming    `json:"averageTiming"`
	Amendments    engine.AmendmentOutcome `json:"amendments"`
}

// BillStatisticsResponse groups bills by authorship type with per-group and
// overall timing summaries.
type BillStatisticsResponse struct {
	Year           string                         `json:"year"`
	Legislator     string                         `json:"legislator,omitempty"`
	Groups         map[string]BillGroupStatistics `json:"groups"`
	Overall        engine.AverageTiming           `json:"overall"`
	PartyBreakdown engine.PartyBreakdown          `json:"partyBreakdown"`
}
