// Package service provides business logic layer for the analytics module.
package service

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/civicpulse/civicpulse/internal/analytics/engine"
	"github.com/civicpulse/civicpulse/internal/analytics/model"
	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
	"github.com/civicpulse/civicpulse/internal/upstream"
)

// Service defines the interface for analytics business logic operations.
type Service interface {
	// GetMetrics computes the full metrics structure for a session year.
	GetMetrics(ctx context.Context, year string) (*model.MetricsResponse, error)

	// GetWordCloud projects the digest word frequencies for a session year.
	GetWordCloud(ctx context.Context, year string) (*model.WordCloudResponse, error)

	// GetBillStatistics groups bills by authorship type with timing and
	// amendment summaries, optionally attributed to one legislator.
	GetBillStatistics(ctx context.Context, year, legislator string) (*model.BillStatisticsResponse, error)
}

type service struct {
	fetcher upstream.Fetcher
	opts    engine.Options
	logger  *zap.SugaredLogger
}

// New creates a new analytics service instance.
func New(fetcher upstream.Fetcher, opts engine.Options, logger *zap.SugaredLogger) Service {
	return &service{
		fetcher: fetcher,
		opts:    opts,
		logger:  logger,
	}
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// GetMetrics computes the full metrics structure for a session year.
func (s *service) GetMetrics(ctx context.Context, year string) (*model.MetricsResponse, error) {
	s.logger.Debugw("GetMetrics called", "year", year)

	bills, err := s.loadEnrichedBills(ctx, year)
	if err != nil {
		s.logger.Errorw("GetMetrics failed", "year", year, "error", err)
		return nil, err
	}

	metrics := engine.ComputeMetrics(bills, s.opts, s.logger)

	s.logger.Infow("GetMetrics completed", "year", year,
		"total_bills", metrics.TotalBills, "skipped", metrics.SkippedBills)
	return &model.MetricsResponse{Year: year, Metrics: metrics}, nil
}

// GetWordCloud projects the digest word frequencies for a session year.
func (s *service) GetWordCloud(ctx context.Context, year string) (*model.WordCloudResponse, error) {
	s.logger.Debugw("GetWordCloud called", "year", year)

	bills, err := s.loadEnrichedBills(ctx, year)
	if err != nil {
		s.logger.Errorw("GetWordCloud failed", "year", year, "error", err)
		return nil, err
	}

	metrics := engine.ComputeMetrics(bills, s.opts, s.logger)
	words := engine.ProjectWordCloud(metrics.WordFrequency, s.opts)

	s.logger.Infow("GetWordCloud completed", "year", year, "words", len(words))
	return &model.WordCloudResponse{Year: year, Words: words}, nil
}

// GetBillStatistics groups bills by authorship type with timing and
// amendment summaries.
func (s *service) GetBillStatistics(ctx context.Context, year, legislator string) (*model.BillStatisticsResponse, error) {
	s.logger.Debugw("GetBillStatistics called", "year", year, "legislator", legislator)

	bills, err := s.loadEnrichedBills(ctx, year)
	if err != nil {
		s.logger.Errorw("GetBillStatistics failed", "year", year, "error", err)
		return nil, err
	}

	groups := make(map[string]model.BillGroupStatistics)
	byType := make(map[string][]billmodel.Bill)
	for _, bill := range bills {
		if bill.Type == "" {
			continue
		}
		byType[bill.Type] = append(byType[bill.Type], bill)
	}

	var names []string
	if legislator != "" {
		names = []string{legislator}
	}

	for billType, group := range byType {
		stats := model.BillGroupStatistics{
			BillCount:     len(group),
			AverageTiming: engine.CalculateAverageTiming(group),
		}
		for _, bill := range group {
			if outcome := engine.AnalyzeAmendments(bill, names); outcome != nil {
				stats.Amendments.Passed += outcome.Passed
				stats.Amendments.Failed += outcome.Failed
			}
		}
		groups[billType] = stats
	}

	legislators, err := s.fetcher.FetchLegislators(ctx, year)
	if err != nil {
		// The statistics page degrades without the member list; the bill
		// groups are still worth returning.
		s.logger.Warnw("GetBillStatistics could not fetch legislators", "year", year, "error", err)
		legislators = nil
	}

	resp := &model.BillStatisticsResponse{
		Year:           year,
		Legislator:     legislator,
		Groups:         groups,
		Overall:        engine.CalculateAverageTiming(bills),
		PartyBreakdown: engine.GetPartyBreakdown(legislators),
	}

	s.logger.Infow("GetBillStatistics completed", "year", year, "groups", len(groups))
	return resp, nil
}

// loadEnrichedBills fetches the bill list for a year, enriches each bill
// with details and actions, and deduplicates by (billName, type). A failed
// enrichment leaves the bill bare rather than failing the whole load.
func (s *service) loadEnrichedBills(ctx context.Context, year string) ([]billmodel.Bill, error) {
	if !yearPattern.MatchString(year) {
		return nil, model.ErrInvalidYear
	}

	bills, err := s.fetcher.FetchBills(ctx, year)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(bills))
	enriched := make([]billmodel.Bill, 0, len(bills))
	for _, bill := range bills {
		if bill.BillName == "" {
			// Kept so the accumulator can count the skip.
			enriched = append(enriched, bill)
			continue
		}
		if seen[bill.Key()] {
			continue
		}
		seen[bill.Key()] = true

		if bill.Details == nil {
			details, detailsErr := s.fetcher.FetchBillDetails(ctx, year, bill.BillName)
			if detailsErr != nil {
				s.logger.Warnw("bill details unavailable", "bill", bill.BillName, "error", detailsErr)
			} else {
				bill.Details = details
			}
		}
		if len(bill.Actions) == 0 {
			actions, actionsErr := s.fetcher.FetchBillActions(ctx, year, bill.BillName)
			if actionsErr != nil {
				s.logger.Warnw("bill actions unavailable", "bill", bill.BillName, "error", actionsErr)
			} else {
				bill.Actions = actions
			}
		}
		enriched = append(enriched, bill)
	}
	return enriched, nil
}
