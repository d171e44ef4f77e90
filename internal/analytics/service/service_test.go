package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicpulse/civicpulse/internal/analytics/engine"
	"github.com/civicpulse/civicpulse/internal/analytics/model"
	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchBills(ctx context.Context, year string) ([]billmodel.Bill, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billmodel.Bill), args.Error(1)
}

func (m *mockFetcher) FetchBillDetails(ctx context.Context, year, billName string) (*billmodel.Details, error) {
	args := m.Called(ctx, year, billName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billmodel.Details), args.Error(1)
}

func (m *mockFetcher) FetchBillActions(ctx context.Context, year, billName string) ([]billmodel.Action, error) {
	args := m.Called(ctx, year, billName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billmodel.Action), args.Error(1)
}

func (m *mockFetcher) FetchLegislators(ctx context.Context, year string) ([]billmodel.Legislator, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billmodel.Legislator), args.Error(1)
}

func newTestService(fetcher *mockFetcher) Service {
	return New(fetcher, engine.DefaultOptions(), zap.NewNop().Sugar())
}

func TestGetMetrics(t *testing.T) {
	t.Run("invalid year", func(t *testing.T) {
		fetcher := new(mockFetcher)
		svc := newTestService(fetcher)

		_, err := svc.GetMetrics(context.Background(), "20x4")
		assert.ErrorIs(t, err, model.ErrInvalidYear)

		_, err = svc.GetMetrics(context.Background(), "")
		assert.ErrorIs(t, err, model.ErrInvalidYear)

		fetcher.AssertNotCalled(t, "FetchBills")
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchBills", mock.Anything, "1850").Return(nil, billmodel.ErrYearNotFound)
		svc := newTestService(fetcher)

		_, err := svc.GetMetrics(context.Background(), "1850")
		assert.ErrorIs(t, err, billmodel.ErrYearNotFound)
	})

	t.Run("enriches and computes", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchBills", mock.Anything, "2024").Return([]billmodel.Bill{
			{BillName: "SB0001", Type: "authored"},
		}, nil)
		fetcher.On("FetchBillDetails", mock.Anything, "2024", "SB0001").Return(&billmodel.Details{
			Authors: []billmodel.Participant{{FullName: "Jane Smith", Party: "Republican"}},
		}, nil)
		fetcher.On("FetchBillActions", mock.Anything, "2024", "SB0001").Return([]billmodel.Action{
			{Date: "2024-01-08", Description: "First reading"},
		}, nil)
		svc := newTestService(fetcher)

		resp, err := svc.GetMetrics(context.Background(), "2024")
		require.NoError(t, err)
		assert.Equal(t, "2024", resp.Year)
		assert.Equal(t, 1, resp.Metrics.TotalBills)
		assert.Equal(t, []string{"Jane Smith"}, resp.Metrics.ActiveLegislators)
		assert.Equal(t, 1, resp.Metrics.Success.Pending)
		fetcher.AssertExpectations(t)
	})

	t.Run("deduplicates by bill name and type", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchBills", mock.Anything, "2024").Return([]billmodel.Bill{
			{BillName: "SB0001", Type: "authored"},
			{BillName: "SB0001", Type: "authored"},
			{BillName: "SB0001", Type: "sponsored"},
		}, nil)
		fetcher.On("FetchBillDetails", mock.Anything, "2024", "SB0001").Return(nil, errors.New("unavailable"))
		fetcher.On("FetchBillActions", mock.Anything, "2024", "SB0001").Return(nil, errors.New("unavailable"))
		svc := newTestService(fetcher)

		resp, err := svc.GetMetrics(context.Background(), "2024")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Metrics.TotalBills)
		assert.Equal(t, 1, resp.Metrics.BillsByType["authored"])
		assert.Equal(t, 1, resp.Metrics.BillsByType["sponsored"])
	})

	t.Run("failed enrichment keeps the bare bill", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchBills", mock.Anything, "2024").Return([]billmodel.Bill{
			{BillName: "SB0001", Type: "authored"},
		}, nil)
		fetcher.On("FetchBillDetails", mock.Anything, "2024", "SB0001").Return(nil, errors.New("boom"))
		fetcher.On("FetchBillActions", mock.Anything, "2024", "SB0001").Return(nil, errors.New("boom"))
		svc := newTestService(fetcher)

		resp, err := svc.GetMetrics(context.Background(), "2024")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Metrics.TotalBills)
		assert.Empty(t, resp.Metrics.ActiveLegislators)
	})

	t.Run("malformed bill is counted as skipped", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchBills", mock.Anything, "2024").Return([]billmodel.Bill{
			{BillName: ""},
		}, nil)
		svc := newTestService(fetcher)

		resp, err := svc.GetMetrics(context.Background(), "2024")
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Metrics.TotalBills)
		assert.Equal(t, 1, resp.Metrics.SkippedBills)
	})
}

func TestGetWordCloud(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchBills", mock.Anything, "2024").Return([]billmodel.Bill{
		{
			BillName: "SB0001",
			Type:     "authored",
			Details: &billmodel.Details{
				LatestVersion: &billmodel.LatestVersion{Digest: "Increases education funding for charter schools."},
			},
			Actions: []billmodel.Action{{Date: "2024-01-08", Description: "First reading"}},
		},
	}, nil)
	svc := newTestService(fetcher)

	resp, err := svc.GetWordCloud(context.Background(), "2024")
	require.NoError(t, err)
	assert.Equal(t, "2024", resp.Year)

	words := make([]string, 0, len(resp.Words))
	for _, w := range resp.Words {
		words = append(words, w.Word)
	}
	assert.Contains(t, words, "education")
	assert.Contains(t, words, "funding")
	assert.NotContains(t, words, "for")
}

func TestGetBillStatistics(t *testing.T) {
	bills := []billmodel.Bill{
		{
			BillName: "SB0001",
			Type:     "authored",
			Details:  &billmodel.Details{},
			Actions: []billmodel.Action{
				{Date: "2024-01-01", Description: "First reading"},
				{Date: "2024-01-10", Description: "Referred to the Committee on Education"},
				{Date: "2024-01-20", Description: "Amendment #1 (Smith) prevailed; Roll Call 12"},
				{Date: "2024-03-01", Description: "Public Law 45"},
			},
		},
		{
			BillName: "HB1001",
			Type:     "sponsored",
			Details:  &billmodel.Details{},
			Actions: []billmodel.Action{
				{Date: "2024-01-05", Description: "First reading"},
			},
		},
	}

	t.Run("groups by type with legislator attribution", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchBills", mock.Anything, "2024").Return(bills, nil)
		fetcher.On("FetchLegislators", mock.Anything, "2024").Return([]billmodel.Legislator{
			{FullName: "Jane Smith", Party: "Republican"},
			{FullName: "Pat Doe", Party: "Democrat"},
		}, nil)
		svc := newTestService(fetcher)

		resp, err := svc.GetBillStatistics(context.Background(), "2024", "Senator Smith")
		require.NoError(t, err)

		require.Contains(t, resp.Groups, "authored")
		authored := resp.Groups["authored"]
		assert.Equal(t, 1, authored.BillCount)
		require.NotNil(t, authored.AverageTiming.DaysToPassChamber)
		assert.Equal(t, 9, *authored.AverageTiming.DaysToPassChamber)
		require.NotNil(t, authored.AverageTiming.DaysToBecomeLaw)
		assert.Equal(t, 60, *authored.AverageTiming.DaysToBecomeLaw)
		assert.Equal(t, 1, authored.Amendments.Passed)
		assert.Equal(t, 0, authored.Amendments.Failed)

		require.Contains(t, resp.Groups, "sponsored")
		sponsored := resp.Groups["sponsored"]
		assert.Equal(t, 1, sponsored.BillCount)
		assert.Nil(t, sponsored.AverageTiming.DaysToPassChamber)

		assert.Equal(t, 2, resp.PartyBreakdown.Total)
		assert.Equal(t, 1, resp.PartyBreakdown.Democrats)
		assert.Equal(t, 1, resp.PartyBreakdown.Republicans)
		assert.Equal(t, "Senator Smith", resp.Legislator)
	})

	t.Run("degrades without the member list", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchBills", mock.Anything, "2024").Return(bills, nil)
		fetcher.On("FetchLegislators", mock.Anything, "2024").Return(nil, errors.New("upstream down"))
		svc := newTestService(fetcher)

		resp, err := svc.GetBillStatistics(context.Background(), "2024", "")
		require.NoError(t, err)
		assert.Equal(t, 0, resp.PartyBreakdown.Total)
		assert.Len(t, resp.Groups, 2)
	})
}
