// Package service provides business logic layer for the call log module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/civicpulse/civicpulse/internal/calllog/model"
	"github.com/civicpulse/civicpulse/internal/calllog/repository"
)

// defaultRecentLimit bounds the recent-calls listing.
const defaultRecentLimit = 25

// Service defines the interface for call log business logic operations.
type Service interface {
	// RecordCall stores a call event and bumps the running counter.
	RecordCall(ctx context.Context, req *model.RecordCallRequest) (*model.RecordCallResponse, error)

	// GetCallCount returns the running call counter.
	GetCallCount(ctx context.Context) (*model.CallCountResponse, error)

	// GetRecentCalls returns the newest call events.
	GetRecentCalls(ctx context.Context, limit int) (*model.RecentCallsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new call log service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// RecordCall stores a call event and bumps the running counter.
func (s *service) RecordCall(ctx context.Context, req *model.RecordCallRequest) (*model.RecordCallResponse, error) {
	s.logger.Debugw("RecordCall called", "legislator", req.LegislatorName, "bill", req.BillName)

	if req.LegislatorName == "" {
		return nil, model.ErrMissingLegislator
	}

	outcome := req.Outcome
	if outcome == "" {
		outcome = model.OutcomeCompleted
	}
	if !model.ValidOutcome(outcome) {
		s.logger.Debugw("RecordCall validation failed", "outcome", outcome)
		return nil, model.ErrInvalidOutcome
	}

	event := &model.CallEvent{
		LegislatorName: req.LegislatorName,
		BillName:       req.BillName,
		Issue:          req.Issue,
		Outcome:        outcome,
	}
	if err := s.repo.InsertEvent(ctx, event); err != nil {
		s.logger.Errorw("RecordCall insert failed", "error", err)
		return nil, err
	}

	total, err := s.repo.IncrementCounter(ctx)
	if err != nil {
		s.logger.Errorw("RecordCall counter increment failed", "error", err)
		return nil, err
	}

	s.logger.Infow("RecordCall completed", "legislator", req.LegislatorName, "total_calls", total)
	return &model.RecordCallResponse{Event: *event, TotalCalls: total}, nil
}

// GetCallCount returns the running call counter.
func (s *service) GetCallCount(ctx context.Context) (*model.CallCountResponse, error) {
	s.logger.Debugw("GetCallCount called")

	total, err := s.repo.GetCounter(ctx)
	if err != nil {
		s.logger.Errorw("GetCallCount failed", "error", err)
		return nil, err
	}

	return &model.CallCountResponse{TotalCalls: total}, nil
}

// GetRecentCalls returns the newest call events.
func (s *service) GetRecentCalls(ctx context.Context, limit int) (*model.RecentCallsResponse, error) {
	s.logger.Debugw("GetRecentCalls called", "limit", limit)

	if limit <= 0 || limit > 100 {
		limit = defaultRecentLimit
	}

	events, err := s.repo.ListRecentEvents(ctx, limit)
	if err != nil {
		s.logger.Errorw("GetRecentCalls failed", "error", err)
		return nil, err
	}

	s.logger.Infow("GetRecentCalls completed", "count", len(events))
	return &model.RecentCallsResponse{Events: events, Total: len(events)}, nil
}
