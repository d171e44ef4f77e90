// Package repository provides data access layer for the call log module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/civicpulse/civicpulse/internal/calllog/model"
)

// Repository defines the interface for call log data access operations.
type Repository interface {
	// InsertEvent stores one call event.
	InsertEvent(ctx context.Context, event *model.CallEvent) error

	// IncrementCounter atomically bumps the running call counter and
	// returns the new total.
	IncrementCounter(ctx context.Context) (int64, error)

	// GetCounter returns the running call counter.
	GetCounter(ctx context.Context) (int64, error)

	// ListRecentEvents returns the newest call events, at most limit.
	ListRecentEvents(ctx context.Context, limit int) ([]model.CallEvent, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new call log repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// InsertEvent stores one call event.
func (r *repository) InsertEvent(ctx context.Context, event *model.CallEvent) error {
	r.logger.Debugw("InsertEvent called", "legislator", event.LegislatorName, "bill", event.BillName)

	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		r.logger.Errorw("InsertEvent database error", "error", err)
		return err
	}
	return nil
}

// IncrementCounter atomically bumps the running call counter. The counter
// row is created on first use.
func (r *repository) IncrementCounter(ctx context.Context) (int64, error) {
	r.logger.Debugw("IncrementCounter called")

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("call_counter.count + 1")}),
		}).
		Create(&model.CallCounter{ID: 1, Count: 1}).Error
	if err != nil {
		r.logger.Errorw("IncrementCounter database error", "error", err)
		return 0, err
	}

	return r.GetCounter(ctx)
}

// GetCounter returns the running call counter; zero when no call was ever
// recorded.
func (r *repository) GetCounter(ctx context.Context) (int64, error) {
	r.logger.Debugw("GetCounter called")

	var counter model.CallCounter
	err := r.db.WithContext(ctx).
		Where("id = ?", 1).
		First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		r.logger.Errorw("GetCounter database error", "error", err)
		return 0, err
	}
	return counter.Count, nil
}

// ListRecentEvents returns the newest call events, at most limit.
func (r *repository) ListRecentEvents(ctx context.Context, limit int) ([]model.CallEvent, error) {
	r.logger.Debugw("ListRecentEvents called", "limit", limit)

	var events []model.CallEvent
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		r.logger.Errorw("ListRecentEvents database error", "error", err)
		return nil, err
	}

	if events == nil {
		events = []model.CallEvent{}
	}
	return events, nil
}
