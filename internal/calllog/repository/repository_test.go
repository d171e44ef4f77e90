package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/civicpulse/civicpulse/internal/calllog/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	// SQLite-compatible subset of the production migration.
	err = db.Exec(`
		CREATE TABLE call_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			legislator_name VARCHAR(255) NOT NULL,
			bill_name VARCHAR(64),
			issue VARCHAR(255),
			outcome VARCHAR(32) NOT NULL DEFAULT 'completed',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`CREATE INDEX idx_call_events_bill ON call_events(bill_name)`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE call_counter (
			id INTEGER PRIMARY KEY,
			count BIGINT NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func newTestRepository(t *testing.T) Repository {
	return New(setupTestDB(t), zap.NewNop().Sugar())
}

func TestInsertEvent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	event := &model.CallEvent{
		LegislatorName: "Jane Smith",
		BillName:       "SB0001",
		Issue:          "education funding",
		Outcome:        model.OutcomeCompleted,
	}

	err := repo.InsertEvent(ctx, event)
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestIncrementCounter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("creates the row on first use", func(t *testing.T) {
		total, err := repo.IncrementCounter(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("increments on subsequent calls", func(t *testing.T) {
		total, err := repo.IncrementCounter(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		total, err = repo.IncrementCounter(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}

func TestGetCounter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("zero before any call", func(t *testing.T) {
		total, err := repo.GetCounter(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("reflects increments", func(t *testing.T) {
		_, err := repo.IncrementCounter(ctx)
		require.NoError(t, err)

		total, err := repo.GetCounter(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func TestListRecentEvents(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("empty list before any call", func(t *testing.T) {
		events, err := repo.ListRecentEvents(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("newest first, bounded by limit", func(t *testing.T) {
		for _, name := range []string{"Alice", "Bob", "Charlie"} {
			err := repo.InsertEvent(ctx, &model.CallEvent{
				LegislatorName: name,
				Outcome:        model.OutcomeCompleted,
			})
			require.NoError(t, err)
		}

		events, err := repo.ListRecentEvents(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Charlie", events[0].LegislatorName)
		assert.Equal(t, "Bob", events[1].LegislatorName)
	})
}
