package service

import (
	"context"
	"testing"
	"time"

	"github.com/RogueFF/shiftboard/internal/repository"
	"github.com/RogueFF/shiftboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyTotals_LaborCost(t *testing.T) {
	database := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(database)
	config := repository.NewSQLiteConfigRepo(database)
	svc := NewHistoryService(entries, config)
	ctx := context.Background()

	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	first := testutil.Entry(date, "7:00 AM – 8:00 AM", 20, 4)
	first.SmallsLbs = 2
	first.Buckers = 1
	require.NoError(t, entries.Upsert(ctx, first))

	second := testutil.Entry(date, "8:00 AM – 9:00 AM", 24, 4)
	second.Buckers = 1
	require.NoError(t, entries.Upsert(ctx, second))

	summaries, err := svc.DailyTotals(ctx, 7)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	day := summaries[0]
	assert.Equal(t, date, day.Date)
	assert.InDelta(t, 44.0, day.Tops, 1e-9)
	assert.InDelta(t, 2.0, day.Smalls, 1e-9)
	assert.InDelta(t, 46.0, day.TotalLbs, 1e-9)
	assert.InDelta(t, 8.0, day.TrimmerHours, 1e-9)
	assert.InDelta(t, 2.0, day.BuckerHours, 1e-9)
	assert.Equal(t, 2, day.HoursLogged)
	assert.InDelta(t, 5.5, day.AvgRate, 1e-9)

	// Ten labor hours at $23.00 plus 14% employer burden.
	assert.InDelta(t, 262.2, day.LaborCost, 1e-6)
	assert.InDelta(t, 262.2/46.0, day.CostPerLb, 1e-6)
}

func TestDailyTotals_WageOverrideFromConfig(t *testing.T) {
	database := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(database)
	config := repository.NewSQLiteConfigRepo(database)
	svc := NewHistoryService(entries, config)
	ctx := context.Background()

	require.NoError(t, config.Set(ctx, "labor.base_wage_rate", "20", "number", "test"))
	require.NoError(t, config.Set(ctx, "labor.employer_tax_rate", "0.10", "number", "test"))

	date := time.Now().Format("2006-01-02")
	require.NoError(t, entries.Upsert(ctx, testutil.Entry(date, "7:00 AM – 8:00 AM", 20, 5)))

	summaries, err := svc.DailyTotals(ctx, 7)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 5*20*1.10, summaries[0].LaborCost, 1e-6)
}

func TestDailyTotals_EmptyHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewHistoryService(repository.NewSQLiteEntryRepo(database), repository.NewSQLiteConfigRepo(database))

	summaries, err := svc.DailyTotals(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
