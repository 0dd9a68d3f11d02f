package service

import (
	"context"
	"testing"
	"time"

	"github.com/RogueFF/shiftboard/internal/contract"
	"github.com/RogueFF/shiftboard/internal/repository"
	"github.com/RogueFF/shiftboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreboardFixture struct {
	svc     ScoreboardService
	entries *repository.SQLiteEntryRepo
	config  *repository.SQLiteConfigRepo
}

func newScoreboardFixture(t *testing.T) *scoreboardFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	entries := repository.NewSQLiteEntryRepo(database)
	config := repository.NewSQLiteConfigRepo(database)
	return &scoreboardFixture{
		svc:     NewScoreboardService(entries, config),
		entries: entries,
		config:  config,
	}
}

func fixedNow() *time.Time {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	return &now
}

func TestGetScoreboard_EmptyDay(t *testing.T) {
	f := newScoreboardFixture(t)

	req := contract.NewScoreboardRequest()
	req.Now = fixedNow()
	resp, err := f.svc.GetScoreboard(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-28", resp.Date)
	assert.Equal(t, -1, resp.LastCompletedHourIndex)
	assert.Equal(t, -1, resp.CurrentHourIndex)
	assert.Empty(t, resp.Rows)
	assert.Zero(t, resp.TodayLbs)
}

func TestGetScoreboard_MidShift(t *testing.T) {
	f := newScoreboardFixture(t)
	ctx := context.Background()

	// Yesterday ran at exactly 5 lbs per effective trimmer-hour, and so does
	// today's completed hour, so the trailing-window rate lands on 5.
	for _, e := range []struct {
		date, slot     string
		tops, trimmers float64
	}{
		{"2026-08-27", "7:00 AM – 8:00 AM", 20, 4},
		{"2026-08-27", "8:00 AM – 9:00 AM", 20, 4},
		{"2026-08-28", "7:00 AM – 8:00 AM", 20, 4},
		{"2026-08-28", "8:00 AM – 9:00 AM", 0, 4},
	} {
		require.NoError(t, f.entries.Upsert(ctx, testutil.Entry(e.date, e.slot, e.tops, e.trimmers)))
	}

	req := contract.NewScoreboardRequest()
	req.Now = fixedNow()
	resp, err := f.svc.GetScoreboard(ctx, req)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, resp.TargetRate, 1e-9)
	assert.Equal(t, 0, resp.LastCompletedHourIndex)
	assert.Equal(t, 1, resp.CurrentHourIndex)

	assert.InDelta(t, 20.0, resp.TodayLbs, 1e-9)
	assert.Equal(t, 1, resp.HoursLogged)
	assert.InDelta(t, 1.0, resp.EffectiveHours, 1e-9, "one full-weight hour logged")
	assert.InDelta(t, 20.0, resp.TodayTarget, 1e-9)
	assert.InDelta(t, 100.0, resp.TodayPercentage, 1e-9)

	require.NotNil(t, resp.LastHour)
	assert.Equal(t, "7:00 AM – 8:00 AM", resp.LastHour.TimeSlot)
	assert.InDelta(t, 20.0, resp.LastHour.Target, 1e-9)
	require.NotNil(t, resp.CurrentHour)
	assert.Equal(t, "8:00 AM – 9:00 AM", resp.CurrentHour.TimeSlot)

	require.Len(t, resp.HourlyRates, 1)
	assert.InDelta(t, 5.0, resp.HourlyRates[0].Rate, 1e-9)

	assert.Equal(t, 1, resp.Streak)

	// Ten standard slots, four trimmers at rate 5, multipliers summing to 8.49.
	assert.InDelta(t, 169.8, resp.DailyGoal, 1e-6)
	assert.InDelta(t, 169.8, resp.ProjectedTotal, 1e-6)
}

func TestGetScoreboard_CultivarRateWins(t *testing.T) {
	f := newScoreboardFixture(t)
	ctx := context.Background()

	lifter := testutil.Entry("2026-08-27", "7:00 AM – 8:00 AM", 20, 4)
	require.NoError(t, f.entries.Upsert(ctx, lifter))

	candy := testutil.Entry("2026-08-27", "8:00 AM – 9:00 AM", 24, 4)
	candy.Cultivar = "Sour Space Candy"
	require.NoError(t, f.entries.Upsert(ctx, candy))

	// Current hour is staffed for Sour Space Candy, so its 6 lbs/hr history
	// sets the target instead of the blended average.
	current := testutil.Entry("2026-08-28", "7:00 AM – 8:00 AM", 0, 4)
	current.Cultivar = "Sour Space Candy"
	require.NoError(t, f.entries.Upsert(ctx, current))

	req := contract.NewScoreboardRequest()
	req.Now = fixedNow()
	resp, err := f.svc.GetScoreboard(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "Sour Space Candy", resp.Cultivar)
	assert.InDelta(t, 6.0, resp.TargetRate, 1e-9)
}

func TestGetScoreboard_DedupesSharedEndHour(t *testing.T) {
	f := newScoreboardFixture(t)
	ctx := context.Background()

	// A partial re-entry alongside the full hour: same end time, fewer tops.
	require.NoError(t, f.entries.Upsert(ctx, testutil.Entry("2026-08-28", "7:44 AM – 8:00 AM", 4, 4)))
	require.NoError(t, f.entries.Upsert(ctx, testutil.Entry("2026-08-28", "7:00 AM – 8:00 AM", 20, 4)))

	req := contract.NewScoreboardRequest()
	req.Now = fixedNow()
	resp, err := f.svc.GetScoreboard(ctx, req)
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "7:00 AM – 8:00 AM", resp.Rows[0].TimeSlot)
	assert.InDelta(t, 20.0, resp.Rows[0].Tops, 1e-9)
}

func TestGetScoreboard_ConfigMultiplierOverride(t *testing.T) {
	f := newScoreboardFixture(t)
	ctx := context.Background()

	require.NoError(t, f.config.Set(ctx,
		"schedule.time_slot_multipliers", `{"7:00 AM – 8:00 AM": 0.5}`, "json", "test"))
	require.NoError(t, f.entries.Upsert(ctx, testutil.Entry("2026-08-28", "7:00 AM – 8:00 AM", 10, 4)))

	req := contract.NewScoreboardRequest()
	req.Now = fixedNow()
	resp, err := f.svc.GetScoreboard(ctx, req)
	require.NoError(t, err)

	// Half-weight hour: counts as half an effective hour regardless of crew.
	assert.InDelta(t, 0.5, resp.EffectiveHours, 1e-9)
	require.Len(t, resp.Rows, 1)
	assert.InDelta(t, 0.5, resp.Rows[0].Multiplier, 1e-9)
}

func TestGetScoreboard_ReportsDataVersion(t *testing.T) {
	f := newScoreboardFixture(t)
	ctx := context.Background()

	require.NoError(t, f.config.BumpDataVersion(ctx))
	require.NoError(t, f.config.BumpDataVersion(ctx))

	req := contract.NewScoreboardRequest()
	req.Now = fixedNow()
	resp, err := f.svc.GetScoreboard(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.DataVersion)
}
