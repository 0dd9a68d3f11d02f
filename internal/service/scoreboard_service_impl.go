package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/RogueFF/shiftboard/internal/app"
	"github.com/RogueFF/shiftboard/internal/domain"
	"github.com/RogueFF/shiftboard/internal/repository"
	"github.com/RogueFF/shiftboard/internal/scoreboard"
)

const (
	// configKeyMultipliers holds a JSON object of per-slot multiplier
	// overrides laid over the default schedule.
	configKeyMultipliers = "schedule.time_slot_multipliers"

	// rateLookbackDays bounds how far back rate samples are fetched; the
	// request's window then picks the most recent production days within it.
	rateLookbackDays = 30

	defaultRateWindowDays = 2
)

type scoreboardService struct {
	entries repository.EntryRepo
	config  repository.ConfigRepo
}

func NewScoreboardService(entries repository.EntryRepo, config repository.ConfigRepo) ScoreboardService {
	return &scoreboardService{entries: entries, config: config}
}

func (s *scoreboardService) GetScoreboard(ctx context.Context, req app.ScoreboardRequest) (*app.ScoreboardResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	date := req.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	windowDays := req.RateWindowDays
	if windowDays <= 0 {
		windowDays = defaultRateWindowDays
	}

	sched, err := s.loadSchedule(ctx)
	if err != nil {
		return nil, err
	}

	version, err := s.config.DataVersion(ctx)
	if err != nil {
		return nil, err
	}

	resp := &app.ScoreboardResponse{
		Date:                   date,
		LastCompletedHourIndex: -1,
		CurrentHourIndex:       -1,
		DataVersion:            version,
	}

	recorded, err := s.entries.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading day entries: %w", err)
	}
	if len(recorded) == 0 {
		return resp, nil
	}

	rows, _ := scoreboard.BuildOrderedRows(dedupByEndHour(recorded), sched)
	idx := scoreboard.ClassifyHours(rows)
	resp.Rows = rows
	resp.LastCompletedHourIndex = idx.LastCompleted
	resp.CurrentHourIndex = idx.Current

	// Active cultivar: the hour in progress is fresher than the last
	// completed one.
	var currentCultivar, lastCultivar string
	if idx.Current >= 0 {
		currentCultivar = rows[idx.Current].Cultivar
	}
	if idx.LastCompleted >= 0 {
		lastCultivar = rows[idx.LastCompleted].Cultivar
	}
	resp.Cultivar = domain.CoalesceStr(currentCultivar, lastCultivar)

	targetRate, err := s.effectiveTargetRate(ctx, now, windowDays, sched, resp.Cultivar)
	if err != nil {
		return nil, err
	}
	resp.TargetRate = targetRate

	var totalLbs, effectiveHours float64
	var hoursWorked int
	for i := 0; i <= idx.LastCompleted && i < len(rows); i++ {
		row := rows[i]
		if row.Tops > 0 && row.Trimmers > 0 {
			totalLbs += row.Tops
			hoursWorked++
			// Break-adjusted clock hours, independent of crew size: a
			// half-weight hour counts as 0.5 no matter who was on the line.
			effectiveHours += row.Multiplier
		}
	}
	resp.TodayLbs = totalLbs
	resp.HoursLogged = hoursWorked
	resp.EffectiveHours = effectiveHours

	if idx.LastCompleted >= 0 {
		resp.LastHour = hourSummary(rows[idx.LastCompleted], targetRate)
	}
	if idx.Current >= 0 {
		resp.CurrentHour = hourSummary(rows[idx.Current], targetRate)
	}

	var totalTarget, bestPct, bestDelta float64
	var pcts, deltas []float64
	for i := 0; i <= idx.LastCompleted && i < len(rows); i++ {
		row := rows[i]
		if row.Trimmers <= 0 || row.Tops <= 0 {
			continue
		}
		hourTarget := row.Trimmers * targetRate * row.Multiplier
		totalTarget += hourTarget

		pct := 0.0
		if hourTarget > 0 {
			pct = row.Tops / hourTarget * 100
		}
		delta := row.Tops - hourTarget
		pcts = append(pcts, pct)
		deltas = append(deltas, delta)
		if pct > bestPct {
			bestPct = pct
			bestDelta = delta
		}

		rate := 0.0
		if row.Multiplier > 0 {
			rate = (row.Tops / row.Trimmers) / row.Multiplier
		}
		resp.HourlyRates = append(resp.HourlyRates, app.HourlyRate{
			TimeSlot:          row.TimeSlot,
			Rate:              rate,
			Target:            targetRate,
			Trimmers:          row.RawTrimmers,
			EffectiveTrimmers: row.Trimmers,
			Buckers:           row.Buckers,
			Lbs:               row.Tops,
			Smalls:            row.Smalls,
			Multiplier:        row.Multiplier,
			Notes:             row.Notes,
		})
	}
	resp.TodayTarget = totalTarget
	if totalTarget > 0 {
		resp.TodayPercentage = totalLbs / totalTarget * 100
	}
	resp.AvgPercentage = mean(pcts)
	resp.AvgDelta = mean(deltas)
	resp.BestPercentage = bestPct
	resp.BestDelta = bestDelta

	resp.Streak = scoreboard.Streak(rows, idx.LastCompleted, targetRate)

	projection := scoreboard.ProjectDay(rows, idx, targetRate, totalLbs, sched)
	resp.ProjectedTotal = projection.ProjectedTotal
	resp.DailyGoal = projection.DailyGoal

	return resp, nil
}

// loadSchedule lays any configured multiplier overrides over the default
// shift schedule.
func (s *scoreboardService) loadSchedule(ctx context.Context) (scoreboard.Schedule, error) {
	sched := scoreboard.DefaultSchedule()
	overrides, ok, err := s.config.GetFloatMap(ctx, configKeyMultipliers)
	if err != nil {
		return sched, fmt.Errorf("loading multiplier overrides: %w", err)
	}
	if ok {
		sched = sched.WithMultipliers(overrides)
	}
	return sched, nil
}

// effectiveTargetRate derives lbs per effective trimmer-hour from the most
// recent windowDays of productive slots, preferring cultivar-specific samples
// and falling back to the global average, then to 1.0.
func (s *scoreboardService) effectiveTargetRate(ctx context.Context, now time.Time, windowDays int, sched scoreboard.Schedule, cultivar string) (float64, error) {
	cutoff := now.AddDate(0, 0, -rateLookbackDays).Format("2006-01-02")

	if cultivar != "" {
		samples, err := s.entries.RateSamples(ctx, cutoff, cultivar)
		if err != nil {
			return 0, fmt.Errorf("loading cultivar rate samples: %w", err)
		}
		if rate, ok := rateFromSamples(samples, windowDays, sched); ok {
			return rate, nil
		}
	}

	samples, err := s.entries.RateSamples(ctx, cutoff, "")
	if err != nil {
		return 0, fmt.Errorf("loading rate samples: %w", err)
	}
	if rate, ok := rateFromSamples(samples, windowDays, sched); ok {
		return rate, nil
	}
	return 1.0, nil
}

func rateFromSamples(samples []repository.RateSample, windowDays int, sched scoreboard.Schedule) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}

	seen := make(map[string]bool)
	var dates []string
	for _, sample := range samples {
		if !seen[sample.Date] {
			seen[sample.Date] = true
			dates = append(dates, sample.Date)
		}
	}
	sort.Strings(dates)
	if len(dates) > windowDays {
		dates = dates[len(dates)-windowDays:]
	}
	keep := make(map[string]bool, len(dates))
	for _, d := range dates {
		keep[d] = true
	}

	var tops, effectiveHours float64
	for _, sample := range samples {
		if !keep[sample.Date] {
			continue
		}
		tops += sample.Tops
		effectiveHours += sample.Trimmers * sched.MultiplierFor(sample.TimeSlot)
	}
	if effectiveHours <= 0 {
		return 0, false
	}
	return tops / effectiveHours, true
}

// dedupByEndHour collapses recorded entries that share an end hour (a partial
// re-entry like "7:01 AM – 8:00 AM" next to "7:02 AM – 8:00 AM"), keeping the
// one with more tops — the more complete record.
func dedupByEndHour(entries []*domain.ProductionEntry) []domain.ProductionEntry {
	index := make(map[string]int)
	out := make([]domain.ProductionEntry, 0, len(entries))
	for _, e := range entries {
		key := scoreboard.SlotEndText(e.TimeSlot)
		if key == "" {
			key = scoreboard.NormalizeSlot(e.TimeSlot)
		}
		if i, ok := index[key]; ok {
			if e.TopsLbs > out[i].TopsLbs {
				out[i] = *e
			}
			continue
		}
		index[key] = len(out)
		out = append(out, *e)
	}
	return out
}

func hourSummary(row scoreboard.HourRow, targetRate float64) *app.HourSummary {
	return &app.HourSummary{
		TimeSlot:          row.TimeSlot,
		Lbs:               row.Tops,
		Smalls:            row.Smalls,
		Trimmers:          row.RawTrimmers,
		EffectiveTrimmers: row.Trimmers,
		Buckers:           row.Buckers,
		Multiplier:        row.Multiplier,
		Target:            row.Trimmers * targetRate * row.Multiplier,
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
