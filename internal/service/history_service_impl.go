package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RogueFF/shiftboard/internal/app"
	"github.com/RogueFF/shiftboard/internal/repository"
)

const (
	configKeyBaseWageRate    = "labor.base_wage_rate"
	configKeyEmployerTaxRate = "labor.employer_tax_rate"

	defaultBaseWageRate    = 23.00
	defaultEmployerTaxRate = 0.14
)

type historyService struct {
	entries repository.EntryRepo
	config  repository.ConfigRepo
}

func NewHistoryService(entries repository.EntryRepo, config repository.ConfigRepo) HistoryService {
	return &historyService{entries: entries, config: config}
}

func (s *historyService) DailyTotals(ctx context.Context, days int) ([]app.DaySummary, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	totals, err := s.entries.DailyTotals(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	costPerHour, err := s.laborCostPerHour(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]app.DaySummary, 0, len(totals))
	for _, d := range totals {
		summary := app.DaySummary{
			Date:         d.Date,
			Tops:         d.Tops,
			Smalls:       d.Smalls,
			TotalLbs:     d.Tops + d.Smalls,
			TrimmerHours: d.TrimmerHours,
			BuckerHours:  d.BuckerHours,
			HoursLogged:  d.HoursLogged,
			LaborCost:    (d.TrimmerHours + d.BuckerHours) * costPerHour,
		}
		if d.TrimmerHours > 0 {
			summary.AvgRate = d.Tops / d.TrimmerHours
		}
		if summary.TotalLbs > 0 {
			summary.CostPerLb = summary.LaborCost / summary.TotalLbs
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// laborCostPerHour is wage times employer burden, both overridable in
// system_config.
func (s *historyService) laborCostPerHour(ctx context.Context) (float64, error) {
	wage := defaultBaseWageRate
	if v, ok, err := s.config.GetFloat(ctx, configKeyBaseWageRate); err != nil {
		return 0, fmt.Errorf("loading wage rate: %w", err)
	} else if ok {
		wage = v
	}

	tax := defaultEmployerTaxRate
	if v, ok, err := s.config.GetFloat(ctx, configKeyEmployerTaxRate); err != nil {
		return 0, fmt.Errorf("loading employer tax rate: %w", err)
	} else if ok {
		tax = v
	}

	return wage * (1 + tax), nil
}
