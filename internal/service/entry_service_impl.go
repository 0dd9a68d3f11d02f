package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RogueFF/shiftboard/internal/domain"
	"github.com/RogueFF/shiftboard/internal/repository"
	"github.com/RogueFF/shiftboard/internal/scoreboard"
	"github.com/google/uuid"
)

type entryService struct {
	entries repository.EntryRepo
	config  repository.ConfigRepo
}

func NewEntryService(entries repository.EntryRepo, config repository.ConfigRepo) EntryService {
	return &entryService{entries: entries, config: config}
}

func (s *entryService) Log(ctx context.Context, e *domain.ProductionEntry) error {
	if err := validateEntry(e); err != nil {
		return err
	}

	now := time.Now().UTC()
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	if err := s.entries.Upsert(ctx, e); err != nil {
		return err
	}
	return s.config.BumpDataVersion(ctx)
}

func (s *entryService) ListByDate(ctx context.Context, date string) ([]*domain.ProductionEntry, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return s.entries.ListByDate(ctx, date)
}

func (s *entryService) Remove(ctx context.Context, date, slot string) error {
	if err := s.entries.Delete(ctx, date, slot); err != nil {
		return err
	}
	return s.config.BumpDataVersion(ctx)
}

func validateEntry(e *domain.ProductionEntry) error {
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	if scoreboard.NormalizeSlot(e.TimeSlot) == "" {
		return fmt.Errorf("time slot is required")
	}
	if e.TopsLbs < 0 || e.SmallsLbs < 0 {
		return fmt.Errorf("weights cannot be negative")
	}
	if e.Trimmers < 0 || e.Buckers < 0 {
		return fmt.Errorf("headcounts cannot be negative")
	}
	if e.EffectiveTrimmers != nil && *e.EffectiveTrimmers < 0 {
		return fmt.Errorf("effective trimmer count cannot be negative")
	}
	return nil
}
