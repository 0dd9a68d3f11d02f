package service

import (
	"context"

	"github.com/RogueFF/shiftboard/internal/contract"
	"github.com/RogueFF/shiftboard/internal/domain"
)

type ScoreboardService interface {
	GetScoreboard(ctx context.Context, req contract.ScoreboardRequest) (*contract.ScoreboardResponse, error)
}

type EntryService interface {
	// Log validates and upserts one hourly entry, then bumps the scoreboard
	// data version so watchers refresh.
	Log(ctx context.Context, e *domain.ProductionEntry) error
	ListByDate(ctx context.Context, date string) ([]*domain.ProductionEntry, error)
	Remove(ctx context.Context, date, slot string) error
}

type HistoryService interface {
	DailyTotals(ctx context.Context, days int) ([]contract.DaySummary, error)
}
