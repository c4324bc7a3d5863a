package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-league-api/internal/domain/snapshot"
)

type HistoryService struct {
	repo snapshot.Repository
}

func NewHistoryService(repo snapshot.Repository) *HistoryService {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) ListSnapshots(ctx context.Context, leagueID int64) ([]snapshot.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListSnapshots")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}

	items, err := s.repo.ListGameweeks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list snapshots league_id=%d: %w", leagueID, err)
	}
	return items, nil
}

func (s *HistoryService) GetSnapshot(ctx context.Context, leagueID int64, gw int) (snapshot.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.GetSnapshot")
	defer span.End()

	if leagueID <= 0 || gw <= 0 {
		return snapshot.Snapshot{}, fmt.Errorf("%w: league id and gameweek must be positive", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByGameweek(ctx, leagueID, gw)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("get snapshot league_id=%d gw=%d: %w", leagueID, gw, err)
	}
	if !exists {
		return snapshot.Snapshot{}, fmt.Errorf("%w: snapshot league_id=%d gw=%d", ErrNotFound, leagueID, gw)
	}
	return item, nil
}
