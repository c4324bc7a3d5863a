package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/riskibarqy/fpl-league-api/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-league-api/internal/platform/cache"
)

// CurrentTeam is an entry's picks for the gameweek bootstrap-static marks as
// current.
type CurrentTeam struct {
	EntryID  int64
	Gameweek int
	Picks    json.RawMessage
}

type TeamService struct {
	gameweeks GameweekSource
	entries   EntrySource
	cache     *cache.Store
}

func NewTeamService(gameweeks GameweekSource, entries EntrySource, store *cache.Store) *TeamService {
	return &TeamService{
		gameweeks: gameweeks,
		entries:   entries,
		cache:     store,
	}
}

func (s *TeamService) GetCurrentTeam(ctx context.Context, entryID int64) (CurrentTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetCurrentTeam")
	defer span.End()

	if entryID <= 0 {
		return CurrentTeam{}, fmt.Errorf("%w: entry id must be positive", ErrInvalidInput)
	}
	if s.cache == nil {
		return s.loadCurrentTeam(ctx, entryID)
	}

	value, err := s.cache.GetOrLoad(ctx, cache.Key{Kind: cache.KindTeam, ID: entryID}, func(ctx context.Context) (any, error) {
		return s.loadCurrentTeam(ctx, entryID)
	})
	if err != nil {
		return CurrentTeam{}, err
	}
	team, ok := value.(CurrentTeam)
	if !ok {
		return CurrentTeam{}, fmt.Errorf("unexpected cached team type %T", value)
	}
	return team, nil
}

func (s *TeamService) loadCurrentTeam(ctx context.Context, entryID int64) (CurrentTeam, error) {
	events, err := s.gameweeks.FetchBootstrap(ctx)
	if err != nil {
		return CurrentTeam{}, fmt.Errorf("determine current gameweek: %w", err)
	}
	gw, ok := gameweek.CurrentFromBootstrap(events)
	if !ok {
		return CurrentTeam{}, fmt.Errorf("%w: no current or finished event in bootstrap", ErrGameweekUndetermined)
	}

	picks, err := s.entries.FetchEntryPicks(ctx, entryID, gw)
	if err != nil {
		return CurrentTeam{}, err
	}
	return CurrentTeam{EntryID: entryID, Gameweek: gw, Picks: picks}, nil
}
