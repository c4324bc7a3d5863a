package usecase

import (
	"context"
	"encoding/json"

	"github.com/riskibarqy/fpl-league-api/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-league-api/internal/domain/standings"
)

// GameweekSource serves the three feeds the completion check reads.
type GameweekSource interface {
	FetchEventStatus(ctx context.Context) ([]gameweek.Status, error)
	FetchFixtures(ctx context.Context) ([]gameweek.Fixture, error)
	FetchBootstrap(ctx context.Context) ([]gameweek.Event, error)
}

type StandingsSource interface {
	FetchStandingsPage(ctx context.Context, leagueID int64, page int) (standings.Page, error)
}

type EntrySource interface {
	FetchEntryPicks(ctx context.Context, entryID int64, gameweek int) (json.RawMessage, error)
}
