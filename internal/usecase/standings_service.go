package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-league-api/internal/domain/standings"
	"github.com/riskibarqy/fpl-league-api/internal/platform/cache"
	"github.com/riskibarqy/fpl-league-api/internal/platform/logging"
)

const DefaultMaxStandingsPages = 200

type StandingsService struct {
	source   StandingsSource
	cache    *cache.Store
	maxPages int
	logger   *logging.Logger
}

// NewStandingsService wires the aggregator. A nil store disables response
// caching for GetLeague.
func NewStandingsService(source StandingsSource, store *cache.Store, maxPages int, logger *logging.Logger) *StandingsService {
	if maxPages < 1 {
		maxPages = DefaultMaxStandingsPages
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		source:   source,
		cache:    store,
		maxPages: maxPages,
		logger:   logger,
	}
}

// FetchAllStandings walks every standings page of a classic league. The first
// page supplies league metadata; later pages contribute rows only.
func (s *StandingsService) FetchAllStandings(ctx context.Context, leagueID int64) (standings.Combined, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.FetchAllStandings")
	defer span.End()

	var combined standings.Combined
	for page := 1; ; page++ {
		if page > s.maxPages {
			s.logger.WarnContext(ctx, "standings pagination cap reached", "league_id", leagueID, "max_pages", s.maxPages)
			return standings.Combined{}, fmt.Errorf("%w: league_id=%d max_pages=%d", ErrPaginationLimitExceeded, leagueID, s.maxPages)
		}

		current, err := s.source.FetchStandingsPage(ctx, leagueID, page)
		if err != nil {
			return standings.Combined{}, err
		}
		if page == 1 {
			combined = standings.NewCombined(current)
		} else {
			combined.Append(current)
		}
		if !current.Standings.HasNext {
			break
		}
	}

	return combined, nil
}

func (s *StandingsService) GetLeague(ctx context.Context, leagueID int64) (standings.Combined, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetLeague")
	defer span.End()

	if leagueID <= 0 {
		return standings.Combined{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	if s.cache == nil {
		return s.FetchAllStandings(ctx, leagueID)
	}

	value, err := s.cache.GetOrLoad(ctx, cache.Key{Kind: cache.KindStandings, ID: leagueID}, func(ctx context.Context) (any, error) {
		return s.FetchAllStandings(ctx, leagueID)
	})
	if err != nil {
		return standings.Combined{}, err
	}
	combined, ok := value.(standings.Combined)
	if !ok {
		return standings.Combined{}, fmt.Errorf("unexpected cached standings type %T", value)
	}
	return combined, nil
}
