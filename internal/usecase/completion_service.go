package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-league-api/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-league-api/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// CompletionService decides whether the current gameweek is truly over:
// bonus points applied, every fixture finished, and the event flagged finished.
type CompletionService struct {
	source GameweekSource
	logger *logging.Logger
}

func NewCompletionService(source GameweekSource, logger *logging.Logger) *CompletionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CompletionService{
		source: source,
		logger: logger,
	}
}

func (s *CompletionService) IsGameweekFullyFinished(ctx context.Context, leagueID int64) (gameweek.Completion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompletionService.IsGameweekFullyFinished")
	defer span.End()

	statuses, err := s.source.FetchEventStatus(ctx)
	if err != nil {
		return gameweek.Completion{}, fmt.Errorf("determine current gameweek: %w", err)
	}
	current, ok := gameweek.CurrentFromEventStatus(statuses)
	if !ok {
		return gameweek.Completion{}, fmt.Errorf("%w: event status feed has no current event", ErrGameweekUndetermined)
	}

	var (
		fixtures []gameweek.Fixture
		events   []gameweek.Event
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.source.FetchFixtures(ctx)
		if err != nil {
			return fmt.Errorf("fetch fixtures gw=%d: %w", current.Gameweek, err)
		}
		fixtures = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.source.FetchBootstrap(ctx)
		if err != nil {
			return fmt.Errorf("fetch gameweek metadata gw=%d: %w", current.Gameweek, err)
		}
		events = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return gameweek.Completion{}, err
	}

	completion := gameweek.Evaluate(current, fixtures, events)
	span.SetAttributes(
		attribute.Int64("league_id", leagueID),
		attribute.Int("gameweek", completion.Gameweek),
		attribute.Bool("finished", completion.Finished),
	)
	s.logger.DebugContext(ctx, "gameweek completion evaluated",
		"league_id", leagueID,
		"gw", completion.Gameweek,
		"bonus_added", completion.BonusAdded,
		"fixtures_all_finished", completion.FixturesAllFinished,
		"gw_finished_flag", completion.GameweekFinishedFlag,
	)
	return completion, nil
}
