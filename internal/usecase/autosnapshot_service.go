package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-league-api/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-league-api/internal/domain/snapshot"
	"github.com/riskibarqy/fpl-league-api/internal/domain/standings"
	"github.com/riskibarqy/fpl-league-api/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultAutosnapshotTimeout = 25 * time.Second

	notReadyReason = "GW not fully over yet"
)

type OutcomeKind string

const (
	OutcomeSnapshotted   OutcomeKind = "snapshotted"
	OutcomeNotReady      OutcomeKind = "not_ready"
	OutcomeUnavailable   OutcomeKind = "unavailable"
	OutcomeTimedOut      OutcomeKind = "timed_out"
	OutcomeUpstreamError OutcomeKind = "upstream_error"
	OutcomeFailed        OutcomeKind = "failed"
)

// Outcome is the result of one autosnapshot attempt. Completion is set for
// NotReady and Snapshotted; StatusCode only for UpstreamError.
type Outcome struct {
	Kind       OutcomeKind
	Gameweek   int
	Completion gameweek.Completion
	Reason     string
	StatusCode int
	Message    string
}

// AutosnapshotService freezes the final standings of a league once the
// current gameweek is over. Every trigger is one synchronous attempt bound
// by a single deadline.
type AutosnapshotService struct {
	completion *CompletionService
	standings  *StandingsService
	repo       snapshot.Repository
	timeout    time.Duration
	now        func() time.Time
	logger     *logging.Logger
}

func NewAutosnapshotService(
	completion *CompletionService,
	standingsService *StandingsService,
	repo snapshot.Repository,
	timeout time.Duration,
	logger *logging.Logger,
) *AutosnapshotService {
	if timeout <= 0 {
		timeout = DefaultAutosnapshotTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AutosnapshotService{
		completion: completion,
		standings:  standingsService,
		repo:       repo,
		timeout:    timeout,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *AutosnapshotService) Autosnapshot(ctx context.Context, leagueID int64) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AutosnapshotService.Autosnapshot")
	defer span.End()

	if leagueID <= 0 {
		return Outcome{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	outcome := s.run(ctx, leagueID)
	span.SetAttributes(
		attribute.Int64("league_id", leagueID),
		attribute.String("outcome", string(outcome.Kind)),
		attribute.Int("gameweek", outcome.Gameweek),
	)
	return outcome, nil
}

func (s *AutosnapshotService) run(ctx context.Context, leagueID int64) Outcome {
	completion, err := s.completion.IsGameweekFullyFinished(ctx, leagueID)
	if err != nil {
		return s.failed(ctx, leagueID, "determine completion", err)
	}
	if !completion.Finished {
		s.logger.InfoContext(ctx, "autosnapshot skipped, gameweek not over",
			"league_id", leagueID,
			"gw", completion.Gameweek,
			"bonus_added", completion.BonusAdded,
			"fixtures_all_finished", completion.FixturesAllFinished,
			"gw_finished_flag", completion.GameweekFinishedFlag,
		)
		return Outcome{
			Kind:       OutcomeNotReady,
			Gameweek:   completion.Gameweek,
			Completion: completion,
			Reason:     notReadyReason,
		}
	}

	combined, err := s.standings.FetchAllStandings(ctx, leagueID)
	if err != nil {
		return s.failed(ctx, leagueID, "aggregate standings", err)
	}
	data, err := encodeSnapshotData(combined)
	if err != nil {
		return s.failed(ctx, leagueID, "encode snapshot", err)
	}
	if err := ctx.Err(); err != nil {
		return s.failed(ctx, leagueID, "persist snapshot", err)
	}

	item := snapshot.Snapshot{
		LeagueID: leagueID,
		Gameweek: completion.Gameweek,
		TakenAt:  s.now().UTC(),
		Data:     data,
	}
	if err := s.repo.InsertIfAbsent(ctx, item); err != nil {
		return s.failed(ctx, leagueID, "persist snapshot", err)
	}

	s.logger.InfoContext(ctx, "autosnapshot stored",
		"league_id", leagueID,
		"gw", completion.Gameweek,
		"entries", combined.EntryCount(),
	)
	return Outcome{
		Kind:       OutcomeSnapshotted,
		Gameweek:   completion.Gameweek,
		Completion: completion,
	}
}

// failed maps an error from any stage onto the outcome the caller reports.
func (s *AutosnapshotService) failed(ctx context.Context, leagueID int64, stage string, err error) Outcome {
	out := Outcome{Message: err.Error()}

	var upstream *UpstreamError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		out.Kind = OutcomeTimedOut
		out.Message = fmt.Sprintf("autosnapshot timed out during %s", stage)
	case errors.Is(err, ErrGameweekUndetermined), errors.Is(err, ErrDependencyUnavailable):
		out.Kind = OutcomeUnavailable
	case errors.As(err, &upstream):
		out.Kind = OutcomeUpstreamError
		out.StatusCode = upstream.HTTPStatus()
	default:
		out.Kind = OutcomeFailed
	}

	s.logger.WarnContext(ctx, "autosnapshot failed",
		"league_id", leagueID,
		"stage", stage,
		"outcome", string(out.Kind),
		"error", err,
	)
	return out
}

func encodeSnapshotData(combined standings.Combined) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(combined); err != nil {
		return nil, fmt.Errorf("encode standings: %w", err)
	}
	return append([]byte(nil), bytes.TrimSpace(buf.B)...), nil
}
