package sqlstore

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fpl-league-api/internal/domain/snapshot"
	qb "github.com/riskibarqy/fpl-league-api/internal/platform/querybuilder"
	"github.com/riskibarqy/fpl-league-api/internal/usecase"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// InsertIfAbsent relies on the (league_id, gw) unique constraint, so racing
// writers resolve inside the database and the first payload wins.
func (r *SnapshotRepository) InsertIfAbsent(ctx context.Context, item snapshot.Snapshot) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	query, args, err := qb.InsertModel(snapshotTable, snapshotInsertModel{
		LeagueID: item.LeagueID,
		Gameweek: item.Gameweek,
		TakenAt:  formatTimestamp(item.TakenAt),
		Data:     string(item.Data),
	}, "ON CONFLICT (league_id, gw) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert snapshot query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return storageError(err, "insert snapshot league_id=%d gw=%d", item.LeagueID, item.Gameweek)
	}
	return nil
}

func (r *SnapshotRepository) ListGameweeks(ctx context.Context, leagueID int64) ([]snapshot.Summary, error) {
	query, args, err := qb.Select("gw", "taken_at").
		From(snapshotTable).
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("gw ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list snapshots query: %w", err)
	}

	var rows []snapshotSummaryModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, storageError(err, "list snapshots league_id=%d", leagueID)
	}

	out := make([]snapshot.Summary, 0, len(rows))
	for _, row := range rows {
		takenAt, err := parseTimestamp(row.TakenAt)
		if err != nil {
			return nil, storageError(err, "decode snapshot league_id=%d gw=%d", leagueID, row.Gameweek)
		}
		out = append(out, snapshot.Summary{Gameweek: row.Gameweek, TakenAt: takenAt})
	}
	return out, nil
}

func (r *SnapshotRepository) GetByGameweek(ctx context.Context, leagueID int64, gw int) (snapshot.Snapshot, bool, error) {
	query, args, err := qb.Select("id", "league_id", "gw", "taken_at", "data").
		From(snapshotTable).
		Where(qb.Eq("league_id", leagueID), qb.Eq("gw", gw)).
		Limit(1).
		ToSQL()
	if err != nil {
		return snapshot.Snapshot{}, false, fmt.Errorf("build get snapshot query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if isNotFound(err) {
			return snapshot.Snapshot{}, false, nil
		}
		return snapshot.Snapshot{}, false, storageError(err, "get snapshot league_id=%d gw=%d", leagueID, gw)
	}

	takenAt, err := parseTimestamp(row.TakenAt)
	if err != nil {
		return snapshot.Snapshot{}, false, storageError(err, "decode snapshot league_id=%d gw=%d", leagueID, gw)
	}
	return snapshot.Snapshot{
		LeagueID: row.LeagueID,
		Gameweek: row.Gameweek,
		TakenAt:  takenAt,
		Data:     []byte(row.Data),
	}, true, nil
}

func storageError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", usecase.ErrStorage, crerr.Wrapf(err, format, args...))
}
