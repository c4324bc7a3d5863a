package snapshot

import "context"

// Repository persists at most one snapshot per (league, gameweek).
type Repository interface {
	// InsertIfAbsent stores the snapshot unless one already exists for the
	// same league and gameweek, in which case it does nothing.
	InsertIfAbsent(ctx context.Context, item Snapshot) error
	ListGameweeks(ctx context.Context, leagueID int64) ([]Summary, error)
	GetByGameweek(ctx context.Context, leagueID int64, gameweek int) (Snapshot, bool, error)
}
