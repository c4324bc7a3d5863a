package cache

import (
	"context"

	"github.com/riskibarqy/fpl-league-api/internal/domain/snapshot"
	basecache "github.com/riskibarqy/fpl-league-api/internal/platform/cache"
)

// SnapshotRepository is a read-through cache over a snapshot.Repository.
// Stored snapshots never change, so found rows are cached until evicted by
// TTL; misses are not cached.
type SnapshotRepository struct {
	next  snapshot.Repository
	cache *basecache.Store
}

func NewSnapshotRepository(next snapshot.Repository, cache *basecache.Store) *SnapshotRepository {
	return &SnapshotRepository{next: next, cache: cache}
}

func (r *SnapshotRepository) InsertIfAbsent(ctx context.Context, item snapshot.Snapshot) error {
	if err := r.next.InsertIfAbsent(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, basecache.Key{Kind: basecache.KindHistory, ID: item.LeagueID})
	return nil
}

func (r *SnapshotRepository) ListGameweeks(ctx context.Context, leagueID int64) ([]snapshot.Summary, error) {
	key := basecache.Key{Kind: basecache.KindHistory, ID: leagueID}
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListGameweeks(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]snapshot.Summary(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]snapshot.Summary)
	return append([]snapshot.Summary(nil), items...), nil
}

func (r *SnapshotRepository) GetByGameweek(ctx context.Context, leagueID int64, gw int) (snapshot.Snapshot, bool, error) {
	key := basecache.Key{Kind: basecache.KindSnapshot, ID: leagueID, Sub: gw}
	if v, ok := r.cache.Get(ctx, key); ok {
		if item, ok := v.(snapshot.Snapshot); ok {
			return item, true, nil
		}
	}

	item, exists, err := r.next.GetByGameweek(ctx, leagueID, gw)
	if err != nil || !exists {
		return item, exists, err
	}
	r.cache.Set(ctx, key, item)
	return item, true, nil
}
