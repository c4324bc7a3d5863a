package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-league-api/internal/domain/snapshot"
	snapshotmock "github.com/riskibarqy/fpl-league-api/internal/mocks/domain/snapshot"
	basecache "github.com/riskibarqy/fpl-league-api/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestSnapshotRepository_GetByGameweekCachesFoundRows(t *testing.T) {
	t.Parallel()

	item := snapshot.Snapshot{LeagueID: 314, Gameweek: 7, TakenAt: time.Now().UTC(), Data: []byte(`{}`)}
	next := snapshotmock.NewRepository(t)
	next.On("GetByGameweek", mock.Anything, int64(314), 7).Return(item, true, nil).Once()

	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 3; i++ {
		got, ok, err := repo.GetByGameweek(context.Background(), 314, 7)
		if err != nil || !ok || got.Gameweek != 7 {
			t.Fatalf("call %d: got=%+v ok=%v err=%v", i, got, ok, err)
		}
	}
}

func TestSnapshotRepository_MissesAreNotCached(t *testing.T) {
	t.Parallel()

	next := snapshotmock.NewRepository(t)
	next.On("GetByGameweek", mock.Anything, int64(314), 9).Return(snapshot.Snapshot{}, false, nil).Twice()

	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute))
	for i := 0; i < 2; i++ {
		if _, ok, err := repo.GetByGameweek(context.Background(), 314, 9); err != nil || ok {
			t.Fatalf("call %d: ok=%v err=%v", i, ok, err)
		}
	}
}

func TestSnapshotRepository_InsertInvalidatesHistory(t *testing.T) {
	t.Parallel()

	takenAt := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	item := snapshot.Snapshot{LeagueID: 314, Gameweek: 2, TakenAt: takenAt, Data: []byte(`{}`)}

	next := snapshotmock.NewRepository(t)
	next.On("ListGameweeks", mock.Anything, int64(314)).Return([]snapshot.Summary{{Gameweek: 1, TakenAt: takenAt}}, nil).Once()
	next.On("InsertIfAbsent", mock.Anything, item).Return(nil).Once()
	next.On("ListGameweeks", mock.Anything, int64(314)).
		Return([]snapshot.Summary{{Gameweek: 1, TakenAt: takenAt}, {Gameweek: 2, TakenAt: takenAt}}, nil).
		Once()

	repo := NewSnapshotRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, err := repo.ListGameweeks(ctx, 314)
	if err != nil || len(first) != 1 {
		t.Fatalf("first list: %+v err=%v", first, err)
	}
	if cached, _ := repo.ListGameweeks(ctx, 314); len(cached) != 1 {
		t.Fatalf("expected cached list, got %+v", cached)
	}
	if err := repo.InsertIfAbsent(ctx, item); err != nil {
		t.Fatalf("insert: %v", err)
	}
	after, err := repo.ListGameweeks(ctx, 314)
	if err != nil || len(after) != 2 {
		t.Fatalf("list after insert: %+v err=%v", after, err)
	}
}
