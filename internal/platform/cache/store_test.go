package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), Key{Kind: KindStandings, ID: 7}, loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_EntryExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 10, 3, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	key := Key{Kind: KindStandings, ID: 314}
	store.Set(context.Background(), key, "page")

	now = now.Add(59 * time.Second)
	if _, ok := store.Get(context.Background(), key); !ok {
		t.Fatalf("expected entry before ttl")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(context.Background(), key); ok {
		t.Fatalf("expected entry to expire after ttl")
	}
}

func TestStore_KeysAreScopedByKind(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), Key{Kind: KindStandings, ID: 1}, "standings")

	if _, ok := store.Get(context.Background(), Key{Kind: KindTeam, ID: 1}); ok {
		t.Fatalf("team lookup must not see standings entry")
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	key := Key{Kind: KindStandings, ID: 9}
	var calls atomic.Int32
	boom := errors.New("upstream down")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), key, loader); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	v, err := store.GetOrLoad(context.Background(), key, loader)
	if err != nil || v != "ok" {
		t.Fatalf("expected reload to succeed, got %v %v", v, err)
	}
}

func TestStore_GetOrLoad_WaiterSurvivesOwnerCancellation(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	key := Key{Kind: KindTeam, ID: 55}
	started := make(chan struct{})
	var calls atomic.Int32

	loader := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return "value", nil
	}

	ownerCtx, cancelOwner := context.WithCancel(context.Background())
	ownerErr := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(ownerCtx, key, loader)
		ownerErr <- err
	}()
	<-started

	type result struct {
		value any
		err   error
	}
	waiter := make(chan result, 1)
	go func() {
		v, err := store.GetOrLoad(context.Background(), key, loader)
		waiter <- result{value: v, err: err}
	}()

	time.Sleep(20 * time.Millisecond)
	cancelOwner()

	if err := <-ownerErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("owner err=%v want context.Canceled", err)
	}
	got := <-waiter
	if got.err != nil {
		t.Fatalf("waiter err=%v want nil", got.err)
	}
	if v, _ := got.value.(string); v != "value" {
		t.Fatalf("waiter value=%v want value", got.value)
	}
}
