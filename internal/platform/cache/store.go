package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/fpl-league-api/internal/platform/resilience"
)

const (
	KindStandings = "standings"
	KindTeam      = "team"
	KindHistory   = "history"
	KindSnapshot  = "snapshot"
)

// Key identifies a cached value. Sub narrows ID further, e.g. a gameweek
// within a league.
type Key struct {
	Kind string
	ID   int64
	Sub  int
}

func (k Key) String() string {
	if k.Sub != 0 {
		return fmt.Sprintf("%s:%d:%d", k.Kind, k.ID, k.Sub)
	}
	return fmt.Sprintf("%s:%d", k.Kind, k.ID)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process TTL cache. A zero ttl keeps entries forever.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry
	ttl     time.Duration
	now     func() time.Time
	flight  resilience.Flight
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[Key]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key Key) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		if current, ok := s.entries[key]; ok && current.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(_ context.Context, key Key, value any) {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key Key) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// GetOrLoad returns the cached value or runs loader once for all concurrent
// callers of the same key. Failed loads are not cached.
func (s *Store) GetOrLoad(ctx context.Context, key Key, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err := s.load(ctx, key, loader)
	if err != nil && isContextError(err) && ctx.Err() == nil {
		// The load ran on another caller's context and that caller gave up.
		value, err = s.load(ctx, key, loader)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) load(ctx context.Context, key Key, loader func(context.Context) (any, error)) (any, error) {
	value, err, _ := s.flight.Do(ctx, key.String(), func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
