package resilience

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Flight deduplicates concurrent calls for the same key. Waiters give up on
// their own context without cancelling the shared call.
type Flight struct {
	group singleflight.Group
}

func (f *Flight) Do(ctx context.Context, key string, fn func() (any, error)) (any, error, bool) {
	ch := f.group.DoChan(key, fn)
	select {
	case <-ctx.Done():
		return nil, ctx.Err(), false
	case res := <-ch:
		return res.Val, res.Err, res.Shared
	}
}

func (f *Flight) Forget(key string) {
	f.group.Forget(key)
}
