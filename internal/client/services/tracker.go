package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/loadstate"
)

// tracker owns the LoadState of one loader. Every fetch is tagged with a
// generation; only a result whose generation is still current is applied.
// Starting a new fetch or resetting cancels the previous one.
type tracker[T any] struct {
	mu       sync.Mutex
	gen      uint64
	key      string
	state    loadstate.State[T]
	cancel   context.CancelFunc
	settled  chan struct{}
	onChange func(loadstate.State[T])
}

// begin starts a new generation for key unless one for the same key is
// already pending or settled. It returns the generation and the context the
// fetch must run under.
func (t *tracker[T]) begin(parent context.Context, key string) (uint64, context.Context, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Tag() != loadstate.TagIdle && t.key == key {
		return 0, nil, false
	}

	t.supersede()
	t.gen++
	t.key = key
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.settled = make(chan struct{})
	t.set(loadstate.Pending[T]())
	return t.gen, ctx, true
}

// finish applies the fetch result for gen. Stale results are dropped and
// reported as false.
func (t *tracker[T]) finish(gen uint64, next loadstate.State[T]) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.gen || t.state.Tag() != loadstate.TagPending {
		return false
	}
	if err := loadstate.Transition(t.state.Tag(), next.Tag()); err != nil {
		return false
	}
	t.set(next)
	t.cancel()
	t.cancel = nil
	close(t.settled)
	t.settled = nil
	return true
}

// reset discards the current target and returns to Idle.
func (t *tracker[T]) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.supersede()
	t.gen++
	t.key = ""
	if t.state.Tag() != loadstate.TagIdle {
		t.set(loadstate.Idle[T]())
	}
}

// supersede cancels the in-flight fetch and releases its waiters.
// Caller holds mu.
func (t *tracker[T]) supersede() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.settled != nil {
		close(t.settled)
		t.settled = nil
	}
}

// set is called with mu held so observers see transitions in order. The
// callback must not call back into the loader.
func (t *tracker[T]) set(s loadstate.State[T]) {
	t.state = s
	if t.onChange != nil {
		t.onChange(s)
	}
}

func (t *tracker[T]) current() loadstate.State[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *tracker[T]) observe(fn func(loadstate.State[T])) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// wait blocks until the state is no longer Pending or ctx is done.
func (t *tracker[T]) wait(ctx context.Context) (loadstate.State[T], error) {
	for {
		t.mu.Lock()
		st, ch := t.state, t.settled
		t.mu.Unlock()

		if st.Tag() != loadstate.TagPending || ch == nil {
			return st, nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return st, ctx.Err()
		}
	}
}

// failureMessage picks the user-facing text for a failed read: a fixed
// message when the server answered with a non-2xx status, the error text
// otherwise.
func failureMessage(err error, statusMessage string) string {
	if _, ok := client.HTTPStatus(err); ok {
		return statusMessage
	}
	return err.Error()
}
