package lock

import (
	"context"
	"sync"
	"time"
)

// keyed holds one buffered channel per key; a full channel means the key is taken.
var (
	mu     sync.Mutex
	keyed  = map[string]chan struct{}{}
	active = map[string]int{}
)

func acquire(key string) chan struct{} {
	mu.Lock()
	defer mu.Unlock()
	slot, ok := keyed[key]
	if !ok {
		slot = make(chan struct{}, 1)
		keyed[key] = slot
	}
	active[key]++
	return slot
}

func release(key string) {
	mu.Lock()
	defer mu.Unlock()
	active[key]--
	if active[key] <= 0 {
		delete(active, key)
		delete(keyed, key)
	}
}

// WithDelay runs safeCode while holding key, waiting at most wait for it.
// success is false when the wait expired or ctx was cancelled; safeCode did not run then.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	slot := acquire(key)
	defer release(key)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case slot <- struct{}{}:
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, nil
	}
	defer func() { <-slot }()
	return true, safeCode()
}
