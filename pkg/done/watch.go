package done

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch streams a notification whenever the overlay database changes on
// disk, so a toggle made from another terminal shows up in a running UI.
// Bursts of writes coalesce into one notification. The channel is closed
// once ctx is done or the watcher hits an unrecoverable error; callers
// should drain it to avoid losing the final close.
func (s *DiskvStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	if s.basePath == "" {
		return nil, fmt.Errorf("done: overlay base path unknown")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("done: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("done: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("done: watch %s: %w", s.basePath, err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer func() {
			_ = watcher.Close()
		}()

		// Drop notifications the consumer has not drained yet; the next
		// reload picks up the latest mapping anyway, and this keeps
		// filesystem storms from blocking the watcher goroutine.
		send := func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return changes, nil
}

// changeThrottle coalesces rapid change notifications so the UI reloads
// once per burst of filesystem activity instead of on every write.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{delay: delay}
}

func (t *changeThrottle) Enqueue(send func()) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func()) {
	t.mu.Lock()
	fire := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()

	if fire {
		send()
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
