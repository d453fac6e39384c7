// Package scheduler
package scheduler

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"pulse/internal/logger"
)

// DefaultInterval replaces a non-positive interval passed to Schedule.
const DefaultInterval = time.Second

// Provider schedules repeating callbacks. Schedule treats an interval <= 0 as
// DefaultInterval. Cancel must accept nil and handles that were already
// cancelled.
type Provider interface {
	Schedule(fn func(), interval time.Duration) *Handle
	Cancel(h *Handle)
}

var _ Provider = (*Scheduler)(nil)

// Handle identifies one repeating timer.
type Handle struct {
	id       uuid.UUID
	interval time.Duration
	ticker   *clock.Ticker
	done     chan struct{}
	once     sync.Once
}

func (h *Handle) ID() uuid.UUID {
	if h == nil {
		return uuid.Nil
	}
	return h.id
}

type Scheduler struct {
	clock clock.Clock
	log   logger.Logger

	mu     sync.Mutex
	active map[*Handle]struct{}
}

func New(clk clock.Clock, log logger.Logger) *Scheduler {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Scheduler{
		clock:  clk,
		log:    log,
		active: make(map[*Handle]struct{}),
	}
}

// Schedule calls fn every interval until the returned handle is cancelled.
// Firings of one handle never overlap; a slow fn drops the ticks it missed.
func (s *Scheduler) Schedule(fn func(), interval time.Duration) *Handle {
	if interval <= 0 {
		s.log.Warn("scheduler: non-positive interval, using default", "interval", interval, "default", DefaultInterval)
		interval = DefaultInterval
	}

	h := &Handle{
		id:       uuid.New(),
		interval: interval,
		ticker:   s.clock.Ticker(interval),
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	s.active[h] = struct{}{}
	s.mu.Unlock()

	s.log.Debug("scheduler: timer started", "handle", h.id, "interval", interval)

	go s.run(h, fn)
	return h
}

func (s *Scheduler) run(h *Handle, fn func()) {
	defer h.ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-h.ticker.C:
			// A cancel that raced with the tick wins.
			select {
			case <-h.done:
				return
			default:
			}

			fn()
		}
	}
}

// Cancel stops future firings of h. It does not wait for a firing in progress,
// so fn may cancel its own handle.
func (s *Scheduler) Cancel(h *Handle) {
	if h == nil {
		return
	}

	h.once.Do(func() {
		close(h.done)

		s.mu.Lock()
		delete(s.active, h)
		s.mu.Unlock()

		s.log.Debug("scheduler: timer cancelled", "handle", h.id, "interval", h.interval)
	})
}

// Active reports how many timers are still scheduled.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.active)
}

// Shutdown cancels every timer still scheduled.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	handles := make([]*Handle, 0, len(s.active))
	for h := range s.active {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		s.Cancel(h)
	}

	if len(handles) > 0 {
		s.log.Info("scheduler: shutdown", "cancelled", len(handles))
	}
}
