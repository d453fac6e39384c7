// Package ticker
package ticker

import (
	"sync"
	"time"

	"pulse/internal/event"
	"pulse/internal/logger"
	"pulse/internal/scheduler"
)

const (
	DefaultFrequency = time.Second
	DefaultAutoStart = true
)

type Config struct {
	// Frequency between ticks. Zero or negative means DefaultFrequency.
	Frequency time.Duration
	// AutoStartTicker starts the timer from New. Nil means DefaultAutoStart.
	AutoStartTicker *bool
	// AllowStacking lets Start schedule a new timer without cancelling the
	// running one, so both keep firing and only the newest can be stopped.
	AllowStacking bool
}

// Ticker runs one repeating timer that calls Tick, and carries its own
// event bus.
type Ticker struct {
	*event.Bus

	cfg   Config
	sched scheduler.Provider
	log   logger.Logger
	tick  func(*Ticker)

	mu     sync.Mutex
	handle *scheduler.Handle
}

var _ event.Emitter = (*Ticker)(nil)

func New(cfg Config, opts ...Option) *Ticker {
	t := &Ticker{
		cfg: mergeConfig(cfg),
		log: logger.Nop(),
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.log != nil {
		t.log = o.log
	}
	t.tick = o.tick

	t.sched = o.sched
	if t.sched == nil {
		t.sched = scheduler.New(nil, t.log)
	}

	busOpts := append([]event.Option{event.WithLogger(t.log)}, o.busOpts...)
	t.Bus = event.New(busOpts...)

	if *t.cfg.AutoStartTicker {
		t.Start()
	}

	return t
}

func mergeConfig(cfg Config) Config {
	merged := Config{
		Frequency:       DefaultFrequency,
		AutoStartTicker: Bool(DefaultAutoStart),
		AllowStacking:   cfg.AllowStacking,
	}

	if cfg.Frequency > 0 {
		merged.Frequency = cfg.Frequency
	}
	if cfg.AutoStartTicker != nil {
		merged.AutoStartTicker = Bool(*cfg.AutoStartTicker)
	}

	return merged
}

// Config returns the merged configuration.
func (t *Ticker) Config() Config {
	cfg := t.cfg
	cfg.AutoStartTicker = Bool(*t.cfg.AutoStartTicker)
	return cfg
}

// Start schedules the timer. Unless AllowStacking is set, a timer that is
// already running is cancelled first.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.handle != nil {
		if t.cfg.AllowStacking {
			t.log.Warn("ticker: started while running, previous timer left scheduled", "handle", t.handle.ID())
		} else {
			t.sched.Cancel(t.handle)
		}
	}

	t.handle = t.sched.Schedule(t.Tick, t.cfg.Frequency)
	t.log.Debug("ticker: started", "frequency", t.cfg.Frequency, "handle", t.handle.ID())
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sched.Cancel(t.handle)
	t.handle = nil
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.handle != nil
}

// Tick runs the tick action. Without one it warns and stops the timer, so an
// unconfigured ticker fires at most once.
func (t *Ticker) Tick() {
	if t.tick != nil {
		t.tick(t)
		return
	}

	t.log.Warn("ticker: tick action not set, stopping")
	t.Stop()
}

// Teardown stops the timer before clearing the bus.
func (t *Ticker) Teardown() {
	t.Stop()
	t.Bus.Teardown()
}

func Bool(v bool) *bool {
	return &v
}
