package ticker

import (
	"pulse/internal/event"
	"pulse/internal/logger"
	"pulse/internal/scheduler"
)

type options struct {
	tick    func(*Ticker)
	sched   scheduler.Provider
	log     logger.Logger
	busOpts []event.Option
}

type Option func(*options)

// WithTick sets the action run on every tick.
func WithTick(fn func(*Ticker)) Option {
	return func(o *options) {
		o.tick = fn
	}
}

func WithScheduler(p scheduler.Provider) Option {
	return func(o *options) {
		o.sched = p
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func WithBusOptions(opts ...event.Option) Option {
	return func(o *options) {
		o.busOpts = append(o.busOpts, opts...)
	}
}
