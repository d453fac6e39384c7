package main

import (
	"context"
	"log"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"pulse/internal/config"
	"pulse/internal/event"
	"pulse/internal/logger"
	"pulse/internal/scheduler"
	"pulse/internal/ticker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	appLog := logger.New(cfg)

	ctx := context.Background()
	runtimeCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var busOpts []event.Option
	if cfg.EventStrictRegister {
		busOpts = append(busOpts, event.WithStrictRegister())
	}

	sched := scheduler.New(clock.New(), appLog)
	defer sched.Shutdown()

	var count atomic.Int64
	tk := ticker.New(
		ticker.Config{
			Frequency:       cfg.TickFrequency,
			AutoStartTicker: ticker.Bool(cfg.TickAutoStart),
			AllowStacking:   !cfg.TickSingleTimer,
		},
		ticker.WithScheduler(sched),
		ticker.WithLogger(appLog),
		ticker.WithBusOptions(busOpts...),
		ticker.WithTick(func(t *ticker.Ticker) {
			t.Dispatch("ping", count.Add(1))
		}),
	)

	tk.Register("ping", event.NewListener(func(evt event.Event) {
		appLog.Info("ping", "value", evt.Value)
	}))

	appLog.Info("pulse: starting...", "frequency", cfg.TickFrequency, "auto_start", cfg.TickAutoStart)

	if err := run(runtimeCtx, tk, appLog); err != nil && err != context.Canceled {
		appLog.Error("pulse failed unexpectedly", "error", err)
	}

	appLog.Info("pulse stopped gracefully.")
}

// run keeps the ticker as configured until ctx ends, then tears it down.
func run(ctx context.Context, tk *ticker.Ticker, appLog logger.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)

	// Ticker
	g.Go(func() error {
		if !tk.Running() {
			appLog.Info("pulse: ticker idle, TICK_AUTO_START is false")
		}
		<-gCtx.Done()
		tk.Teardown()
		return gCtx.Err()
	})

	return g.Wait()
}
