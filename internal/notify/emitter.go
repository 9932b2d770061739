package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Emitter runs notifier calls in the background with a per-call timeout and
// a cap on concurrent deliveries. Events arriving while the cap is reached
// are dropped.
type Emitter struct {
	notifier Notifier
	logger   *slog.Logger
	slots    chan struct{}
	wg       sync.WaitGroup
	timeout  time.Duration
}

// NewEmitter creates an Emitter delivering through notifier.
func NewEmitter(notifier Notifier, timeout time.Duration, maxInFlight int, logger *slog.Logger) *Emitter {
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	return &Emitter{
		notifier: notifier,
		logger:   logger,
		slots:    make(chan struct{}, maxInFlight),
		timeout:  timeout,
	}
}

// EmitPurchase schedules delivery of a purchase event.
func (e *Emitter) EmitPurchase(event PurchaseEvent) {
	e.dispatch("purchase", func(ctx context.Context) error {
		return e.notifier.NotifyPurchase(ctx, event)
	})
}

// EmitUpload schedules delivery of an upload event.
func (e *Emitter) EmitUpload(event UploadEvent) {
	e.dispatch("upload", func(ctx context.Context) error {
		return e.notifier.NotifyUpload(ctx, event)
	})
}

func (e *Emitter) dispatch(kind string, deliver func(context.Context) error) {
	select {
	case e.slots <- struct{}{}:
	default:
		e.logger.Warn("notification dropped, too many in flight", "event", kind)
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() { <-e.slots }()
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("notification panicked", "event", kind, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()

		if err := deliver(ctx); err != nil {
			e.logger.Warn("notification delivery failed", "event", kind, "error", err)
			return
		}
		e.logger.Debug("notification delivered", "event", kind)
	}()
}

// Shutdown waits for in-flight deliveries or until ctx is done.
func (e *Emitter) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
