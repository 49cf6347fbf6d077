package eventdispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"

	cdisp "github.com/next-trace/scg-event-dispatch/contract/dispatch"
	derr "github.com/next-trace/scg-event-dispatch/contract/errors"
)

// Dispatcher is the in-process publish/subscribe engine. It validates and
// stores bindings, and fans published payloads out to a point-in-time
// snapshot of the subscribers for the event.
//
// Dispatcher is concurrency-safe and contains no global state. Callbacks are
// invoked sequentially, in-line, and outside every internal lock, so a
// callback may itself call Subscribe, Unsubscribe, or Publish (including
// unsubscribing itself) without deadlocking the dispatch path. A callback
// that blocks, blocks the Publish call it is part of.
type Dispatcher struct {
	store    *store
	resolver cdisp.HandlerResolver
	logger   *slog.Logger
	onPanic  PanicHandler

	closed atomic.Bool

	published atomic.Uint64
	delivered atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64
}

// PanicHandler observes a recovered callback panic. It runs after the panic
// has been logged and counted, and is itself recover-guarded.
type PanicHandler func(event string, owner cdisp.Owner, recovered any, stack []byte)

// Option configures a Dispatcher instance.
type Option func(*Dispatcher)

// WithPanicHandler installs an observability hook for callback panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(d *Dispatcher) { d.onPanic = h }
}

// New constructs a Dispatcher. The resolver backs SubscribeNamed and may be
// nil, in which case every named subscription fails with ErrUnknownHandler.
// A nil logger falls back to slog.Default().
func New(resolver cdisp.HandlerResolver, logger *slog.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{
		store:    newStore(),
		resolver: resolver,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Subscribe registers cb under (event, owner). Registering the same triple
// twice yields two independent bindings; there is no deduplication.
func (d *Dispatcher) Subscribe(event string, owner cdisp.Owner, cb cdisp.Callback) error {
	if d.closed.Load() {
		return fmt.Errorf("subscribe %q: %w", event, derr.ErrDispatcherClosed)
	}

	if event == "" {
		return fmt.Errorf("subscribe: %w", derr.ErrEmptyEvent)
	}

	if cb == nil {
		return fmt.Errorf("subscribe %q: %w", event, derr.ErrNilCallback)
	}

	d.store.insert(event, owner, cb)

	return nil
}

// SubscribeNamed registers a late-bound (handler, method) callback. The pair
// is resolved and validated once, here; a typo degrades to a returned error
// for this one binding and nothing is stored.
func (d *Dispatcher) SubscribeNamed(event string, owner cdisp.Owner, handler, method string) error {
	if d.closed.Load() {
		return fmt.Errorf("subscribe %q: %w", event, derr.ErrDispatcherClosed)
	}

	if event == "" {
		return fmt.Errorf("subscribe: %w", derr.ErrEmptyEvent)
	}

	if d.resolver == nil {
		return fmt.Errorf("subscribe %q: resolve %s.%s: %w", event, handler, method, derr.ErrUnknownHandler)
	}

	cb, err := d.resolver.Resolve(handler, method)
	if err != nil {
		return fmt.Errorf("subscribe %q: %w", event, err)
	}

	d.store.insert(event, owner, cb)

	return nil
}

// Unsubscribe removes every binding for (event, owner), however many callback
// references were registered under it. Unsubscribing something never
// subscribed is a no-op.
func (d *Dispatcher) Unsubscribe(event string, owner cdisp.Owner) {
	if removed := d.store.removeAll(event, owner); removed > 0 {
		d.logger.Debug("unsubscribed", "event", event, "owner", owner, "removed", removed)
	}
}

// DropOwner removes all of the owner's bindings across every event and
// returns how many were dropped. This is the lifecycle hook for owner
// teardown: the dispatcher has no notion of owner liveness, so hosting code
// calls this when the owner goes away.
func (d *Dispatcher) DropOwner(owner cdisp.Owner) int {
	removed := d.store.removeOwner(owner)
	if removed > 0 {
		d.logger.Debug("dropped owner", "owner", owner, "removed", removed)
	}

	return removed
}

// Publish fans payload out to every binding in a consistent snapshot of the
// event's subscribers. Bindings added or removed concurrently with the call
// may or may not be observed; the snapshot used for this fan-out is fixed.
//
// Failures are isolated per binding: a callback that errors or panics is
// logged and counted, and the remaining snapshot entries are still invoked.
// Publish returns once every snapshot entry has been attempted; it never
// fails from the publisher's point of view.
func (d *Dispatcher) Publish(ctx context.Context, event string, payload any) {
	if d.closed.Load() {
		return
	}

	snap := d.store.snapshot(event)
	if len(snap) == 0 {
		return
	}

	d.published.Add(1)

	for _, b := range snap {
		if err := d.invoke(ctx, b, payload); err != nil {
			d.failed.Add(1)
			d.logger.Error("callback failed", "event", event, "owner", b.Owner, "err", err)

			continue
		}

		d.delivered.Add(1)
	}
}

// invoke runs one callback with panic recovery. A panic is converted into an
// error wrapping ErrCallbackFailed so Publish treats both failure modes the
// same way.
func (d *Dispatcher) invoke(ctx context.Context, b cdisp.Binding, payload any) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		stack := debug.Stack()
		d.panicked.Add(1)
		err = fmt.Errorf("%w: panic: %v", derr.ErrCallbackFailed, r)

		if d.onPanic != nil {
			func() {
				defer func() { _ = recover() }()
				d.onPanic(b.Event, b.Owner, r, stack)
			}()
		}
	}()

	if err := b.Callback(ctx, b.Owner, payload); err != nil {
		return fmt.Errorf("%w: %w", derr.ErrCallbackFailed, err)
	}

	return nil
}

// Bootstrap installs externally-discovered static bindings. Every entry is
// attempted; per-entry failures are logged and aggregated with errors.Join,
// never aborting the remaining entries. The owner of each installed binding
// is the entry's application name.
func (d *Dispatcher) Bootstrap(ctx context.Context, bindings []cdisp.StaticBinding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error

	for _, sb := range bindings {
		err := d.SubscribeNamed(sb.Event, sb.Owner, sb.Handler, sb.Method)
		if err != nil {
			d.logger.Warn("static binding rejected",
				"event", sb.Event, "owner", sb.Owner, "handler", sb.Handler, "method", sb.Method, "err", err)
			errs = append(errs, fmt.Errorf("bootstrap %s/%s: %w", sb.Owner, sb.Event, err))
		}
	}

	return errors.Join(errs...)
}

// Close marks the dispatcher closed and drops all bindings. Subsequent
// subscribes fail with ErrDispatcherClosed; subsequent publishes deliver
// nothing. Close is idempotent.
func (d *Dispatcher) Close() error {
	if d.closed.Swap(true) {
		return nil
	}

	d.store.clear()

	return nil
}

// Stats is a point-in-time view of dispatcher counters. CallbackErrors
// counts every failed invocation; Panics counts the subset that panicked.
type Stats struct {
	Published      uint64
	Delivered      uint64
	CallbackErrors uint64
	Panics         uint64
	ActiveBindings int
}

// Stats returns current counters. Publishes to events with no subscribers
// are not counted.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Published:      d.published.Load(),
		Delivered:      d.delivered.Load(),
		CallbackErrors: d.failed.Load(),
		Panics:         d.panicked.Load(),
		ActiveBindings: d.store.size(),
	}
}

// compile-time contract check
var _ cdisp.Dispatcher = (*Dispatcher)(nil)
