package dispatch

import "context"

// Dispatcher is a minimal, tech-agnostic interface mirroring the concrete
// event dispatcher. It is intended for consumers that want to depend only on
// contracts.
//
// All methods are safe for concurrent use.
type Dispatcher interface {
	// Subscribe registers a directly-held callback under (event, owner).
	// Duplicate registrations are independent entries.
	Subscribe(event string, owner Owner, cb Callback) error

	// SubscribeNamed registers a late-bound (handler, method) callback,
	// resolved and validated once at subscribe time.
	SubscribeNamed(event string, owner Owner, handler, method string) error

	// Unsubscribe removes every binding for (event, owner). Idempotent:
	// unsubscribing something never subscribed is a no-op.
	Unsubscribe(event string, owner Owner)

	// Publish fans the payload out to a point-in-time snapshot of the
	// event's bindings. Per-binding failures are isolated and reported,
	// never surfaced to the publisher.
	Publish(ctx context.Context, event string, payload any)

	// Bootstrap attempts every discovered static binding, reporting
	// per-entry failures without aborting the remaining entries.
	Bootstrap(ctx context.Context, bindings []StaticBinding) error

	// DropOwner is the owner-lifecycle hook: it removes all of the owner's
	// bindings across every event and returns how many were dropped. The
	// dispatcher has no notion of owner liveness; hosting code calls this
	// from its own teardown signal (connection close, actor stop).
	DropOwner(owner Owner) int

	// Lifecycle
	Close() error
}
