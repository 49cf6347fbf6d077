package dispatch

import "context"

// Owner is an opaque identity token supplied by the caller at subscribe time.
// The dispatcher never dereferences it; it is routing data handed back to the
// callback and the key used to scope bulk unsubscription. Owner values must be
// comparable (usable as a map key): a connection id, actor id, or subscriber
// handle all work.
type Owner = any

// Callback is the invocable bound to an event. The payload is caller-defined
// and opaque to the dispatcher. Errors (and panics) raised here are reported
// by the dispatcher but never propagated to the publisher.
type Callback func(ctx context.Context, owner Owner, payload any) error

// Binding is one registered (event, owner, callback) triple. The same triple
// may be registered multiple times; each registration is an independent entry.
type Binding struct {
	Event    string
	Owner    Owner
	Callback Callback
}

// StaticBinding is one discovery triple consumed by Bootstrap. Handler and
// Method name a late-bound callback resolved through a HandlerResolver; Owner
// is the name of the owning application.
type StaticBinding struct {
	Event   string
	Owner   string
	Handler string
	Method  string
}
