// Package recorder provides a thread-safe recording subscriber for tests and
// examples.
package recorder

import (
	"context"
	"sync"

	cdisp "github.com/next-trace/scg-event-dispatch/contract/dispatch"
)

// Delivery is one recorded callback invocation.
type Delivery struct {
	Owner   cdisp.Owner
	Payload any
}

// Recorder records every delivery made through its Callback.
type Recorder struct {
	mu         sync.Mutex
	deliveries []Delivery
}

// New creates an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Callback returns a dispatch.Callback that records (owner, payload) pairs
// and never fails.
func (r *Recorder) Callback() cdisp.Callback {
	return func(_ context.Context, owner cdisp.Owner, payload any) error {
		r.mu.Lock()
		r.deliveries = append(r.deliveries, Delivery{Owner: owner, Payload: payload})
		r.mu.Unlock()

		return nil
	}
}

// Deliveries returns a copy of everything recorded so far.
func (r *Recorder) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Delivery, len(r.deliveries))
	copy(out, r.deliveries)

	return out
}

// Reset discards recorded deliveries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.deliveries = nil
	r.mu.Unlock()
}
