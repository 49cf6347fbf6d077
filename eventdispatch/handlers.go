package eventdispatch

import (
	"fmt"
	"sync"

	cdisp "github.com/next-trace/scg-event-dispatch/contract/dispatch"
	derr "github.com/next-trace/scg-event-dispatch/contract/errors"
)

// HandlerSet is a name-indexed dispatch table for late-bound subscriptions:
// handler name to the callbacks that handler exposes as subscribable entry
// points. It implements dispatch.HandlerResolver, so configuration-driven
// wiring can name callbacks as plain data and still be validated at
// subscribe time.
type HandlerSet struct {
	mu       sync.RWMutex
	handlers map[string]map[string]cdisp.Callback
}

// NewHandlerSet creates an empty handler table.
func NewHandlerSet() *HandlerSet {
	return &HandlerSet{handlers: make(map[string]map[string]cdisp.Callback)}
}

// Register exposes a handler's callbacks under name. The callbacks map is
// copied. Registering the same handler name twice is rejected.
func (h *HandlerSet) Register(name string, callbacks map[string]cdisp.Callback) error {
	if name == "" {
		return fmt.Errorf("register handler: empty name")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.handlers[name]; exists {
		return fmt.Errorf("register handler %s: %w", name, derr.ErrHandlerExists)
	}

	exposed := make(map[string]cdisp.Callback, len(callbacks))
	for method, cb := range callbacks {
		if cb == nil {
			return fmt.Errorf("register handler %s.%s: %w", name, method, derr.ErrNilCallback)
		}
		exposed[method] = cb
	}

	h.handlers[name] = exposed

	return nil
}

// Handlers returns the registered handler names.
func (h *HandlerSet) Handlers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.handlers))
	for name := range h.handlers {
		names = append(names, name)
	}

	return names
}

// Resolve maps a (handler, method) pair to its callback.
func (h *HandlerSet) Resolve(handler, method string) (cdisp.Callback, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	exposed, ok := h.handlers[handler]
	if !ok {
		return nil, fmt.Errorf("resolve %s.%s: %w", handler, method, derr.ErrUnknownHandler)
	}

	cb, ok := exposed[method]
	if !ok {
		return nil, fmt.Errorf("resolve %s.%s: %w", handler, method, derr.ErrUnknownCallback)
	}

	return cb, nil
}

var _ cdisp.HandlerResolver = (*HandlerSet)(nil)
