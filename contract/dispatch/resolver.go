package dispatch

// HandlerResolver resolves a late-bound (handler, method) pair to a concrete
// Callback. Resolution happens once, at subscribe time; dispatch never
// re-resolves. Implementations must be safe for concurrent use.
//
// Resolve returns errors.ErrUnknownHandler when the handler name is not
// registered and errors.ErrUnknownCallback when the handler does not expose
// the named method (see contract/errors).
type HandlerResolver interface {
	Resolve(handler, method string) (Callback, error)
}
