package errors

// Error codes for the dispatch contracts. Keep stable; used across packages.
const (
	ErrCodeUnknownHandler   = "eventdispatch.unknown_handler"
	ErrCodeUnknownCallback  = "eventdispatch.unknown_callback"
	ErrCodeNilCallback      = "eventdispatch.nil_callback"
	ErrCodeEmptyEvent       = "eventdispatch.empty_event"
	ErrCodeHandlerExists    = "eventdispatch.handler_exists"
	ErrCodeCallbackFailed   = "eventdispatch.callback_failed"
	ErrCodeDispatcherClosed = "eventdispatch.dispatcher_closed"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	ErrUnknownHandler   = Code(ErrCodeUnknownHandler)
	ErrUnknownCallback  = Code(ErrCodeUnknownCallback)
	ErrNilCallback      = Code(ErrCodeNilCallback)
	ErrEmptyEvent       = Code(ErrCodeEmptyEvent)
	ErrHandlerExists    = Code(ErrCodeHandlerExists)
	ErrCallbackFailed   = Code(ErrCodeCallbackFailed)
	ErrDispatcherClosed = Code(ErrCodeDispatcherClosed)
)
