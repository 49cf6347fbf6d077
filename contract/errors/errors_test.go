package errors_test

import (
	"errors"
	"testing"

	derr "github.com/next-trace/scg-event-dispatch/contract/errors"
)

func TestCodeAndVars(t *testing.T) {
	e := derr.Code(derr.ErrCodeUnknownHandler)
	if e.Error() != derr.ErrCodeUnknownHandler {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	// exported variables must carry their codes
	tests := []struct {
		err  error
		code string
	}{
		{derr.ErrUnknownHandler, derr.ErrCodeUnknownHandler},
		{derr.ErrUnknownCallback, derr.ErrCodeUnknownCallback},
		{derr.ErrNilCallback, derr.ErrCodeNilCallback},
		{derr.ErrEmptyEvent, derr.ErrCodeEmptyEvent},
		{derr.ErrHandlerExists, derr.ErrCodeHandlerExists},
		{derr.ErrCallbackFailed, derr.ErrCodeCallbackFailed},
		{derr.ErrDispatcherClosed, derr.ErrCodeDispatcherClosed},
	}

	for _, tc := range tests {
		if !errors.Is(tc.err, derr.Code(tc.code)) {
			t.Fatalf("expected %s to be %s", tc.err, tc.code)
		}
	}
}
