package recorder_test

import (
	"sync"
	"testing"

	"github.com/next-trace/scg-event-dispatch/adapters/recorder"
)

func Test_RecorderRecordsDeliveries(t *testing.T) {
	r := recorder.New()
	cb := r.Callback()

	if err := cb(t.Context(), "A", 1); err != nil {
		t.Fatalf("callback: %v", err)
	}

	if err := cb(t.Context(), "B", 2); err != nil {
		t.Fatalf("callback: %v", err)
	}

	got := r.Deliveries()
	if len(got) != 2 || got[0].Owner != "A" || got[1].Payload != 2 {
		t.Fatalf("deliveries = %+v", got)
	}

	// Deliveries returns a copy
	got[0].Owner = "mutated"
	if r.Deliveries()[0].Owner != "A" {
		t.Fatalf("internal state mutated through returned slice")
	}

	r.Reset()

	if len(r.Deliveries()) != 0 {
		t.Fatalf("deliveries after reset = %+v", r.Deliveries())
	}
}

func Test_RecorderConcurrent(t *testing.T) {
	r := recorder.New()
	cb := r.Callback()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			for j := 0; j < 50; j++ {
				_ = cb(t.Context(), n, j)
			}
		}(i)
	}

	wg.Wait()

	if len(r.Deliveries()) != 500 {
		t.Fatalf("deliveries = %d, want 500", len(r.Deliveries()))
	}
}
