package eventdispatch

import (
	"context"
	"testing"

	cdisp "github.com/next-trace/scg-event-dispatch/contract/dispatch"
)

func nopCB(context.Context, cdisp.Owner, any) error { return nil }

func Test_Store_InsertAndSnapshot(t *testing.T) {
	s := newStore()

	s.insert("e", "a", nopCB)
	s.insert("e", "a", nopCB) // duplicates are independent entries
	s.insert("e", "b", nopCB)

	snap := s.snapshot("e")
	if len(snap) != 3 {
		t.Fatalf("snapshot len = %d, want 3", len(snap))
	}

	if got := s.snapshot("missing"); got != nil {
		t.Fatalf("snapshot of unknown event = %v, want nil", got)
	}

	if s.size() != 3 {
		t.Fatalf("size = %d, want 3", s.size())
	}
}

func Test_Store_SnapshotIsolation(t *testing.T) {
	s := newStore()
	s.insert("e", "a", nopCB)
	s.insert("e", "b", nopCB)

	snap := s.snapshot("e")

	// mutations after the snapshot must not leak into it
	s.insert("e", "c", nopCB)
	s.removeAll("e", "a")
	s.removeAll("e", "b")

	if len(snap) != 2 {
		t.Fatalf("snapshot len after mutation = %d, want 2", len(snap))
	}

	owners := map[cdisp.Owner]bool{}
	for _, b := range snap {
		owners[b.Owner] = true
	}

	if !owners["a"] || !owners["b"] {
		t.Fatalf("snapshot owners = %v, want a and b", owners)
	}
}

func Test_Store_RemoveAll(t *testing.T) {
	s := newStore()
	s.insert("e", "a", nopCB)
	s.insert("e", "a", nopCB)
	s.insert("e", "b", nopCB)
	s.insert("other", "a", nopCB)

	if got := s.removeAll("e", "a"); got != 2 {
		t.Fatalf("removeAll = %d, want 2", got)
	}

	if got := s.removeAll("e", "a"); got != 0 {
		t.Fatalf("removeAll again = %d, want 0", got)
	}

	if len(s.snapshot("e")) != 1 {
		t.Fatalf("remaining bindings for e = %d, want 1", len(s.snapshot("e")))
	}

	if len(s.snapshot("other")) != 1 {
		t.Fatalf("unrelated event was touched")
	}

	if s.size() != 2 {
		t.Fatalf("size = %d, want 2", s.size())
	}
}

func Test_Store_RemoveOwner(t *testing.T) {
	s := newStore()
	s.insert("e1", "a", nopCB)
	s.insert("e2", "a", nopCB)
	s.insert("e2", "b", nopCB)

	if got := s.removeOwner("a"); got != 2 {
		t.Fatalf("removeOwner = %d, want 2", got)
	}

	if s.snapshot("e1") != nil {
		t.Fatalf("e1 should have no bindings left")
	}

	if len(s.snapshot("e2")) != 1 {
		t.Fatalf("e2 bindings = %d, want 1", len(s.snapshot("e2")))
	}
}

func Test_Store_Clear(t *testing.T) {
	s := newStore()
	s.insert("e", "a", nopCB)
	s.clear()

	if s.size() != 0 || s.snapshot("e") != nil {
		t.Fatalf("store not empty after clear")
	}
}
