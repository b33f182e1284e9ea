package storage

import (
	"path/filepath"
	"testing"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSubscriptions_AddListRemove(t *testing.T) {
	s := testStorage(t)

	if err := s.AddSubscription(100, "family chat"); err != nil {
		t.Fatalf("AddSubscription: %v", err)
	}
	if err := s.AddSubscription(200, ""); err != nil {
		t.Fatalf("AddSubscription: %v", err)
	}

	subs, err := s.ListSubscriptions()
	if err != nil {
		t.Fatalf("ListSubscriptions: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("got %d subscriptions, want 2", len(subs))
	}

	ok, err := s.IsSubscribed(100)
	if err != nil || !ok {
		t.Errorf("IsSubscribed(100) = %v, %v; want true", ok, err)
	}

	removed, err := s.RemoveSubscription(100)
	if err != nil {
		t.Fatalf("RemoveSubscription: %v", err)
	}
	if !removed {
		t.Error("RemoveSubscription(100) = false, want true")
	}

	ok, err = s.IsSubscribed(100)
	if err != nil || ok {
		t.Errorf("IsSubscribed(100) after remove = %v, %v; want false", ok, err)
	}
}

func TestSubscriptions_ResubscribeIsIdempotent(t *testing.T) {
	s := testStorage(t)

	if err := s.AddSubscription(100, "old title"); err != nil {
		t.Fatalf("AddSubscription: %v", err)
	}
	if err := s.AddSubscription(100, "new title"); err != nil {
		t.Fatalf("re-AddSubscription: %v", err)
	}

	subs, err := s.ListSubscriptions()
	if err != nil {
		t.Fatalf("ListSubscriptions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(subs))
	}
	if subs[0].Title != "new title" {
		t.Errorf("title = %q, want refreshed title", subs[0].Title)
	}
}

func TestSubscriptions_RemoveUnknownChat(t *testing.T) {
	s := testStorage(t)

	removed, err := s.RemoveSubscription(42)
	if err != nil {
		t.Fatalf("RemoveSubscription: %v", err)
	}
	if removed {
		t.Error("RemoveSubscription on unknown chat = true, want false")
	}
}
