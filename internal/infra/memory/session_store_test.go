package memory

import "testing"

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := store.GetOrCreate("game-1")
	if session == nil {
		t.Fatalf("expected session")
	}
	if again := store.GetOrCreate("game-1"); again != session {
		t.Fatalf("expected the same session instance per game ID")
	}
	if _, ok := store.Get("game-1"); !ok {
		t.Fatalf("expected session present")
	}

	store.Delete("game-1")
	if _, ok := store.Get("game-1"); ok {
		t.Fatalf("expected session removed")
	}
}
