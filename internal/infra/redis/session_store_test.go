package redis

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute)

	_ = store.GetOrCreate("game-1")
	if !mr.Exists("jeopardy:game:game-1") {
		t.Fatalf("expected redis liveness key to be set")
	}

	store.Delete("game-1")
	if mr.Exists("jeopardy:game:game-1") {
		t.Fatalf("expected redis liveness key to be removed")
	}
	if _, ok := store.Get("game-1"); ok {
		t.Fatalf("expected session removed")
	}
}
