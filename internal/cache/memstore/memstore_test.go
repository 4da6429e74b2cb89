package memstore

import (
	"context"
	"testing"
	"time"
)

func TestSetGetDel(t *testing.T) {
	s := New(8, time.Minute)
	ctx := context.Background()

	if err := s.Set(ctx, "k1", []byte("v1"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(ctx, "k1")
	if err != nil || !ok || string(v) != "v1" {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}

	if _, ok, _ := s.Get(ctx, "missing"); ok {
		t.Fatal("hit on a missing key")
	}

	if err := s.Del(ctx, "k1"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k1"); ok {
		t.Fatal("hit after delete")
	}
}

func TestEviction(t *testing.T) {
	s := New(2, time.Minute)
	ctx := context.Background()
	_ = s.Set(ctx, "a", []byte("1"), 0)
	_ = s.Set(ctx, "b", []byte("2"), 0)
	_ = s.Set(ctx, "c", []byte("3"), 0)
	if s.Len() != 2 {
		t.Fatalf("Len = %d after overflow, want 2", s.Len())
	}
	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Fatal("oldest entry survived eviction")
	}
}
