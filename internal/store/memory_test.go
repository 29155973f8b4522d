package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMemStoreGetMissing(t *testing.T) {
	m := NewMemStore()
	if _, err := m.Get(context.Background(), "a.b", "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemStorePutGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()
	if err := m.Put(ctx, "owner.paper", "test-1", json.RawMessage(`{"x":1}`)); err != nil {
		t.Fatal(err)
	}
	got, err := m.Get(ctx, "owner.paper", "test-1")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"x":1}` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestMemStoreUpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	m.SetClock(func() time.Time { return base })
	if err := m.Put(ctx, "ns", "k", json.RawMessage(`1`)); err != nil {
		t.Fatal(err)
	}
	m.SetClock(func() time.Time { return base.Add(10 * time.Second) })
	if err := m.Put(ctx, "ns", "k", json.RawMessage(`2`)); err != nil {
		t.Fatal(err)
	}

	recs, err := m.Search(ctx, "ns")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if !recs[0].CreatedAt.Equal(base) {
		t.Fatalf("created_at moved: %v", recs[0].CreatedAt)
	}
	if !recs[0].UpdatedAt.Equal(base.Add(10 * time.Second)) {
		t.Fatalf("updated_at not bumped: %v", recs[0].UpdatedAt)
	}
	if string(recs[0].Value) != `2` {
		t.Fatalf("value not replaced: %s", recs[0].Value)
	}
}

func TestMemStoreSearchMatchesFragment(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()
	_ = m.Put(ctx, Namespace("user-1", "paper-1"), "t1", json.RawMessage(`1`))
	_ = m.Put(ctx, Namespace("user-1", "paper-2"), "t2", json.RawMessage(`2`))
	_ = m.Put(ctx, Namespace("user-2", "paper-3"), "t3", json.RawMessage(`3`))

	recs, err := m.Search(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records for user-1, got %d", len(recs))
	}

	recs, err = m.Search(ctx, "paper-3")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Key != "t3" {
		t.Fatalf("paper-scoped search failed: %+v", recs)
	}
}
