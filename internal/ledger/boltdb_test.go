package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"tracker/internal/core"
)

func openTestDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "ledger.db"), 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBoltSlotRoundTrip(t *testing.T) {
	db := openTestDB(t)
	slot, err := NewBoltSlot(db)
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	ctx := context.Background()

	if _, found, err := slot.Load(ctx); err != nil || found {
		t.Fatalf("fresh slot: found=%v err=%v", found, err)
	}

	want := seedTransactions()
	if err := slot.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := slot.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatalf("saved slot must be found")
	}
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Date.Equal(want[i].Date) {
			t.Fatalf("tx %d date mismatch: %v != %v", i, got[i].Date, want[i].Date)
		}
		got[i].Date = want[i].Date
		if got[i] != want[i] {
			t.Fatalf("tx %d mismatch:\n got %+v\nwant %+v", i, got[i], want[i])
		}
	}
}

func TestBoltSlotStoreRoundTrip(t *testing.T) {
	db := openTestDB(t)
	slot, err := NewBoltSlot(db)
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	ctx := context.Background()

	first := NewStore(slot, nil)
	if err := first.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	added, err := first.Add(ctx, core.Money{Cents: 999}, "Snacks", "food", core.Expense)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// A fresh store over the same slot sees the identical ordered collection.
	second := NewStore(slot, nil)
	if err := second.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	a, b := first.All(), second.All()
	if len(a) != len(b) {
		t.Fatalf("round-trip length mismatch: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Amount != b[i].Amount || a[i].Description != b[i].Description {
			t.Fatalf("round-trip mismatch at %d:\n %+v\n %+v", i, a[i], b[i])
		}
	}
	if b[0].ID != added.ID {
		t.Fatalf("newest-first order lost across the round-trip")
	}
}

func TestBoltSlotReadsLegacyArray(t *testing.T) {
	db := openTestDB(t)
	slot, err := NewBoltSlot(db)
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}

	legacy := `[{"id":1,"amount":-45.5,"description":"Grocery Store","category":"food","type":"expense","date":"2025-12-14T10:30:00Z","timestamp":1734181800000}]`
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(ledgerBucketName).Put(transactionsKey, []byte(legacy))
	})
	if err != nil {
		t.Fatalf("write legacy value: %v", err)
	}

	got, found, err := slot.Load(context.Background())
	if err != nil {
		t.Fatalf("load legacy: %v", err)
	}
	if !found || len(got) != 1 {
		t.Fatalf("legacy slot: found=%v len=%d", found, len(got))
	}
	if got[0].Amount.Cents != -4550 || got[0].Category != "food" {
		t.Fatalf("legacy decode mismatch: %+v", got[0])
	}
}

func TestBoltSlotCorruptValue(t *testing.T) {
	db := openTestDB(t)
	slot, err := NewBoltSlot(db)
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(ledgerBucketName).Put(transactionsKey, []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("write corrupt value: %v", err)
	}
	if _, _, err := slot.Load(context.Background()); err == nil {
		t.Fatalf("expected decode error for corrupt slot")
	}
}
