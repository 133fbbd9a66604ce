package kv

import (
	"context"
	"testing"

	"github.com/Soloken19/shapewear-dev/pkg/config"
	"github.com/Soloken19/shapewear-dev/pkg/db"
)

func openTestStore(t *testing.T) *SQL {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DBDriverSQLite,
		DSN:    "file::memory:",
	}, nil)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := client.DB().AutoMigrate(&CartBlob{}); err != nil {
		t.Fatalf("automigrate failed: %v", err)
	}

	store, err := NewSQL(client)
	if err != nil {
		t.Fatalf("NewSQL failed: %v", err)
	}
	return store
}

func TestSQLRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if _, found, err := store.Get(ctx, "cc:cart:1"); err != nil || found {
		t.Fatalf("expected absent key, found=%v err=%v", found, err)
	}

	if err := store.Set(ctx, "cc:cart:1", []byte("v1")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(ctx, "cc:cart:1", []byte("v2")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	payload, found, err := store.Get(ctx, "cc:cart:1")
	if err != nil || !found {
		t.Fatalf("expected present key, found=%v err=%v", found, err)
	}
	if string(payload) != "v2" {
		t.Fatalf("expected latest payload, got %q", payload)
	}
}

func TestNewSQLRequiresClient(t *testing.T) {
	t.Parallel()

	if _, err := NewSQL(nil); err == nil {
		t.Fatal("expected nil client to be rejected")
	}
}
