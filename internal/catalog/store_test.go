package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnvclient/gnvclient/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(t.TempDir(), DefaultStoreOptions())
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() }) //nolint:errcheck
	return store
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	t.Run("creates the database file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store, err := OpenStore(dir, DefaultStoreOptions())
		if err != nil {
			t.Fatalf("OpenStore failed: %v", err)
		}
		t.Cleanup(func() { _ = store.Close() }) //nolint:errcheck

		if want := filepath.Join(dir, "gnvclient.db"); store.Path() != want {
			t.Errorf("expected path %s, got %s", want, store.Path())
		}
	})

	t.Run("refuses a missing database without create", func(t *testing.T) {
		t.Parallel()

		_, err := OpenStore(t.TempDir(), StoreOptions{CreateIfNotExists: false})
		if err == nil {
			t.Error("expected an error for a missing cache database")
		}
	})

	t.Run("creates nested cache directories", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "cache")
		store, err := OpenStore(dir, DefaultStoreOptions())
		if err != nil {
			t.Fatalf("OpenStore failed: %v", err)
		}
		t.Cleanup(func() { _ = store.Close() }) //nolint:errcheck

		if _, err := os.Stat(dir); err != nil {
			t.Errorf("cache directory not created: %v", err)
		}
	})
}

func TestStoreLoadSave(t *testing.T) {
	t.Parallel()

	t.Run("empty store loads nothing", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		sources, fresh, err := store.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if sources != nil || fresh {
			t.Errorf("expected empty load, got %v (fresh=%v)", sources, fresh)
		}
	})

	t.Run("saved listing loads back fresh", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		want := []model.DataSource{
			{ID: 1, Title: "Catalogue of Life", RecordCount: 4500000},
			{ID: 12, Title: "Encyclopedia of Life"},
		}
		if err := store.Save(context.Background(), want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, fresh, err := store.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !fresh {
			t.Error("expected a just-saved listing to be fresh")
		}
		if len(got) != 2 || got[0].Title != "Catalogue of Life" || got[0].RecordCount != 4500000 {
			t.Errorf("round-trip mismatch: %+v", got)
		}
	})

	t.Run("save replaces the previous snapshot", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()
		if err := store.Save(ctx, []model.DataSource{{ID: 1, Title: "old"}}); err != nil {
			t.Fatalf("first Save failed: %v", err)
		}
		if err := store.Save(ctx, []model.DataSource{{ID: 2, Title: "new"}}); err != nil {
			t.Fatalf("second Save failed: %v", err)
		}

		got, _, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 1 || got[0].Title != "new" {
			t.Errorf("expected the replacement snapshot, got %+v", got)
		}
	})

	t.Run("snapshot past the validity window is stale", func(t *testing.T) {
		t.Parallel()

		store := openTestStore(t)
		ctx := context.Background()
		if err := store.Save(ctx, []model.DataSource{{ID: 1, Title: "Catalogue of Life"}}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		store.now = func() time.Time { return time.Now().Add(DefaultCacheValidity + time.Hour) }

		got, fresh, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if fresh {
			t.Error("expected an aged snapshot to be stale")
		}
		if len(got) != 1 {
			t.Errorf("stale snapshot should still be returned, got %+v", got)
		}
	})
}
