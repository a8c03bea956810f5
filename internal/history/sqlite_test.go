package history

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_AppendAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	records := []Record{
		{ID: "a", SessionID: "s1", Kind: "sip_calculation", Input: json.RawMessage(`{"m":1}`), Result: json.RawMessage(`{"v":1}`), CreatedAt: base},
		{ID: "b", SessionID: "s1", Kind: "recommendation", Input: json.RawMessage(`{"m":2}`), Result: json.RawMessage(`{"v":2}`), CreatedAt: base.Add(500 * time.Millisecond)},
		{ID: "c", SessionID: "s2", Kind: "sip_calculation", Input: json.RawMessage(`{"m":3}`), Result: json.RawMessage(`{"v":3}`), CreatedAt: base.Add(2 * time.Second)},
	}
	for _, r := range records {
		require.NoError(t, store.Append(ctx, r))
	}

	all, err := store.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.JSONEq(t, `{"m":2}`, string(all[1].Input))
	assert.JSONEq(t, `{"v":2}`, string(all[1].Result))
	assert.True(t, all[1].CreatedAt.Equal(records[1].CreatedAt))

	bySession, err := store.List(ctx, ListOptions{SessionID: "s1"})
	require.NoError(t, err)
	assert.Len(t, bySession, 2)

	byKind, err := store.List(ctx, ListOptions{Kind: "sip_calculation", Limit: 1})
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	assert.Equal(t, "c", byKind[0].ID)
}

func TestSQLiteStore_AppendOnly(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	r := Record{ID: "dup", Kind: "sip_calculation", Input: json.RawMessage(`{}`), Result: json.RawMessage(`{}`), CreatedAt: time.Now()}
	require.NoError(t, store.Append(ctx, r))
	assert.Error(t, store.Append(ctx, r), "ids are unique")

	assert.Error(t, store.Append(ctx, Record{Kind: "sip_calculation"}), "id is required")
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, Record{ID: "persisted", Kind: "plan_comparison", Input: json.RawMessage(`[]`), Result: json.RawMessage(`[]`), CreatedAt: time.Now()}))
	require.NoError(t, store.Close())

	// Migrations are idempotent
	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "persisted", got[0].ID)
}

func TestSQLiteStore_ConcurrentRecorderWrites(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	rec := NewAsyncRecorder(store, zap.New(core))

	const n = 25
	ctx := context.Background()
	for i := 0; i < n; i++ {
		rec.Record(ctx, "sip_calculation", "burst", map[string]int{"i": i}, fmt.Sprintf("result-%d", i))
	}
	rec.Close()

	assert.Zero(t, logs.Len(), "no write failures: %v", logs.All())
	got, err := store.List(ctx, ListOptions{SessionID: "burst", Limit: 2 * n})
	require.NoError(t, err)
	assert.Len(t, got, n)
}

func TestSQLiteStore_ConcurrentAppends(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	const n = 20
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			errs <- store.Append(ctx, Record{
				ID:        fmt.Sprintf("r-%02d", i),
				Kind:      "plan_comparison",
				Input:     json.RawMessage(`{}`),
				Result:    json.RawMessage(`{}`),
				CreatedAt: time.Now(),
			})
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-errs)
	}

	got, err := store.List(ctx, ListOptions{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, got, n)
}
