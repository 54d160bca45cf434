package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/servermanager/internal/client/storage"
	"github.com/iudanet/servermanager/pkg/api"
)

func createTestSnapshotStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "snapshot_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestGetSnapshot_Empty(t *testing.T) {
	store := createTestSnapshotStorage(t)

	snapshot, err := store.GetSnapshot(context.Background())

	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
	assert.Nil(t, snapshot)
}

func TestSaveAndGetSnapshot(t *testing.T) {
	ctx := context.Background()
	store := createTestSnapshotStorage(t)

	expected := &api.Response{
		Timestamp:  "2026-10-16T10:00:00",
		Status:     "OK",
		StatusCode: 200,
		Message:    "Servers retrieved",
		Data: api.Data{Servers: []api.Server{
			{ID: 2, IPAddress: "192.168.1.58", Name: "Fedora Linux", Memory: "16 GB", Type: "Dell Tower", Status: api.StatusDown},
			{ID: 1, IPAddress: "192.168.1.160", Name: "Ubuntu Linux", Memory: "16 GB", Type: "Personal PC", Status: api.StatusUp},
		}},
	}

	require.NoError(t, store.SaveSnapshot(ctx, expected))

	got, err := store.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	// Повторное сохранение заменяет снимок
	replacement := &api.Response{Message: "Server deleted", Data: api.Data{Servers: expected.Data.Servers[:1]}}
	require.NoError(t, store.SaveSnapshot(ctx, replacement))

	got, err = store.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Server deleted", got.Message)
	require.Len(t, got.Data.Servers, 1)
	assert.Equal(t, int64(2), got.Data.Servers[0].ID)
}

func TestClearSnapshot(t *testing.T) {
	ctx := context.Background()
	store := createTestSnapshotStorage(t)

	require.NoError(t, store.SaveSnapshot(ctx, &api.Response{Message: "x"}))
	require.NoError(t, store.ClearSnapshot(ctx))

	_, err := store.GetSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	// nil снимок равносилен очистке
	require.NoError(t, store.SaveSnapshot(ctx, &api.Response{Message: "y"}))
	require.NoError(t, store.SaveSnapshot(ctx, nil))
	_, err = store.GetSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestGetSnapshot_Corrupted(t *testing.T) {
	ctx := context.Background()
	store := createTestSnapshotStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSnapshot).Put([]byte(keySnapshot), []byte("{broken"))
	})
	require.NoError(t, err)

	_, err = store.GetSnapshot(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal snapshot")
}

func TestSnapshot_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(ctx, &api.Response{
		Message: "Servers retrieved",
		Data:    api.Data{Servers: []api.Server{{ID: 7, Status: api.StatusUp}}},
	}))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.GetSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, got.Data.Servers, 1)
	assert.Equal(t, int64(7), got.Data.Servers[0].ID)
}
