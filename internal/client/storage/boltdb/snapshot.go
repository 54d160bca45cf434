package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/servermanager/internal/client/storage"
	"github.com/iudanet/servermanager/pkg/api"
)

const keySnapshot = "servers"

// SaveSnapshot replaces the stored server snapshot
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *api.Response) error {
	if snapshot == nil {
		return s.ClearSnapshot(ctx)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshot)
		if bucket == nil {
			return fmt.Errorf("snapshot bucket not found")
		}

		if err := bucket.Put([]byte(keySnapshot), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		return nil
	})
}

// GetSnapshot returns the stored server snapshot
func (s *Storage) GetSnapshot(ctx context.Context) (*api.Response, error) {
	var snapshot api.Response

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshot)
		if bucket == nil {
			return fmt.Errorf("snapshot bucket not found")
		}

		data := bucket.Get([]byte(keySnapshot))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		// data валиден только внутри транзакции, Unmarshal копирует значения
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// ClearSnapshot removes the stored server snapshot
func (s *Storage) ClearSnapshot(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshot)
		if bucket == nil {
			return fmt.Errorf("snapshot bucket not found")
		}
		return bucket.Delete([]byte(keySnapshot))
	})
}
