package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastLoadTimestamp = "last_load_timestamp"
)

// SaveLastLoadTimestamp saves the unix time of the last successful list load
func (s *Storage) SaveLastLoadTimestamp(ctx context.Context, timestamp int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		// Сохраняем timestamp
		if err := bucket.Put([]byte(keyLastLoadTimestamp), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last load timestamp: %w", err)
		}

		return nil
	})
}

// GetLastLoadTimestamp retrieves the unix time of the last successful list load
// Returns 0 if the list has never been loaded
func (s *Storage) GetLastLoadTimestamp(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Получаем timestamp
		timestampBytes := bucket.Get([]byte(keyLastLoadTimestamp))
		if timestampBytes == nil {
			// Список ещё ни разу не загружался
			timestamp = 0
			return nil
		}

		// Конвертируем bytes в int64
		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last load timestamp: %w", err)
	}

	return timestamp, nil
}
