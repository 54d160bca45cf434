package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastLoadTimestamp saves the unix time of the last successful list load
	SaveLastLoadTimestamp(ctx context.Context, timestamp int64) error

	// GetLastLoadTimestamp retrieves the unix time of the last successful list load
	// Returns 0 if the list has never been loaded
	GetLastLoadTimestamp(ctx context.Context) (int64, error)
}
