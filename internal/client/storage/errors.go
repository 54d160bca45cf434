package storage

import "errors"

// Common client storage errors
var (
	// ErrSnapshotNotFound indicates that no server snapshot has been persisted yet
	ErrSnapshotNotFound = errors.New("server snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
