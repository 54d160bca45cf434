package storage

import (
	"context"

	"github.com/iudanet/servermanager/pkg/api"
)

//go:generate moq -out snapshot_mock.go . SnapshotStorage

// SnapshotStorage defines interface for persisting the last known-good server
// collection between client runs
type SnapshotStorage interface {
	// SaveSnapshot replaces the stored snapshot
	SaveSnapshot(ctx context.Context, snapshot *api.Response) error

	// GetSnapshot returns the stored snapshot
	// Returns ErrSnapshotNotFound if nothing was saved yet
	GetSnapshot(ctx context.Context) (*api.Response, error)

	// ClearSnapshot removes the stored snapshot
	ClearSnapshot(ctx context.Context) error
}
