package handlers

import (
	"context"

	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

// Projector is the part of state.Projector the dashboard drives.
type Projector interface {
	State() models.AppState
	IsLoading() bool
	Subscribe(buffer int) (<-chan models.AppState, func())

	LoadServers(ctx context.Context) models.AppState
	PingServer(ctx context.Context, ipAddress string) models.AppState
	FilterServers(ctx context.Context, filter models.Filter) models.AppState
	SaveServer(ctx context.Context, input api.ServerInput) models.AppState
	DeleteServer(ctx context.Context, serverID int64) models.AppState
}
