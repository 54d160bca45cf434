package handlers

import (
	"context"
	"log/slog"
	"os"
	"sync"

	clientapi "github.com/iudanet/servermanager/internal/client/api"
	"github.com/iudanet/servermanager/internal/client/state"
	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// inventory is an in-memory backend behind a ClientAPIMock
type inventory struct {
	servers []api.Server
	nextID  int64
	mu      sync.Mutex
}

func newInventory() *inventory {
	return &inventory{
		nextID: 4,
		servers: []api.Server{
			{ID: 1, IPAddress: "192.168.1.160", Name: "Ubuntu Linux", Memory: "16 GB", Type: "Personal PC", Status: api.StatusUp},
			{ID: 2, IPAddress: "192.168.1.58", Name: "Fedora Linux", Memory: "16 GB", Type: "Dell Tower", Status: api.StatusDown},
			{ID: 3, IPAddress: "192.168.1.21", Name: "MS 2008", Memory: "32 GB", Type: "Web Server", Status: api.StatusUp},
		},
	}
}

func (inv *inventory) gateway() *clientapi.ClientAPIMock {
	return &clientapi.ClientAPIMock{
		ListServersFunc: func(ctx context.Context) (*api.Response, error) {
			inv.mu.Lock()
			defer inv.mu.Unlock()
			servers := append([]api.Server(nil), inv.servers...)
			return &api.Response{StatusCode: 200, Message: "Servers retrieved", Data: api.Data{Servers: servers}}, nil
		},
		PingFunc: func(ctx context.Context, ipAddress string) (*api.Response, error) {
			inv.mu.Lock()
			defer inv.mu.Unlock()
			for i := range inv.servers {
				if inv.servers[i].IPAddress == ipAddress {
					inv.servers[i].Status = api.StatusUp
					server := inv.servers[i]
					return &api.Response{StatusCode: 200, Message: "Ping success", Data: api.Data{Server: &server}}, nil
				}
			}
			return nil, &clientapi.OperationError{StatusCode: 404, Message: "server not found"}
		},
		FilterFunc: func(ctx context.Context, filter models.Filter, snapshot *api.Response) (*api.Response, error) {
			return clientapi.FilterSnapshot(filter, snapshot)
		},
		SaveFunc: func(ctx context.Context, input api.ServerInput) (*api.Response, error) {
			inv.mu.Lock()
			defer inv.mu.Unlock()
			server := api.Server{
				ID:        inv.nextID,
				IPAddress: input.IPAddress,
				Name:      input.Name,
				Memory:    input.Memory,
				Type:      input.Type,
				Status:    input.Status,
			}
			inv.nextID++
			inv.servers = append(inv.servers, server)
			return &api.Response{StatusCode: 201, Message: "Server created", Data: api.Data{Server: &server}}, nil
		},
		DeleteFunc: func(ctx context.Context, serverID int64) (*api.Response, error) {
			inv.mu.Lock()
			defer inv.mu.Unlock()
			kept := inv.servers[:0]
			for _, s := range inv.servers {
				if s.ID != serverID {
					kept = append(kept, s)
				}
			}
			inv.servers = kept
			return &api.Response{StatusCode: 200, Message: "Server deleted"}, nil
		},
	}
}

func newTestProjector(gateway clientapi.ClientAPI, notifier state.Notifier) *state.Projector {
	return state.NewProjector(gateway, notifier, setupTestLogger())
}

func loadedProjector() *state.Projector {
	p := newTestProjector(newInventory().gateway(), nil)
	p.LoadServers(context.Background())
	return p
}
