package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/servermanager/internal/client/api"
	"github.com/iudanet/servermanager/internal/client/export"
	"github.com/iudanet/servermanager/internal/client/iocli"
	"github.com/iudanet/servermanager/internal/client/storage"
	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

// testEnv собирает Cli с моками ввода/вывода и хранилища в памяти
type testEnv struct {
	cli      *Cli
	out      *bytes.Buffer
	gateway  *clientapi.ClientAPIMock
	snaps    *storage.SnapshotStorageMock
	meta     *storage.MetadataStorageMock
	cached   *api.Response
	inputs   []string
	confirms []bool
	lastLoad int64
}

func newTestEnv(t *testing.T, gateway *clientapi.ClientAPIMock) *testEnv {
	t.Helper()

	env := &testEnv{out: &bytes.Buffer{}, gateway: gateway}

	mockIO := &iocli.IOMock{
		PrintlnFunc: func(a ...any) { fmt.Fprintln(env.out, a...) },
		PrintfFunc:  func(format string, a ...any) { fmt.Fprintf(env.out, format, a...) },
		WriteFunc:   func(p []byte) (int, error) { return env.out.Write(p) },
		ReadInputFunc: func(prompt string) (string, error) {
			if len(env.inputs) == 0 {
				return "", errors.New("unexpected prompt: " + prompt)
			}
			next := env.inputs[0]
			env.inputs = env.inputs[1:]
			return next, nil
		},
		ConfirmFunc: func(prompt string) (bool, error) {
			if len(env.confirms) == 0 {
				return false, errors.New("unexpected confirmation: " + prompt)
			}
			next := env.confirms[0]
			env.confirms = env.confirms[1:]
			return next, nil
		},
		IsTerminalFunc: func() bool { return false },
		WidthFunc:      func() int { return 120 },
	}

	env.snaps = &storage.SnapshotStorageMock{
		GetSnapshotFunc: func(ctx context.Context) (*api.Response, error) {
			if env.cached == nil {
				return nil, storage.ErrSnapshotNotFound
			}
			return env.cached.Clone(), nil
		},
		SaveSnapshotFunc: func(ctx context.Context, snapshot *api.Response) error {
			env.cached = snapshot.Clone()
			return nil
		},
		ClearSnapshotFunc: func(ctx context.Context) error {
			env.cached = nil
			return nil
		},
	}
	env.meta = &storage.MetadataStorageMock{
		SaveLastLoadTimestampFunc: func(ctx context.Context, timestamp int64) error {
			env.lastLoad = timestamp
			return nil
		},
		GetLastLoadTimestampFunc: func(ctx context.Context) (int64, error) {
			return env.lastLoad, nil
		},
	}

	env.cli = New(mockIO, gateway, env.snaps, env.meta, Settings{
		APIURL: "http://backend/api/server/",
		DBPath: "test.db",
	}, nil)
	env.cli.now = func() time.Time { return time.Unix(1_760_000_000, 0) }
	return env
}

func backendList() *api.Response {
	return &api.Response{
		StatusCode: http.StatusOK,
		Message:    "Servers retrieved",
		Data: api.Data{Servers: []api.Server{
			{ID: 1, IPAddress: "192.168.1.160", Name: "Ubuntu Linux", Memory: "16 GB", Type: "Personal PC", Status: api.StatusUp},
			{ID: 2, IPAddress: "192.168.1.58", Name: "Fedora Linux", Memory: "16 GB", Type: "Dell Tower", Status: api.StatusUp},
			{ID: 3, IPAddress: "192.168.1.21", Name: "MS 2008", Memory: "32 GB", Type: "Web Server", Status: api.StatusUp},
		}},
	}
}

func listGateway() *clientapi.ClientAPIMock {
	return &clientapi.ClientAPIMock{
		ListServersFunc: func(ctx context.Context) (*api.Response, error) {
			return backendList(), nil
		},
		FilterFunc: func(ctx context.Context, filter models.Filter, snapshot *api.Response) (*api.Response, error) {
			return clientapi.FilterSnapshot(filter, snapshot)
		},
	}
}

func cachedIDs(env *testEnv) []int64 {
	ids := make([]int64, 0)
	for _, s := range env.cached.Data.Servers {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestCli_List(t *testing.T) {
	env := newTestEnv(t, listGateway())

	err := env.cli.Run(context.Background(), "list", nil)

	require.NoError(t, err)
	out := env.out.String()
	assert.Contains(t, out, "=== Servers ===")
	assert.Contains(t, out, "Servers retrieved")
	assert.Contains(t, out, "IP ADDRESS")
	assert.Contains(t, out, "192.168.1.21")
	assert.Contains(t, out, "SERVER UP")
	// Новые серверы сверху
	assert.Less(t, bytes.Index(env.out.Bytes(), []byte("MS 2008")), bytes.Index(env.out.Bytes(), []byte("Ubuntu Linux")))

	assert.Equal(t, []int64{3, 2, 1}, cachedIDs(env))
	assert.Equal(t, int64(1_760_000_000), env.lastLoad)
}

func TestCli_List_FilterNoneFound(t *testing.T) {
	env := newTestEnv(t, listGateway())

	err := env.cli.Run(context.Background(), "list", []string{"--filter", "server_down"})

	require.NoError(t, err)
	assert.Contains(t, env.out.String(), "No servers of SERVER_DOWN found")
	assert.Contains(t, env.out.String(), "No servers found.")
	// В кэш попадает полный список, а не отфильтрованный
	assert.Equal(t, []int64{3, 2, 1}, cachedIDs(env))
}

func TestCli_List_InvalidFilter(t *testing.T) {
	gateway := listGateway()
	env := newTestEnv(t, gateway)

	err := env.cli.Run(context.Background(), "list", []string{"--filter", "BROKEN"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter")
	assert.Empty(t, gateway.ListServersCalls())
}

func TestCli_List_BackendError(t *testing.T) {
	env := newTestEnv(t, &clientapi.ClientAPIMock{
		ListServersFunc: func(ctx context.Context) (*api.Response, error) {
			return nil, &clientapi.OperationError{StatusCode: http.StatusInternalServerError}
		},
	})

	err := env.cli.Run(context.Background(), "list", nil)

	assert.EqualError(t, err, "An error occurred - Error code 500")
	assert.Nil(t, env.cached)
	assert.Empty(t, env.snaps.SaveSnapshotCalls())
}

func TestCli_Ping_UsesCache(t *testing.T) {
	gateway := &clientapi.ClientAPIMock{
		PingFunc: func(ctx context.Context, ipAddress string) (*api.Response, error) {
			return &api.Response{
				Message: "Ping success",
				Data: api.Data{Server: &api.Server{
					ID: 2, IPAddress: ipAddress, Name: "Fedora Linux", Status: api.StatusDown,
				}},
			}, nil
		},
	}
	env := newTestEnv(t, gateway)
	env.cached = backendList()

	err := env.cli.Run(context.Background(), "ping", []string{"192.168.1.58"})

	require.NoError(t, err)
	assert.Contains(t, env.out.String(), "Pinging server IP: 192.168.1.58")
	assert.Contains(t, env.out.String(), "Fedora Linux (192.168.1.58): SERVER DOWN")
	assert.Equal(t, api.StatusDown, env.cached.Data.Servers[1].Status)
	assert.Equal(t, int64(0), env.lastLoad, "ping does not count as a list load")
}

func TestCli_Ping_InvalidAddress(t *testing.T) {
	gateway := &clientapi.ClientAPIMock{}
	env := newTestEnv(t, gateway)

	err := env.cli.Run(context.Background(), "ping", []string{"not-an-ip"})
	assert.Error(t, err)

	err = env.cli.Run(context.Background(), "ping", nil)
	assert.ErrorContains(t, err, "missing ip address")
}

func TestCli_Filter_LoadsWhenCacheEmpty(t *testing.T) {
	gateway := listGateway()
	env := newTestEnv(t, gateway)

	err := env.cli.Run(context.Background(), "filter", []string{"SERVER_UP"})

	require.NoError(t, err)
	assert.Len(t, gateway.ListServersCalls(), 1)
	assert.Contains(t, env.out.String(), "Servers filtered by SERVER UP status")

	// Второй вызов работает из кэша
	err = env.cli.Run(context.Background(), "filter", []string{"ALL"})
	require.NoError(t, err)
	assert.Len(t, gateway.ListServersCalls(), 1)
}

func TestCli_Add(t *testing.T) {
	gateway := listGateway()
	gateway.SaveFunc = func(ctx context.Context, input api.ServerInput) (*api.Response, error) {
		return &api.Response{
			Message: "Server created",
			Data: api.Data{Server: &api.Server{
				ID: 4, IPAddress: input.IPAddress, Name: input.Name, Memory: input.Memory, Type: input.Type, Status: input.Status,
			}},
		}, nil
	}
	env := newTestEnv(t, gateway)
	env.cached = backendList()
	env.inputs = []string{"10.0.0.5", " web-01 ", "32 GB", "Rack", ""}
	env.confirms = []bool{false}

	err := env.cli.Run(context.Background(), "add", nil)

	require.NoError(t, err)
	require.Len(t, gateway.SaveCalls(), 1)
	input := gateway.SaveCalls()[0].Input
	assert.Equal(t, "web-01", input.Name)
	assert.Equal(t, api.StatusDown, input.Status, "empty answer selects the default status")

	assert.Contains(t, env.out.String(), "✓ Server created")
	assert.Equal(t, []int64{1, 2, 3, 4}, cachedIDs(env))
}

func TestCli_Add_Invalid(t *testing.T) {
	gateway := listGateway()
	env := newTestEnv(t, gateway)
	env.cached = backendList()
	env.inputs = []string{"999.0.0.1", "web", "1 GB", "VM", "SERVER_UP"}

	err := env.cli.Run(context.Background(), "add", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server")
	assert.Contains(t, err.Error(), "ipAddress must be a valid ip address")
	assert.Empty(t, gateway.SaveCalls())
}

func TestCli_Delete(t *testing.T) {
	tests := []struct {
		name        string
		confirm     bool
		wantCalls   int
		wantIDs     []int64
		wantMessage string
	}{
		{name: "confirmed", confirm: true, wantCalls: 1, wantIDs: []int64{1, 2}, wantMessage: "✓ Server deleted"},
		{name: "cancelled", confirm: false, wantCalls: 0, wantIDs: []int64{1, 2, 3}, wantMessage: "Deletion cancelled."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &clientapi.ClientAPIMock{
				DeleteFunc: func(ctx context.Context, serverID int64) (*api.Response, error) {
					return &api.Response{Message: "Server deleted"}, nil
				},
			}
			env := newTestEnv(t, gateway)
			env.cached = backendList()
			env.confirms = []bool{tt.confirm}

			err := env.cli.Run(context.Background(), "delete", []string{"3"})

			require.NoError(t, err)
			assert.Len(t, gateway.DeleteCalls(), tt.wantCalls)
			assert.Contains(t, env.out.String(), "About to delete:")
			assert.Contains(t, env.out.String(), "MS 2008")
			assert.Contains(t, env.out.String(), tt.wantMessage)
			assert.Equal(t, tt.wantIDs, cachedIDs(env))
		})
	}
}

func TestCli_Delete_InvalidID(t *testing.T) {
	env := newTestEnv(t, &clientapi.ClientAPIMock{})

	err := env.cli.Run(context.Background(), "delete", []string{"abc"})

	assert.EqualError(t, err, `invalid server ID "abc": must be a number`)
}

func TestCli_Report(t *testing.T) {
	env := newTestEnv(t, listGateway())
	env.cached = backendList()
	dir := t.TempDir()

	err := env.cli.Run(context.Background(), "report", []string{"--filter", "SERVER_UP", dir})

	require.NoError(t, err)
	path := filepath.Join(dir, export.FileName)
	assert.Contains(t, env.out.String(), "Report with 3 server(s) written to "+path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Fedora Linux")
}

func TestCli_Status(t *testing.T) {
	env := newTestEnv(t, &clientapi.ClientAPIMock{})

	require.NoError(t, env.cli.Run(context.Background(), "status", nil))
	assert.Contains(t, env.out.String(), "Servers have not been loaded yet.")

	env.out.Reset()
	env.cached = backendList()
	env.cached.Data.Servers[0].Status = api.StatusDown
	env.lastLoad = 1_760_000_000 - 90

	require.NoError(t, env.cli.Run(context.Background(), "status", nil))
	out := env.out.String()
	assert.Contains(t, out, "Backend:     http://backend/api/server/")
	assert.Contains(t, out, "Servers:     3 (2 up, 1 down)")
	assert.Contains(t, out, "(1m30s ago)")
}

func TestCli_UnknownCommand(t *testing.T) {
	env := newTestEnv(t, &clientapi.ClientAPIMock{})

	err := env.cli.Run(context.Background(), "sync", nil)

	assert.EqualError(t, err, "unknown command: sync")
	assert.Contains(t, env.out.String(), "Usage:")
	assert.Contains(t, env.out.String(), "--api URL")
	assert.Contains(t, env.out.String(), export.FileName)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 8))
	assert.Equal(t, "Dell To…", truncate("Dell Tower Server", 8))
	assert.Equal(t, "Сервер…", truncate("Сервер номер один", 7))
}
