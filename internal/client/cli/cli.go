package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/iudanet/servermanager/internal/client/api"
	"github.com/iudanet/servermanager/internal/client/iocli"
	"github.com/iudanet/servermanager/internal/client/state"
	"github.com/iudanet/servermanager/internal/client/storage"
	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

// Settings describe where the client talks to and keeps its cache
type Settings struct {
	APIURL string
	DBPath string
}

// Cli выполняет команды над списком серверов.
// Снимок списка восстанавливается из локального хранилища перед командой
// и сохраняется после успешного изменения.
type Cli struct {
	io        iocli.IO
	projector *state.Projector
	snapshots storage.SnapshotStorage
	metadata  storage.MetadataStorage
	logger    *slog.Logger
	now       func() time.Time
	settings  Settings

	formStatus api.Status // статус по умолчанию в форме добавления
	progress   bool
}

var _ state.Notifier = (*Cli)(nil)

func New(
	io iocli.IO,
	gateway clientapi.ClientAPI,
	snapshots storage.SnapshotStorage,
	metadata storage.MetadataStorage,
	settings Settings,
	logger *slog.Logger,
) *Cli {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Cli{
		io:         io,
		snapshots:  snapshots,
		metadata:   metadata,
		logger:     logger,
		now:        time.Now,
		settings:   settings,
		formStatus: state.DefaultFormStatus,
	}
	c.projector = state.NewProjector(gateway, c, logger)
	return c
}

// Run executes command with its arguments
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "list":
		return c.runList(ctx, args)
	case "ping":
		return c.runPing(ctx, args)
	case "filter":
		return c.runFilter(ctx, args)
	case "add":
		return c.runAdd(ctx)
	case "delete":
		return c.runDelete(ctx, args)
	case "report":
		return c.runReport(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// DismissDialog is called once the server is created on the backend
func (c *Cli) DismissDialog() {
	c.io.Println("✓ Server created")
}

// ResetForm sets the status preselected by the next add form
func (c *Cli) ResetForm(defaultStatus api.Status) {
	c.formStatus = defaultStatus
}

func (c *Cli) ClearProgress() {
	if c.progress && c.io.IsTerminal() {
		// Стираем строку индикатора
		c.io.Printf("\r\033[K")
	}
	c.progress = false
}

func (c *Cli) startProgress(label string) {
	c.progress = true
	if c.io.IsTerminal() {
		c.io.Printf("%s...", label)
	}
}

// restore loads the cached snapshot into the projector. A missing cache is not an error.
func (c *Cli) restore(ctx context.Context) error {
	snapshot, err := c.snapshots.GetSnapshot(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read cached servers: %w", err)
	}
	c.projector.Restore(snapshot)
	return nil
}

// ensureSnapshot restores the cache or, when it is empty, loads the list from the backend
func (c *Cli) ensureSnapshot(ctx context.Context) error {
	if err := c.restore(ctx); err != nil {
		return err
	}
	if c.projector.Snapshot() != nil {
		return nil
	}

	c.logger.Debug("no cached servers, loading list")
	st := c.projector.LoadServers(ctx)
	if st.DataState == models.DataStateError {
		return st.Err
	}
	return c.persist(ctx, true)
}

// persist writes the current snapshot to the cache
func (c *Cli) persist(ctx context.Context, loaded bool) error {
	if err := c.snapshots.SaveSnapshot(ctx, c.projector.Snapshot()); err != nil {
		return fmt.Errorf("failed to cache servers: %w", err)
	}
	if loaded {
		if err := c.metadata.SaveLastLoadTimestamp(ctx, c.now().Unix()); err != nil {
			// Не прерываем команду, время загрузки носит справочный характер
			c.logger.Warn("failed to save last load time", "error", err)
		}
	}
	return nil
}
