package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/servermanager/internal/client/export"
	"github.com/iudanet/servermanager/internal/client/storage"
	"github.com/iudanet/servermanager/pkg/api"
)

type statusView struct {
	APIURL   string
	LastLoad string
	Message  string
	Total    int
	Up       int
	Down     int
	Loaded   bool
}

// runStatus summarizes the cached list without calling the backend
func (c *Cli) runStatus(ctx context.Context) error {
	view := statusView{APIURL: c.settings.APIURL}

	snapshot, err := c.snapshots.GetSnapshot(ctx)
	switch {
	case errors.Is(err, storage.ErrSnapshotNotFound):
	case err != nil:
		return fmt.Errorf("failed to read cached servers: %w", err)
	default:
		view.Loaded = true
		view.Message = snapshot.Message
		view.Total = len(snapshot.Data.Servers)
		for _, s := range snapshot.Data.Servers {
			switch s.Status {
			case api.StatusUp:
				view.Up++
			case api.StatusDown:
				view.Down++
			}
		}
	}

	if view.Loaded {
		ts, err := c.metadata.GetLastLoadTimestamp(ctx)
		if err != nil {
			return fmt.Errorf("failed to read last load time: %w", err)
		}
		view.LastLoad = "unknown"
		if ts > 0 {
			loadedAt := time.Unix(ts, 0)
			view.LastLoad = fmt.Sprintf("%s (%s ago)",
				loadedAt.Format(time.RFC3339),
				c.now().Sub(loadedAt).Round(time.Second))
		}
	}

	return statusTmpl.Execute(c.io, view)
}

// PrintUsage prints command help with the effective settings as defaults
func PrintUsage(w io.Writer, settings Settings) {
	_ = usageTmpl.Execute(w, map[string]string{
		"APIURL":     settings.APIURL,
		"DBPath":     settings.DBPath,
		"ReportName": export.FileName,
	})
}

func (c *Cli) PrintUsage() {
	PrintUsage(c.io, c.settings)
}
