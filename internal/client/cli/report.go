package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/servermanager/internal/client/export"
	"github.com/iudanet/servermanager/internal/models"
)

// runReport exports the cached list, optionally filtered, as a spreadsheet
func (c *Cli) runReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	filterFlag := fs.String("filter", "ALL", "Export only servers with this status")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w. Usage: servermanager report [--filter STATUS] [PATH]", err)
	}

	filter, err := models.ParseFilter(*filterFlag)
	if err != nil {
		return err
	}
	if err := c.ensureSnapshot(ctx); err != nil {
		return err
	}

	// В отчёт попадают ровно те строки, что были бы показаны
	st := c.projector.FilterServers(ctx, filter)
	if st.DataState == models.DataStateError {
		return st.Err
	}

	path, err := export.WriteFile(fs.Arg(0), st.Servers())
	if err != nil {
		return err
	}

	c.io.Printf("✓ Report with %d server(s) written to %s\n", len(st.Servers()), path)
	return nil
}
