package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/servermanager/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	filterFlag := fs.String("filter", "", "Show only servers with status ALL, SERVER_UP or SERVER_DOWN")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w. Usage: servermanager list [--filter STATUS]", err)
	}

	// Проверяем фильтр до похода в backend
	var filter models.Filter
	if *filterFlag != "" {
		parsed, err := models.ParseFilter(*filterFlag)
		if err != nil {
			return err
		}
		filter = parsed
	}

	c.io.Println("=== Servers ===")
	c.io.Println()

	st := c.projector.LoadServers(ctx)
	if st.DataState == models.DataStateError {
		return st.Err
	}
	if err := c.persist(ctx, true); err != nil {
		return err
	}

	if filter != "" {
		st = c.projector.FilterServers(ctx, filter)
	}
	return c.render(st)
}
