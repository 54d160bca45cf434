package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/servermanager/internal/models"
)

// runFilter filters the cached list without refreshing it
func (c *Cli) runFilter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing status. Usage: servermanager filter <ALL|SERVER_UP|SERVER_DOWN>")
	}

	filter, err := models.ParseFilter(args[0])
	if err != nil {
		return err
	}
	if err := c.ensureSnapshot(ctx); err != nil {
		return err
	}

	return c.render(c.projector.FilterServers(ctx, filter))
}
