package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/servermanager/internal/models"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing server ID. Usage: servermanager delete <id>")
	}

	serverID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid server ID %q: must be a number", args[0])
	}

	if err := c.ensureSnapshot(ctx); err != nil {
		return err
	}

	c.io.Println("=== Delete Server ===")
	c.io.Println()

	// Показываем запись, если она есть в локальном списке
	found := false
	for _, s := range c.projector.Snapshot().Data.Servers {
		if s.ID == serverID {
			c.io.Println("About to delete:")
			c.io.Printf("  Name: %s\n", s.Name)
			c.io.Printf("  IP:   %s\n", s.IPAddress)
			c.io.Printf("  Type: %s\n", s.Type)
			found = true
			break
		}
	}
	if !found {
		c.io.Printf("Server %d is not in the cached list, it will be deleted on the backend only.\n", serverID)
	}
	c.io.Println()

	confirm, err := c.io.Confirm("Are you sure you want to delete this server?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirm {
		c.io.Println("Deletion cancelled.")
		return nil
	}

	c.startProgress("Deleting")
	st := c.projector.DeleteServer(ctx, serverID)
	if st.DataState == models.DataStateError {
		return st.Err
	}
	if err := c.persist(ctx, false); err != nil {
		return err
	}

	c.io.Println("✓ Server deleted")
	c.io.Println()
	return c.render(st)
}
