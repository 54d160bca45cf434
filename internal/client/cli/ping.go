package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/internal/validation"
)

func (c *Cli) runPing(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing ip address. Usage: servermanager ping <ip>")
	}
	ipAddress := args[0]

	if err := validation.ValidateIPAddress(ipAddress); err != nil {
		return err
	}
	if err := c.ensureSnapshot(ctx); err != nil {
		return err
	}

	c.io.Printf("Pinging server IP: %s\n", ipAddress)

	st := c.projector.PingServer(ctx, ipAddress)
	if st.DataState == models.DataStateError {
		return st.Err
	}
	if err := c.persist(ctx, false); err != nil {
		return err
	}

	// Показываем только что обновлённую запись
	for _, s := range st.Servers() {
		if s.IPAddress == ipAddress {
			c.io.Printf("%s (%s): %s\n", s.Name, s.IPAddress, s.Status.Label())
			break
		}
	}
	c.io.Println()
	return c.render(st)
}
