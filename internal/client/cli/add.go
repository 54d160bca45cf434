package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/internal/validation"
	"github.com/iudanet/servermanager/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context) error {
	if err := c.ensureSnapshot(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Server ===")
	c.io.Println()

	for {
		input, err := c.readServerForm()
		if err != nil {
			return err
		}

		c.startProgress("Saving")
		st := c.projector.SaveServer(ctx, input)
		if st.DataState == models.DataStateError {
			return st.Err
		}
		if err := c.persist(ctx, false); err != nil {
			return err
		}

		c.io.Println()
		if err := c.render(st); err != nil {
			return err
		}
		c.io.Println()

		another, err := c.io.Confirm("Add another server?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if !another {
			return nil
		}
		c.io.Println()
	}
}

// readServerForm asks for every field of a new server and validates the result
func (c *Cli) readServerForm() (api.ServerInput, error) {
	var input api.ServerInput
	var err error

	if input.IPAddress, err = c.io.ReadInput("IP address: "); err != nil {
		return input, fmt.Errorf("failed to read ip address: %w", err)
	}
	if input.Name, err = c.io.ReadInput("Name: "); err != nil {
		return input, fmt.Errorf("failed to read name: %w", err)
	}
	if input.Memory, err = c.io.ReadInput("Memory (e.g., '16 GB'): "); err != nil {
		return input, fmt.Errorf("failed to read memory: %w", err)
	}
	if input.Type, err = c.io.ReadInput("Type (e.g., 'Dell Tower Server'): "); err != nil {
		return input, fmt.Errorf("failed to read type: %w", err)
	}

	status, err := c.io.ReadInput(fmt.Sprintf("Status [SERVER_UP|SERVER_DOWN] (default %s): ", c.formStatus))
	if err != nil {
		return input, fmt.Errorf("failed to read status: %w", err)
	}
	if status == "" {
		status = string(c.formStatus)
	}
	input.Status = api.Status(status)

	input = validation.SanitizeServerInput(input)
	if err := validation.ValidateServerInput(input); err != nil {
		return input, fmt.Errorf("invalid server: %w", err)
	}
	return input, nil
}
