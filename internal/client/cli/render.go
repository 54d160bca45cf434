package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

// minColumn is the narrowest a free-text column is truncated to
const minColumn = 8

// render prints st. An ERROR state is returned as error so the command fails.
func (c *Cli) render(st models.AppState) error {
	switch st.DataState {
	case models.DataStateLoading:
		c.io.Println("Loading servers...")
		return nil
	case models.DataStateError:
		return st.Err
	case models.DataStateLoaded:
		c.io.Println(st.Message())
		c.io.Println()
		c.renderTable(st.Servers())
		return nil
	default:
		panic(fmt.Sprintf("cli: unknown data state %q", st.DataState))
	}
}

func (c *Cli) renderTable(servers []api.Server) {
	if len(servers) == 0 {
		c.io.Println("No servers found.")
		return
	}

	// ID, IP, память и статус занимают около 50 символов, остальное делят имя и тип
	textWidth := max(minColumn, (c.io.Width()-50)/2)

	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tIP ADDRESS\tNAME\tMEMORY\tTYPE\tSTATUS")
	for _, s := range servers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.IPAddress,
			truncate(s.Name, textWidth),
			s.Memory,
			truncate(s.Type, textWidth),
			s.Status.Label())
	}
	_ = tw.Flush()
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
