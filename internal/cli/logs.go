package cli

import (
	"fmt"

	"github.com/runoshun/stackq/internal/app"
	"github.com/runoshun/stackq/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the application log",
		Long: `Show the stackq log file.

The TUI never writes to the terminal, so fetch failures and cancellations
are only visible here. Use -n to show only the last lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), usecase.ShowLogsInput{Lines: lines})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
