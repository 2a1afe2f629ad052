package cli

import (
	"github.com/runoshun/stackq/internal/app"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `stackq` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for browsing questions.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
