// Package cli provides the command-line interface for stackq.
package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/stackq/internal/app"
	"github.com/runoshun/stackq/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupBrowse = "browse"
	groupSetup  = "setup"
)

// errNoContainer is returned by commands that need a working configuration.
var errNoContainer = errors.New("stackq is not initialized")

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// launchTUI runs the TUI until the user quits.
func launchTUI(c *app.Container) error {
	if err := requireContainer(c); err != nil {
		return err
	}
	return tui.Run(c)
}

// NewRootCommand creates the root command for stackq.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "stackq",
		Short: "Browse the latest StackOverflow questions from the terminal",
		Long: `stackq lists the most recently active StackOverflow questions
and shows a question with its body.

Run without arguments to open the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.Config == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupBrowse, Title: "Browse Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	listCmd := newListCommand(c)
	listCmd.GroupID = groupBrowse
	showCmd := newShowCommand(c)
	showCmd.GroupID = groupBrowse
	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupBrowse
	root.AddCommand(listCmd, showCmd, tuiCmd)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup
	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup
	root.AddCommand(configCmd, logsCmd)

	return root
}

// requireContainer returns errNoContainer when c is nil.
func requireContainer(c *app.Container) error {
	if c == nil {
		return errNoContainer
	}
	return nil
}
