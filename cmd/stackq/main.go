// Package main is the entry point for the stackq CLI.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/runoshun/stackq/internal/app"
	"github.com/runoshun/stackq/internal/cli"
	"github.com/spf13/cobra"
)

// version is set at build time using -ldflags.
var version = "dev"

// newContainer is a function variable so tests can replace the container setup.
var newContainer = app.New

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := newContainer(cwd)
	if err != nil {
		// Allow help, version and the config template with a broken config
		if canRunWithoutContainer(args) {
			return execute(cli.NewRootCommand(nil, version), args)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	return execute(cli.NewRootCommand(container, version), args)
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(args)
	return root.Execute()
}

func canRunWithoutContainer(args []string) bool {
	if len(args) >= 2 && args[0] == "config" && args[1] == "template" {
		return true
	}
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "--version" || arg == "--help" || arg == "-h"
	})
}
