package main

import (
	"errors"
	"testing"

	"github.com/runoshun/stackq/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: false},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "help shorthand", args: []string{"list", "-h"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "help subcommand", args: []string{"help", "list"}, want: true},
		{name: "config template", args: []string{"config", "template"}, want: true},
		{name: "config show", args: []string{"config", "show"}, want: false},
		{name: "list", args: []string{"list"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canRunWithoutContainer(tt.args); got != tt.want {
				t.Fatalf("canRunWithoutContainer(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_ContainerError(t *testing.T) {
	original := newContainer
	t.Cleanup(func() { newContainer = original })
	initErr := errors.New("invalid config")
	newContainer = func(string) (*app.Container, error) { return nil, initErr }

	err := run([]string{"list"})
	require.Error(t, err)
	assert.ErrorIs(t, err, initErr)

	assert.NoError(t, run([]string{"--version"}))
}
