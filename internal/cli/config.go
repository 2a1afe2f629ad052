package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/stackq/internal/app"
	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage stackq configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var ignoreGlobal, ignoreLocal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.
Use --ignore-global or --ignore-local to exclude specific sources for debugging.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{
				IgnoreGlobal: ignoreGlobal,
				IgnoreLocal:  ignoreLocal,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if !ignoreGlobal {
				printConfigSource(w, out.GlobalConfig)
			}
			if !ignoreLocal {
				printConfigSource(w, out.LocalConfig)
			}

			_, _ = fmt.Fprintln(w)

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}

	cmd.Flags().BoolVar(&ignoreGlobal, "ignore-global", false, "Ignore global configuration")
	cmd.Flags().BoolVar(&ignoreLocal, "ignore-local", false, "Ignore local configuration (.stackq.toml)")

	return cmd
}

func printConfigSource(w io.Writer, info domain.ConfigInfo) {
	if info.Exists {
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
		return
	}
	_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
}

// effectiveConfig mirrors domain.Config with the timeout as a duration string,
// so the output can be pasted back into a config file.
type effectiveConfig struct {
	API struct {
		BaseURL  string `toml:"base_url"`
		Site     string `toml:"site"`
		Key      string `toml:"key,omitempty"`
		Timeout  string `toml:"timeout"`
		PageSize int    `toml:"page_size"`
	} `toml:"api"`
	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file,omitempty"`
	} `toml:"log"`
}

// formatEffectiveConfig formats the effective config in TOML format.
// The API key is masked.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	var out effectiveConfig
	out.API.BaseURL = cfg.API.BaseURL
	out.API.Site = cfg.API.Site
	if cfg.API.Key != "" {
		out.API.Key = "********"
	}
	out.API.Timeout = cfg.API.Timeout.String()
	out.API.PageSize = cfg.API.PageSize
	out.Log.Level = cfg.Log.Level
	out.Log.File = cfg.Log.File

	// Encode to TOML
	if err := toml.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
// It also works without a container, using the defaults.
func newConfigTemplateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template with default values to stdout.

It does not depend on existing configuration files and works even if they are broken.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := domain.NewDefaultConfig()
			uc := usecase.NewShowConfigTemplate()
			if c != nil {
				uc = c.ShowConfigTemplateUseCase()
			}
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigTemplateInput{Config: cfg})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file template",
		Long: `Generate a configuration file template.

By default, creates the local configuration file .stackq.toml in the current directory.
With --global, creates the global configuration file at ~/.config/stackq/config.toml.

Error conditions:
- Target file already exists: error`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{
				Global: global,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Generate global configuration")

	return cmd
}
