// Package cli implements the depgen command-line interface.
//
// # Commands
//
//   - gen-specs: print name@requirement for every dependency
//   - gen-command: print a `cargo add` command reinstalling the dependencies
//   - gen-license-urls: print a license URL per dependency
//
// All three run `cargo metadata` for the current project, validate every
// direct dependency up front and print results in Cargo.toml order. Any
// failure aborts before anything is written to stdout.
//
// # Logging
//
// Logs go to stderr via charmbracelet/log; --verbose (-v) enables debug
// output.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depgen/internal/cli/config"
	"github.com/matzehuels/depgen/pkg/buildinfo"
	"github.com/matzehuels/depgen/pkg/cargo"
)

const appName = "depgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// NewProvider returns the metadata source for a configuration. It
	// defaults to running cargo as configured.
	NewProvider func(cfg *config.Config) cargo.Provider
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		NewProvider: func(cfg *config.Config) cargo.Provider {
			return cfg.Command()
		},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Generate dependency specs, install commands and license URLs for a Cargo project",
		Long: `depgen reads the direct dependencies of the Cargo project in the current
directory and prints them as dependency specifiers, as a cargo add command,
or as license URLs, in the order Cargo.toml declares them.

Only plain crates.io dependencies are supported. Any other dependency
(dev/build, git or path, optional, target-specific, renamed, or with
default features disabled) makes depgen fail without printing anything.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	flags.String("cargo", config.DefaultCargo, "cargo binary")
	flags.String("manifest-path", "", "path to Cargo.toml (default: cargo's discovery from the working directory)")
	flags.String("registry", cargo.CratesIORegistry, "accepted dependency source")
	flags.BoolP("verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.specsCommand())
	root.AddCommand(c.installCommand())
	root.AddCommand(c.licenseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration for cmd and applies its log level.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if cfg.File != "" {
		c.Logger.Debug("Loaded config", "file", cfg.File)
	}
	return cfg, nil
}
