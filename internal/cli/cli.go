// Package cli implements the forestmerge command-line interface.
//
// The root command takes a forest file and a graph description and writes
// the merged, clustered graph to stdout (or to --output). Diagnostics go to
// stderr through a charmbracelet/log logger, so stdout stays a clean DOT
// stream suitable for piping into Graphviz:
//
//	forestmerge forest.json graph.dot | dot -Tsvg > graph.svg
//
// # Logging
//
// Info-level logging is on by default; --verbose (-v) switches to debug.
// The logger is attached to the command context and retrieved with
// loggerFromContext.
//
// # Configuration
//
// Defaults can be stored in a TOML file (see config.go). Flags always win.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/forestmerge/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "forestmerge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// stderr receives styled summaries; it is the logger's writer.
	stderr io.Writer
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.mergeCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.completionCommand())

	return root
}

// configDir returns the config directory using the XDG standard
// (~/.config/forestmerge/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
