// Package cli implements the carousel command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slidekit/carousel/pkg/buildinfo"
	"github.com/slidekit/carousel/pkg/deck"
	"github.com/slidekit/carousel/pkg/deck/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "carousel"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "carousel",
		Short:        "Carousel runs cycling slideshows in the terminal or over HTTP",
		Long:         `Carousel is a slideshow runner: it presents TOML slide decks interactively in the terminal, serves them headlessly over an HTTP control API, and inspects their structure.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.presentCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.decksCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Deck Resolution
// =============================================================================

// loadDeck resolves a deck argument: an existing file path is loaded
// directly, anything else is looked up by name in the deck directory.
func (c *CLI) loadDeck(ctx context.Context, arg, deckDir string) (*deck.Deck, error) {
	if _, err := os.Stat(arg); err == nil {
		return deck.Load(arg)
	}

	s, err := store.NewFileStore(deckDir)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Get(ctx, arg)
}

// =============================================================================
// Paths
// =============================================================================

// deckDir returns the default deck directory using the XDG standard
// (~/.local/share/carousel/decks/).
func deckDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "decks")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "decks")
	}
	return filepath.Join(home, ".local", "share", appName, "decks")
}
