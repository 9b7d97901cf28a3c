package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/slidekit/carousel/pkg/show"
)

// presentCommand creates the present command for interactive terminal
// playback.
func (c *CLI) presentCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "present <deck>",
		Short: "Present a deck interactively in the terminal",
		Long: `Present runs a deck as a live slideshow in the terminal.

The argument is either a path to a deck file or the name of a deck in the
deck directory. Autoplay honors the deck's options; any manual navigation
pauses it.

Keys:
  left/h     previous slide
  right/l    next slide
  space      toggle autoplay
  1-9        jump to slide
  q          quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.loadDeck(cmd.Context(), args[0], dir)
			if err != nil {
				return err
			}

			// The alternate screen belongs to the presenter; route logs
			// nowhere while it runs.
			registry := show.NewRegistry(nil, newLogger(io.Discard, LogInfo))
			m, err := NewPresenterModel(registry, d)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "deck-dir", deckDir(), "directory containing stored decks")
	return cmd
}
