package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slidekit/carousel/pkg/deck"
	"github.com/slidekit/carousel/pkg/deck/store"
)

// decksCommand creates the deck management command.
func (c *CLI) decksCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "decks",
		Short: "Manage the local deck directory",
	}
	cmd.PersistentFlags().StringVar(&dir, "deck-dir", deckDir(), "directory containing stored decks")

	cmd.AddCommand(c.decksListCommand(&dir))
	cmd.AddCommand(c.decksAddCommand(&dir))
	cmd.AddCommand(c.decksRemoveCommand(&dir))
	cmd.AddCommand(c.decksPathCommand(&dir))

	return cmd
}

// decksListCommand creates the "decks list" subcommand.
func (c *CLI) decksListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			defer s.Close()

			names, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("No decks stored")
				printDetail("Directory: %s", *dir)
				return nil
			}

			for _, name := range names {
				d, err := s.Get(cmd.Context(), name)
				if err != nil {
					printError("%s (unreadable: %s)", name, err)
					continue
				}
				fmt.Println(StyleValue.Render(name) + " " +
					StyleDim.Render(fmt.Sprintf("· %s · %d slides", d.Title, len(d.Slides))))
			}
			return nil
		},
	}
}

// decksAddCommand creates the "decks add" subcommand.
func (c *CLI) decksAddCommand(dir *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a deck file to the deck directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}

			if name == "" {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			s, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Put(cmd.Context(), name, d); err != nil {
				return err
			}
			printSuccess("Added deck %q (%d slides)", name, len(d.Slides))
			printDetail("Present it: carousel present %s", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "store under this name instead of the file name")
	return cmd
}

// decksRemoveCommand creates the "decks remove" subcommand.
func (c *CLI) decksRemoveCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a stored deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Removed deck %q", args[0])
			return nil
		},
	}
}

// decksPathCommand creates the "decks path" subcommand.
func (c *CLI) decksPathCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the deck directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(*dir)
			return nil
		},
	}
}
