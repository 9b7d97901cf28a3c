package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// bodyExcerptLen is the maximum excerpt width in the slide table.
const bodyExcerptLen = 48

// inspectCommand creates the inspect command for examining deck
// structure without presenting it.
func (c *CLI) inspectCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "inspect <deck>",
		Short: "Show the structure and options of a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.loadDeck(cmd.Context(), args[0], dir)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(d.Title))
			if d.Author != "" {
				printDetail("by %s", d.Author)
			}
			fmt.Println()

			cfg := d.ShowConfig()
			printKeyValue("slides", fmt.Sprintf("%d", len(d.Slides)))
			printKeyValue("slide time", cfg.SlideTime.String())
			printKeyValue("autostart", onOff(cfg.Autostart))
			printKeyValue("controls", onOff(cfg.Controls))
			w, h := d.Options.CanvasSize()
			printKeyValue("canvas", fmt.Sprintf("%gx%g", w, h))
			fmt.Println()

			rows := make([][]string, len(d.Slides))
			for i, sl := range d.Slides {
				sw, sh := sl.IntrinsicSize()
				rows[i] = []string{
					fmt.Sprintf("%d", i+1),
					sl.Title,
					fmt.Sprintf("%gx%g", sw, sh),
					excerpt(sl.Body),
				}
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("#", "Title", "Size", "Body").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
					}
					if col == 0 || col == 2 {
						return StyleDim
					}
					return StyleValue
				})
			fmt.Println(t.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "deck-dir", deckDir(), "directory containing stored decks")
	return cmd
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// excerpt flattens the body to one line and truncates it for display.
func excerpt(body string) string {
	line := strings.Join(strings.Fields(body), " ")
	if utf8.RuneCountInString(line) <= bodyExcerptLen {
		return line
	}
	runes := []rune(line)
	return string(runes[:bodyExcerptLen-1]) + "…"
}
