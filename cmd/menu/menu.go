// Package menu starts the interactive search menu
package menu

import (
	"errors"
	"os"

	"fjacquet/proposal-search/cmd/root"
	searchmenu "fjacquet/proposal-search/internal/menu"
	"fjacquet/proposal-search/internal/render"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ErrNotTerminal is returned when stdin cannot drive the interactive menu.
var ErrNotTerminal = errors.New("the interactive menu needs a terminal; use the search or keyword commands instead")

// Cmd represents the menu command
var Cmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive search menu",
	Long: `Start the interactive menu: search by category, proposer, result,
department, several criteria at once, or by keyword.`,
	Args: cobra.NoArgs,
	RunE: menuFunc,
}

func menuFunc(cmd *cobra.Command, args []string) error {
	if !IsTerminal(os.Stdin.Fd()) {
		return ErrNotTerminal
	}

	c := root.AppContainer
	m := searchmenu.New(
		c.GetIndex(),
		searchmenu.NewHuhPrompter(),
		render.New(cmd.OutOrStdout(), root.OutputFormat()),
		c.GetLogger(),
	)
	return m.Run(cmd.Context())
}

// IsTerminal reports whether fd is an interactive terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
