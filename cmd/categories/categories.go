// Package categories shows the flattened category taxonomy
package categories

import (
	"fjacquet/proposal-search/cmd/root"
	"fjacquet/proposal-search/internal/render"

	"github.com/spf13/cobra"
)

var lookup string

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category taxonomy",
	Long: `Show every category with its member values, or with --lookup the
category a single value belongs to.`,
	Args: cobra.NoArgs,
	RunE: categoriesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&lookup, "lookup", "l", "", "Value to resolve to its category")
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	mapping := root.AppContainer.GetCategoryMapping()
	r := render.New(cmd.OutOrStdout(), root.OutputFormat())
	if lookup == "" {
		return r.Taxonomy(mapping)
	}
	key, found := mapping.Lookup(lookup)
	return r.Lookup(lookup, key, found)
}
