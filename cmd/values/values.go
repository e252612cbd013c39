// Package values lists the selectable filter values
package values

import (
	"fjacquet/proposal-search/cmd/root"
	"fjacquet/proposal-search/internal/render"

	"github.com/spf13/cobra"
)

// Cmd represents the values command
var Cmd = &cobra.Command{
	Use:   "values",
	Short: "List unique categories, proposers, results and departments",
	Long:  `List the distinct, sorted values of each filterable column, skipping empty cells.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		unique := root.AppContainer.GetIndex().UniqueValues()
		return render.New(cmd.OutOrStdout(), root.OutputFormat()).UniqueValues(unique)
	},
}
