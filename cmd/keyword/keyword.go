// Package keyword handles free-text proposal search
package keyword

import (
	"fjacquet/proposal-search/cmd/common"
	"fjacquet/proposal-search/cmd/root"
	"fjacquet/proposal-search/internal/index"
	"fjacquet/proposal-search/internal/logging"

	"github.com/spf13/cobra"
)

var (
	fields    []string
	allFields bool
)

// Cmd represents the keyword command
var Cmd = &cobra.Command{
	Use:   "keyword <keyword>",
	Short: "Search proposals by keyword",
	Long: `Search proposals whose text contains the keyword, ignoring case.
By default only the content column is searched (see search.default_fields);
use --fields to pick columns or --all-fields to search content, proposer,
department, category and result.`,
	Args: cobra.ExactArgs(1),
	RunE: keywordFunc,
}

func init() {
	Cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "Columns to search (comma separated)")
	Cmd.Flags().BoolVarP(&allFields, "all-fields", "a", false, "Search every text column")
}

func keywordFunc(cmd *cobra.Command, args []string) error {
	c := root.AppContainer
	names := SearchFields(fields, allFields, root.AppConfig.Search.DefaultFields)
	root.Log.Debug("Keyword command called",
		logging.F(logging.FieldKeyword, args[0]),
		logging.F(logging.FieldField, names))

	matches := c.GetIndex().SearchByKeywordNames(args[0], names)
	return common.EmitProposals(cmd.OutOrStdout(), root.OutputFormat(), root.SharedFlags.Output, c.GetStore(), matches, root.Log)
}

// SearchFields picks the column names to search: every text column when all
// is set, otherwise the explicit list, otherwise the configured defaults.
func SearchFields(explicit []string, all bool, defaults []string) []string {
	if all {
		textFields := index.AllTextFields()
		names := make([]string, 0, len(textFields))
		for _, f := range textFields {
			names = append(names, f.String())
		}
		return names
	}
	if len(explicit) > 0 {
		return explicit
	}
	return defaults
}
