// Package search handles structured proposal filtering
package search

import (
	"fmt"
	"strings"

	"fjacquet/proposal-search/cmd/common"
	"fjacquet/proposal-search/cmd/root"
	"fjacquet/proposal-search/internal/index"
	"fjacquet/proposal-search/internal/logging"

	"github.com/spf13/cobra"
)

var (
	category   string
	proposer   string
	result     string
	department string
	filters    []string
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search",
	Short: "Search proposals by category, proposer, result and department",
	Long: `Search proposals with exact filters combined with AND.
Category, result and department must match exactly; proposer matches any
proposer name containing the given text. Filters left empty are ignored.`,
	Args: cobra.NoArgs,
	RunE: searchFunc,
}

func init() {
	Cmd.Flags().StringVar(&category, "category", "", "Exact category")
	Cmd.Flags().StringVar(&proposer, "proposer", "", "Text contained in the proposer name")
	Cmd.Flags().StringVar(&result, "result", "", "Exact result")
	Cmd.Flags().StringVar(&department, "department", "", "Exact department (full_name)")
	Cmd.Flags().StringArrayVar(&filters, "filter", nil, "Additional key=value filter (category, proposer, result, full_name)")
}

func searchFunc(cmd *cobra.Command, args []string) error {
	f, err := BuildFilters(category, proposer, result, department, filters)
	if err != nil {
		return err
	}

	c := root.AppContainer
	root.Log.Debug("Search command called", logging.F(logging.FieldFilters, f))
	matches := c.GetIndex().SearchProposals(f)
	return common.EmitProposals(cmd.OutOrStdout(), root.OutputFormat(), root.SharedFlags.Output, c.GetStore(), matches, root.Log)
}

// BuildFilters merges the named flags with key=value pairs. Pairs are
// applied last and override the named flags.
func BuildFilters(category, proposer, result, department string, pairs []string) (index.Filters, error) {
	values := map[string]string{
		index.FilterCategory: category,
		index.FilterProposer: proposer,
		index.FilterResult:   result,
		index.FilterFullName: department,
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return index.Filters{}, fmt.Errorf("invalid filter %q: expected key=value", pair)
		}
		values[strings.TrimSpace(key)] = value
	}
	return index.ParseFilters(values)
}
