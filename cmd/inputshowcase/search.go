package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/inputshowcase/internal/config"
	"github.com/muurk/inputshowcase/internal/search"
	"github.com/muurk/inputshowcase/internal/ui"
)

// closestCount is how many "did you mean" entries are printed
const closestCount = 3

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the example catalogue",
		Long: `Search the example catalogue the way the search screen does.

Matching is a case-insensitive substring test. With no query the recent and
popular searches are listed. When nothing matches, the closest items by edit
distance are suggested instead.`,
		Example: `  inputshowcase search
  inputshowcase search keyboard
  inputshowcase search pasword
  inputshowcase search "form design" --record`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			s := reg.Suggestions

			var rows []search.Suggestion
			if strings.TrimSpace(query) == "" {
				rows = search.Idle(s.Recent, s.Popular)
			} else {
				rows = search.Results(s.SearchItems, query)
			}

			if record && strings.TrimSpace(query) != "" {
				if err := recordSearch(reg, query); err != nil {
					return err
				}
			}

			p := newPrinter(cmd, opts)
			if len(rows) == 0 {
				closest := search.Closest(s.SearchItems, query, closestCount)
				if p.Plain() {
					for _, c := range closest {
						p.Println("did you mean: " + c)
					}
					return nil
				}
				p.PrintWarning("No results for "+query,
					ui.Detail{Key: "Matches", Value: "0"},
				)
				if len(closest) > 0 {
					p.PrintTable(ui.ListTable("did you mean", closest))
				}
				return nil
			}

			if p.Plain() {
				for _, r := range rows {
					p.Println(r.Text)
				}
				return nil
			}
			p.PrintHeader("search", cmd.CommandPath(), ui.Detail{Key: "Query", Value: query})
			p.PrintTable(ui.SearchTable(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "Add the query to the recent searches in the config file")
	return cmd
}

func recordSearch(reg *config.Registry, query string) error {
	reg.RecordSearch(query)
	return reg.Save()
}
