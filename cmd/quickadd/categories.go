package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories the parser matches against",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.useCase()
			if err != nil {
				return err
			}
			list, err := uc.Categories(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKEYWORDS")
			for _, c := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, strings.Join(c.MatchKeywords(), ", "))
			}
			return w.Flush()
		},
	}
}
