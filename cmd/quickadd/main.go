package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "quickadd",
		Short:        "Parse quick-add text into reminders and events",
		SilenceUsage: true,
	}

	var opts options
	rootCmd.PersistentFlags().StringVar(&opts.timezone, "tz", "UTC", "IANA timezone used to resolve dates")
	rootCmd.PersistentFlags().StringVar(&opts.categories, "categories", "", "YAML category file (defaults to the built-in set)")
	rootCmd.PersistentFlags().StringVar(&opts.engine, "engine", "rules", "date engine: rules or when")
	rootCmd.PersistentFlags().StringVar(&opts.tagger, "tagger", "none", "noun tagger: prose or none")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log parser diagnostics to stderr")

	rootCmd.AddCommand(newParseCmd(&opts))
	rootCmd.AddCommand(newCategoriesCmd(&opts))
	return rootCmd
}
