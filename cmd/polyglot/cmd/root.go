package cmd

import (
	"github.com/spf13/cobra"
)

var locale string

var rootCmd = &cobra.Command{
	Use:   "polyglot",
	Short: "Administration of the translation side table",
	Long: `polyglot manages the per-field, per-language translation side table
used by applications to overlay translated text onto their records.

Commands:
  migrate    - apply the translation schema migrations
  languages  - list the supported language tags`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale for command output (default: configured default language)")
}
