package cmd

import (
	"github.com/spf13/cobra"

	"polyglot/internal/config"
	"polyglot/internal/infrastructure/i18n"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported language tags",
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog := i18n.NewCatalog(cfg.DefaultLanguage)
	cmd.Println(catalog.T(locale, "SupportedLanguages", nil))
	for _, tag := range catalog.Supported() {
		cmd.Printf("  %s\n", tag)
	}
	cmd.Println(catalog.T(locale, "DefaultLanguage", map[string]any{"Tag": catalog.Default()}))
	return nil
}
