package cmd

import (
	"github.com/spf13/cobra"

	"polyglot/internal/config"
	"polyglot/internal/infrastructure/database"
	"polyglot/internal/infrastructure/i18n"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the translation schema migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return err
	}
	catalog := i18n.NewCatalog(cfg.DefaultLanguage)
	cmd.Println(catalog.T(locale, "MigrationsDone", nil))
	return nil
}
