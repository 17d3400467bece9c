package cmd

import (
	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/container"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the quiz and event tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect(cmd)
		if err != nil {
			return err
		}
		if err := container.Migrate(db); err != nil {
			return err
		}
		config.WithContext(cmd.Context()).Info("Migration complete")
		return nil
	},
}

func connect(cmd *cobra.Command) (*gorm.DB, error) {
	cfg := loadConfig(cmd)
	config.Init()
	if err := config.Connect(cmd.Context(), cfg.DatabaseDriver, cfg.DatabaseDSN); err != nil {
		return nil, err
	}
	return config.DB, nil
}
