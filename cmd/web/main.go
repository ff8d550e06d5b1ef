// @title           geekku API
// @version         1.0
// @description     API маркетплейса недвижимости и интерьерных компаний.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"fmt"
	"os"

	"geekku_backend/internal/app"
	"geekku_backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var migrate bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Run(cfg, migrate)
		},
	}
	serveCmd.Flags().BoolVar(&migrate, "migrate", true, "применить миграции перед стартом")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить миграции схемы и создать администратора",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := app.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			return app.Migrate(cfg, db)
		},
	}

	root := &cobra.Command{
		Use:           "geekku",
		Short:         "geekku backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	root.Flags().AddFlagSet(serveCmd.Flags())
	root.AddCommand(serveCmd, migrateCmd)
	return root
}

func loadConfig() (*config.Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	app.InitLogger(cfg)
	return cfg, nil
}
