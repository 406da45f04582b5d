package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/config"
	"github.com/rafaeldias2025/oficial-27/internal/db"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "sonhos",
		Short:         "Daily wellness missions, weekly ranking and scale readings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file (default ./sonhos.yaml)")

	loader := func() (*config.Config, error) {
		return loadRuntimeConfig(configFile)
	}
	root.AddCommand(
		newServeCommand(loader),
		newResetPasswordCommand(loader),
		newCreateAdminCommand(loader),
		newRankingCommand(loader),
	)
	return root
}

type configLoader func() (*config.Config, error)

func loadRuntimeConfig(configFile string) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	time.Local = cfg.Location
	return cfg, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	closeDatabase := func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return database, closeDatabase, nil
}

func stdinFile(cmd *cobra.Command) *os.File {
	if file, ok := cmd.InOrStdin().(*os.File); ok {
		return file
	}
	return os.Stdin
}
