package main

import (
	"fmt"
	"time"

	"github.com/rafaeldias2025/oficial-27/internal/cli"
	"github.com/rafaeldias2025/oficial-27/internal/db"
	"github.com/rafaeldias2025/oficial-27/internal/services"
	"github.com/spf13/cobra"
)

func newResetPasswordCommand(load configLoader) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Issue a temporary password for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			database, closeDatabase, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase()

			accounts := services.NewAuthService(db.NewUserRepository(database))
			return cli.RunResetPasswordCommand(accounts, cmd.OutOrStdout(), email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email of the account to reset")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newCreateAdminCommand(load configLoader) *cobra.Command {
	var (
		email    string
		name     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account or promote an existing one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			database, closeDatabase, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase()

			accounts := services.NewAuthService(db.NewUserRepository(database))
			return cli.RunCreateAdminCommand(accounts, stdinFile(cmd), cmd.OutOrStdout(), email, name, password)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRankingCommand(load configLoader) *cobra.Command {
	var (
		fromRaw string
		toRaw   string
	)

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Print the ranking for the default window or --from/--to",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			from, to, err := parseRankingWindow(fromRaw, toRaw, cfg.Location)
			if err != nil {
				return err
			}
			database, closeDatabase, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase()

			ranking := services.NewRankingService(db.NewDailyScoreRepository(database), cfg.RankingWindowDays)
			return cli.RunRankingCommand(ranking, cmd.OutOrStdout(), from, to, cfg.Location)
		},
	}
	cmd.Flags().StringVar(&fromRaw, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&toRaw, "to", "", "Last day, YYYY-MM-DD")
	return cmd
}

func parseRankingWindow(fromRaw string, toRaw string, location *time.Location) (time.Time, time.Time, error) {
	if fromRaw == "" && toRaw == "" {
		return time.Time{}, time.Time{}, nil
	}
	if fromRaw == "" || toRaw == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be given together")
	}
	from, err := time.ParseInLocation("2006-01-02", fromRaw, location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --from %q", fromRaw)
	}
	to, err := time.ParseInLocation("2006-01-02", toRaw, location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --to %q", toRaw)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to must not be before --from")
	}
	return from, to, nil
}
