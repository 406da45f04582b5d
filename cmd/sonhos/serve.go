package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rafaeldias2025/oficial-27/internal/api"
	"github.com/rafaeldias2025/oficial-27/internal/config"
	"github.com/rafaeldias2025/oficial-27/internal/i18n"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	csrfCookieName  = "sonhos_csrf"
	csrfHeaderName  = "X-CSRF-Token"
	shutdownTimeout = 10 * time.Second
)

func newServeCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	database, closeDatabase, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase()

	app, err := newServerApp(database, cfg)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("sonhos listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newServerApp(database *gorm.DB, cfg *config.Config) (*fiber.App, error) {
	i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.Location, i18nManager, api.HandlerOptions{
		CookieSecure:       cfg.CookieSecure,
		RankingWindowDays:  cfg.RankingWindowDays,
		UserHeightDefaultM: cfg.UserHeightDefaultM,
	})
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "sonhos",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, nil
}

// csrfMiddlewareConfig guards cookie sessions only. Bearer clients and
// requests without a session cookie carry no ambient credentials.
func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		Next:           skipCSRF,
		KeyLookup:      "header:" + csrfHeaderName,
		CookieName:     csrfCookieName,
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		Expiration:     12 * time.Hour,
	}
}

func skipCSRF(c *fiber.Ctx) bool {
	return api.HasBearerToken(c) || !api.HasSessionCookie(c)
}
