package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"data-studio/core/app"
	"data-studio/core/logger"
	"data-studio/core/middleware/rayid"
	"data-studio/core/proxy"
	"data-studio/core/router"
	"data-studio/core/store"
	"data-studio/core/ui"
	"data-studio/feature/views"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the app server",
	Long: `Starts the page server: bootstraps the UI library, store and router,
mounts the pages on the configured anchor and forwards /api to the backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := cfg.ValidateFrontend(); err != nil {
			return err
		}

		web := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			CaseSensitive:         true,
		})

		// RayID first, so the proxy forwards the same id to the backend
		web.Use(rayid.New())
		web.Use(logger.Requests(logg))

		if cfg.Proxy.Enabled {
			if err := proxy.Register(web, cfg.Proxy, logg); err != nil {
				return fmt.Errorf("failed to register proxy: %w", err)
			}
			logg.Info("Forwarding API requests",
				zap.String("prefix", cfg.Proxy.Prefix),
				zap.String("target", cfg.Proxy.Target),
			)
		}

		routes, err := views.Routes(views.Options{Base: cfg.Server.Base(), API: cfg.Proxy.Prefix})
		if err != nil {
			return err
		}

		application, err := app.Bootstrap(app.Options{
			Logger: logg,
			UI:     ui.Config{Locale: cfg.Server.Locale},
			Store:  store.Options{},
			Router: router.Options{Base: cfg.Server.Base(), Routes: routes},
			Target: web,
			Anchor: cfg.Server.Anchor,
		})
		if err != nil {
			return fmt.Errorf("failed to bootstrap application: %w", err)
		}
		logg.Info("Application mounted",
			zap.Strings("registered", application.Registered()),
			zap.String("anchor", application.Anchor()),
			zap.String("locale", application.UI().Lang()),
		)

		go func() {
			logg.Info("Starting app server", zap.String("port", cfg.Server.Port))
			if err := web.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down app server...")
		return web.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
