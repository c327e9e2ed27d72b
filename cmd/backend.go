package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"data-studio/core/database"
	"data-studio/core/loader"
	"data-studio/core/logger"
	"data-studio/core/middleware/auth"
	"data-studio/core/middleware/rayid"
	"data-studio/core/storage"
	"data-studio/feature/analysis"
	"data-studio/feature/datasets"
	"data-studio/feature/integrity"
	"data-studio/feature/visualize"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "data-studio/docs/swagger"
)

// @title Data Studio API
// @version 1.0
// @description Dataset upload, cleaning, regression and charts over CSV files.
// @host localhost:5000
// @BasePath /

// backendCmd represents the backend command
var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Start the API server",
	Long:  `Starts the API server behind /api and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if err := cfg.ValidateBackend(); err != nil {
			return err
		}

		// Metadata is optional; datasets work from storage alone
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else if err := datasets.Migrate(conn); err != nil {
			logg.Warn("Dataset metadata disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		created, err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region)
		cancel()
		if err != nil {
			logg.Warn("Storage bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		} else if created {
			logg.Info("Created storage bucket", zap.String("bucket", cfg.Storage.Bucket))
		}

		api := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			CaseSensitive:         true,
			BodyLimit:             cfg.API.BodyLimit(),
		})

		api.Use(rayid.New())
		api.Use(logger.Requests(logg))

		api.Get("/swagger/*", swagger.HandlerDefault)
		api.Use(auth.New(auth.Config{ApiKey: cfg.API.ApiKey, Skip: []string{"/swagger"}}))

		ds := datasets.NewFeature(store, cfg.Storage.Bucket, logg, db)
		mgr := loader.NewManager()
		mgr.Register(ds)
		mgr.Register(analysis.NewFeature(ds.Service(), logg))
		mgr.Register(visualize.NewFeature(ds.Service(), logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Storage.Region, logg, db, ds.Service()))

		if err := mgr.LoadAll(api.Group("/api")); err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", mgr.Loaded()))

		go func() {
			logg.Info("Starting API server", zap.String("port", cfg.API.Port))
			if err := api.Listen(":" + cfg.API.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down API server...")
		return api.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(backendCmd)
}
