package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-directory/core/auth"
	"chat-directory/core/config"
	"chat-directory/core/database"
	"chat-directory/core/loader"
	"chat-directory/core/logger"
	"chat-directory/core/middleware/identity"
	"chat-directory/core/middleware/rayid"
	"chat-directory/core/storage"

	"chat-directory/feature/accounts"
	"chat-directory/feature/categories"
	"chat-directory/feature/servers"
	"chat-directory/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "chat-directory/docs/swagger"
)

// @title Chat Directory API
// @version 1.0
// @description Directory service for chat servers: filtered listings, categories, accounts and icons.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the directory server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("name", cfg.Database.Name))

		// 4. Initialize Storage and make sure the icon bucket exists
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ensureCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := storage.EnsureBucket(ensureCtx, store, cfg.Storage); err != nil {
			cancel()
			logg.Fatal("Failed to ensure icon bucket", zap.Error(err))
		}
		cancel()

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		issuer := auth.NewIssuer(cfg.Auth)

		// Middleware Registration
		// RayID first so everything downstream can be traced
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Identity resolution; anonymous requests pass through
		app.Use(identity.New(issuer))

		// 6. Register Features
		mgr := loader.NewManager()
		mgr.Register(servers.NewFeature(db, store, cfg.Storage.Bucket, logg))
		mgr.Register(categories.NewFeature(db, logg))
		mgr.Register(accounts.NewFeature(db, issuer, logg))
		mgr.Register(status.NewFeature(db, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
