package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/hoopside/hoopside-backend/backend/handlers"
	"github.com/hoopside/hoopside-backend/backend/middleware"
	"github.com/hoopside/hoopside-backend/hoopside/database"
	"github.com/hoopside/hoopside-backend/hoopside/database/repositories"
	"github.com/hoopside/hoopside-backend/hoopside/logger"
	"github.com/hoopside/hoopside-backend/hoopside/progression"
	"github.com/hoopside/hoopside-backend/hoopside/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the backend API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("Starting Hoopside Backend API",
			slog.String("version", version),
			slog.String("commit", commit),
			slog.String("type", "sys"))

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		slog.Info("Connecting to database...")
		dbStartTime := time.Now()
		db, err := database.New(ctx, database.DBConfig{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Database,
			PoolSize: cfg.DB.PoolSize,
		})
		if err != nil {
			slog.Error("Failed to connect to database",
				slog.String("error", err.Error()),
				slog.Duration("attempted_for", time.Since(dbStartTime)))
			return err
		}
		defer db.Close()
		slog.Info("Database connected successfully",
			slog.String("database", cfg.DB.Database),
			slog.Duration("took", time.Since(dbStartTime)))

		slog.Info("Initializing database schema...")
		if err := db.InitTables(ctx); err != nil {
			slog.Error("Failed to initialize database schema", slog.String("error", err.Error()))
			return err
		}
		slog.Info("Database schema initialized successfully")

		// Repositories
		ledgerRepo := repositories.NewLedgerRepository(db.BunDB())
		badgeRepo := repositories.NewBadgeRepository(db.BunDB())
		notificationRepo := repositories.NewNotificationRepository(db.BunDB())
		courtRepo := repositories.NewCourtRepository(db.BunDB())

		// Services
		txManager := database.NewTxManager(db.BunDB())
		progressService := services.NewProgressService(
			txManager,
			ledgerRepo,
			badgeRepo,
			notificationRepo,
			services.NewLogSink(),
			progression.Policy{
				XPPerEvent:     cfg.Progression.CheckInXP,
				CooldownWindow: cfg.Progression.Cooldown(),
			},
			progression.Policy{
				XPPerEvent:     cfg.Progression.MissionXP,
				CooldownWindow: cfg.Progression.Cooldown(),
			},
		)
		leaderboardService := services.NewLeaderboardService(ledgerRepo, 30*time.Second)
		courtService := services.NewCourtService(courtRepo)

		app := fiber.New(fiber.Config{
			AppName:      "Hoopside Backend API",
			ServerHeader: "Hoopside-Backend",
			ErrorHandler: middleware.CustomErrorHandler,
		})

		app.Use(recover.New())
		app.Use(middleware.SecurityHeaders())
		app.Use(compress.New(compress.Config{
			Level: compress.LevelBestSpeed,
		}))
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		}))
		app.Use(middleware.LoggingMiddleware())

		webApp := &handlers.WebApp{
			Config:        cfg,
			DB:            db,
			Progress:      progressService,
			Leaderboard:   leaderboardService,
			Courts:        courtService,
			Badges:        badgeRepo,
			Notifications: notificationRepo,
			Version:       version,
			Commit:        commit,
		}

		setupRoutes(app, webApp)

		address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
		logger.LogSystem("Starting backend server", slog.String("address", address))

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)

		go func() {
			if err := app.Listen(address); err != nil {
				logger.LogError("Failed to start server", err)
			}
		}()

		<-c
		slog.Info("Shutting down backend server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", slog.String("error", err.Error()))
		}

		slog.Info("Backend server shutdown complete")
		return nil
	},
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/health", handlers.HealthCheck(webApp))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hoopside Backend API",
			"version": webApp.Version,
			"status":  "running",
		})
	})

	api := app.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Activity endpoints carry a tighter limit on top of the API one.
	api.Post("/checkin", middleware.ActivityRateLimit(), handlers.CheckIn(webApp))
	api.Post("/missions/complete", middleware.ActivityRateLimit(), handlers.CompleteMission(webApp))

	api.Get("/players/:id", handlers.GetPlayer(webApp))
	api.Get("/players/:id/badges", handlers.GetPlayerBadges(webApp))
	api.Get("/players/:id/notifications", handlers.GetPlayerNotifications(webApp))
	api.Post("/players/:id/notifications/:notification_id/read", handlers.MarkNotificationRead(webApp))

	api.Get("/leaderboard", handlers.GetLeaderboard(webApp))

	api.Get("/courts", handlers.SearchCourts(webApp))
	api.Get("/courts/:id", handlers.GetCourt(webApp))

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(webApp.Config.Admin.Token))
	admin.Post("/players/:id/xp", handlers.AdjustPlayerXP(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error": fiber.Map{
				"code":    "NOT_FOUND",
				"message": "Route not found",
			},
		})
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
