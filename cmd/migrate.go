package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hoopside/hoopside-backend/hoopside/database"
	"github.com/hoopside/hoopside-backend/hoopside/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "import the legacy app's MongoDB export into Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := database.New(ctx, database.DBConfig{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Database,
			PoolSize: cfg.DB.PoolSize,
		})
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			return err
		}
		defer db.Close()

		if err := db.InitTables(ctx); err != nil {
			slog.Error("Failed to initialize database schema", "error", err)
			return err
		}

		slog.Info("Connecting to legacy MongoDB", "uri", cfg.Import.MongoURI)
		client, err := mongo.Connect(ctx, options.Client().
			ApplyURI(cfg.Import.MongoURI).
			SetConnectTimeout(15*time.Second))
		if err != nil {
			slog.Error("Failed to connect to MongoDB", "error", err)
			return err
		}
		defer client.Disconnect(ctx)

		migrator := migration.NewMigrator(db.BunDB())
		migrator.UseMongo(client, cfg.Import.MongoDatabase)
		migrator.SetBatchSize(cfg.Import.BatchSize)

		if err := migrator.MigrateAll(ctx); err != nil {
			slog.Error("Migration failed", "error", err)
			return err
		}

		slog.Info("Migration completed successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
