package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hoopside/hoopside-backend/hoopside/database/models"
)

// Migrator imports the original app's exported MongoDB collections into
// Postgres. It is a one-shot tool: every step is idempotent (upsert or
// conflict-ignore), so a failed run can simply be re-run.
type Migrator struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int

	stats MigrationStats

	// Mongo collection names (overrideable)
	collNames map[string]string
}

func NewMigrator(pgDB *bun.DB) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		batchSize: 1000,
		stats: MigrationStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
		collNames: map[string]string{
			"players": "players",
			"badges":  "badges",
			"courts":  "courts",
		},
	}
}

// SetBatchSize overrides the default batch size for inserts.
func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// UseMongo attaches a live Mongo database as the migration source.
func (m *Migrator) UseMongo(client *mongo.Client, dbName string) {
	m.mongoDB = client.Database(dbName)
}

// SetCollectionName overrides the source collection name for a kind
// ("players", "badges", "courts").
func (m *Migrator) SetCollectionName(kind, name string) {
	if name != "" {
		m.collNames[kind] = name
	}
}

func (m *Migrator) getColl(kind string) *mongo.Collection {
	name := m.collNames[kind]
	if name == "" {
		name = kind
	}
	return m.mongoDB.Collection(name)
}

func (m *Migrator) tableStats(name string) *TableStats {
	ts, ok := m.stats.Tables[name]
	if !ok {
		ts = &TableStats{TableName: name}
		m.stats.Tables[name] = ts
	}
	return ts
}

// MigrateAll runs every migration step in dependency order.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	if m.mongoDB == nil {
		return fmt.Errorf("mongo not configured; call UseMongo first")
	}

	slog.Info("Starting legacy MongoDB migration")
	m.stats.StartTime = time.Now()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"player_ledgers", m.MigratePlayers},
		{"badge_awards", m.MigrateBadges},
		{"courts", m.MigrateCourts},
	}

	for _, s := range steps {
		slog.Info("Starting migration step", "step", s.name)
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("migration failed at step %s: %w", s.name, err)
		}
		slog.Info("Completed migration step", "step", s.name)
	}

	m.stats.EndTime = time.Now()
	m.logFinalStats()
	return nil
}

// MigratePlayers imports the legacy players collection into player_ledgers.
func (m *Migrator) MigratePlayers(ctx context.Context) error {
	ts := m.tableStats("player_ledgers")

	cur, err := m.getColl("players").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query players: %w", err)
	}
	defer cur.Close(ctx)

	var batch []*models.PlayerLedger
	for cur.Next(ctx) {
		var lp LegacyPlayer
		if err := cur.Decode(&lp); err != nil {
			ts.Errors++
			continue
		}
		ts.Processed++

		ledger, ok := convertPlayer(lp)
		if !ok {
			ts.Skipped++
			ts.Skips = append(ts.Skips, SkippedRecord{Reason: "invalid user id", ID: lp.ID.Hex()})
			continue
		}
		batch = append(batch, ledger)
		if len(batch) >= m.batchSize {
			if err := m.upsertLedgers(ctx, batch); err != nil {
				return err
			}
			ts.Successful += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := m.upsertLedgers(ctx, batch); err != nil {
			return err
		}
		ts.Successful += len(batch)
	}
	return nil
}

func (m *Migrator) upsertLedgers(ctx context.Context, ledgers []*models.PlayerLedger) error {
	startTime := time.Now()
	slog.Info("Starting batch upsert of player ledgers", "count", len(ledgers))

	_, err := m.pgDB.NewInsert().
		Model(&ledgers).
		On("CONFLICT (player_id) DO UPDATE").
		Set("xp = EXCLUDED.xp").
		Set("streak = EXCLUDED.streak").
		Set("longest_streak = EXCLUDED.longest_streak").
		Set("total_completions = EXCLUDED.total_completions").
		Set("last_activity_at = EXCLUDED.last_activity_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		slog.Error("Batch upsert of player ledgers failed",
			"error", err,
			"duration", time.Since(startTime))
		return fmt.Errorf("batch upsert failed: %w", err)
	}

	slog.Info("Batch upsert of player ledgers completed",
		"count", len(ledgers),
		"duration", time.Since(startTime))
	return nil
}

// MigrateBadges imports the legacy badges collection into badge_awards.
// Conflicts with already-imported rows are ignored so re-runs never
// duplicate an award.
func (m *Migrator) MigrateBadges(ctx context.Context) error {
	ts := m.tableStats("badge_awards")

	cur, err := m.getColl("badges").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query badges: %w", err)
	}
	defer cur.Close(ctx)

	var batch []*models.BadgeAward
	for cur.Next(ctx) {
		var lb LegacyBadge
		if err := cur.Decode(&lb); err != nil {
			ts.Errors++
			continue
		}
		ts.Processed++

		award, ok := convertBadge(lb)
		if !ok {
			ts.Skipped++
			ts.Skips = append(ts.Skips, SkippedRecord{Reason: "invalid badge record", ID: lb.ID.Hex()})
			continue
		}
		batch = append(batch, award)
		if len(batch) >= m.batchSize {
			if err := m.insertBadges(ctx, batch); err != nil {
				return err
			}
			ts.Successful += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := m.insertBadges(ctx, batch); err != nil {
			return err
		}
		ts.Successful += len(batch)
	}
	return nil
}

func (m *Migrator) insertBadges(ctx context.Context, awards []*models.BadgeAward) error {
	_, err := m.pgDB.NewInsert().
		Model(&awards).
		On("CONFLICT (player_id, badge_name) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("badge batch insert failed: %w", err)
	}
	return nil
}

// MigrateCourts imports the legacy court directory. Missing collection is
// not an error; early exports did not include it.
func (m *Migrator) MigrateCourts(ctx context.Context) error {
	ts := m.tableStats("courts")

	cur, err := m.getColl("courts").Find(ctx, bson.D{})
	if err != nil {
		slog.Warn("courts collection not found or query failed; skipping", "error", err)
		return nil
	}
	defer cur.Close(ctx)

	var batch []*models.Court
	for cur.Next(ctx) {
		var lc LegacyCourt
		if err := cur.Decode(&lc); err != nil {
			ts.Errors++
			continue
		}
		ts.Processed++

		court, ok := convertCourt(lc)
		if !ok {
			ts.Skipped++
			continue
		}
		batch = append(batch, court)
		if len(batch) >= m.batchSize {
			if err := m.insertCourts(ctx, batch); err != nil {
				return err
			}
			ts.Successful += len(batch)
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := m.insertCourts(ctx, batch); err != nil {
			return err
		}
		ts.Successful += len(batch)
	}
	return nil
}

func (m *Migrator) insertCourts(ctx context.Context, courts []*models.Court) error {
	_, err := m.pgDB.NewInsert().
		Model(&courts).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("city = EXCLUDED.city").
		Set("address = EXCLUDED.address").
		Set("latitude = EXCLUDED.latitude").
		Set("longitude = EXCLUDED.longitude").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("court batch upsert failed: %w", err)
	}
	return nil
}

// logFinalStats logs a summary of migration statistics
func (m *Migrator) logFinalStats() {
	for _, ts := range m.stats.Tables {
		m.stats.TotalProcessed += ts.Processed
		m.stats.TotalSkipped += ts.Skipped
		m.stats.TotalErrors += ts.Errors
		slog.Info("Migration table summary",
			"table", ts.TableName,
			"processed", ts.Processed,
			"successful", ts.Successful,
			"skipped", ts.Skipped,
			"errors", ts.Errors)
	}
	slog.Info("Legacy migration completed",
		"total_processed", m.stats.TotalProcessed,
		"total_skipped", m.stats.TotalSkipped,
		"total_errors", m.stats.TotalErrors,
		"duration", m.stats.EndTime.Sub(m.stats.StartTime))
}
