package hoopside

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log         LogConfig         `toml:"log"`
	Web         WebConfig         `toml:"web"`
	DB          DBConfig          `toml:"db"`
	Progression ProgressionConfig `toml:"progression"`
	Admin       AdminConfig       `toml:"admin"`
	Import      ImportConfig      `toml:"import"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type WebConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

// ProgressionConfig carries the per-activity reward policies. The two
// call sites historically hardcoded different XP amounts; they are
// configuration here so no literal ever lives at a call site.
type ProgressionConfig struct {
	CheckInXP       int64 `toml:"checkin_xp"`
	MissionXP       int64 `toml:"mission_xp"`
	CooldownMinutes int   `toml:"cooldown_minutes"`
}

func (c ProgressionConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMinutes) * time.Minute
}

type AdminConfig struct {
	Token string `toml:"token"`
}

// ImportConfig points at the legacy mobile app's exported MongoDB
// instance, consumed only by the one-shot importer.
type ImportConfig struct {
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
	BatchSize     int    `toml:"batch_size"`
}
